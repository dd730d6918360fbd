package domain

// Staff models one row of the staff table. The five text columns are
// nullable in the schema, so they map to pointers; StaffID is assigned by
// the store and never supplied by clients.
type Staff struct {
	StaffID   int64   `json:"staff_id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Username  *string `json:"username"`
	Password  *string `json:"password"`
}
