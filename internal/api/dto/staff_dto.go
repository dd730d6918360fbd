package dto

// CreateStaffRequest payload. All fields are optional; a staff_id in the
// payload is ignored because identities are store-assigned.
type CreateStaffRequest struct {
	FirstName *string `json:"first_name" form:"first_name"`
	LastName  *string `json:"last_name" form:"last_name"`
	Email     *string `json:"email" form:"email"`
	Username  *string `json:"username" form:"username"`
	Password  *string `json:"password" form:"password"`
}
