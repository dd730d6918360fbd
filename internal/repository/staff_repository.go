package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/pagination"
)

// Every staff row belongs to the same store and address; neither is editable
// through this service.
const (
	fixedStoreID   = 1
	fixedAddressID = 61
)

// StaffRepository handles persistence for staff members.
type StaffRepository interface {
	Insert(ctx context.Context, params CreateStaffParams) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	ListPage(ctx context.Context, offset int) ([]domain.Staff, error)
}

// CreateStaffParams carries the editable columns of a new staff row.
type CreateStaffParams struct {
	FirstName *string
	LastName  *string
	Email     *string
	Username  *string
	Password  *string
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) Insert(ctx context.Context, params CreateStaffParams) (int64, error) {
	const query = `
        INSERT INTO staff (first_name, last_name, email, username, password, store_id, address_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING staff_id`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		params.FirstName,
		params.LastName,
		params.Email,
		params.Username,
		params.Password,
		fixedStoreID,
		fixedAddressID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	const query = `
        SELECT staff_id, first_name, last_name, email, username, password
        FROM staff WHERE staff_id=$1`

	var staff domain.Staff
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&staff.StaffID,
		&staff.FirstName,
		&staff.LastName,
		&staff.Email,
		&staff.Username,
		&staff.Password,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) ListPage(ctx context.Context, offset int) ([]domain.Staff, error) {
	const query = `
        SELECT staff_id, first_name, last_name, email, username, password
        FROM staff ORDER BY last_update DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, pagination.PageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Staff
	for rows.Next() {
		var staff domain.Staff
		if err := rows.Scan(
			&staff.StaffID,
			&staff.FirstName,
			&staff.LastName,
			&staff.Email,
			&staff.Username,
			&staff.Password,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}
