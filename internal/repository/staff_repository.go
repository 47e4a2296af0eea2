package repository

import (
	"context"
	"database/sql"

	"github.com/Patric420/hotel-management/internal/model"
)

// StaffRepo provides CRUD operations over the STAFF table.
type StaffRepo struct {
	db *sql.DB
}

// NewStaffRepo returns a StaffRepo bound to the given database.
func NewStaffRepo(db *sql.DB) *StaffRepo { return &StaffRepo{db: db} }

// List returns all staff members, newest first.
func (r *StaffRepo) List(ctx context.Context) ([]model.Staff, error) {
	const q = `SELECT staff_id, name, role, phone, salary FROM STAFF ORDER BY staff_id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Staff, 0)
	for rows.Next() {
		var s model.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.Phone, &s.Salary); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID returns a single staff member or ErrStaffNotFound.
func (r *StaffRepo) GetByID(ctx context.Context, id int64) (*model.Staff, error) {
	const q = `SELECT staff_id, name, role, phone, salary FROM STAFF WHERE staff_id = ?`
	var s model.Staff
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.Role, &s.Phone, &s.Salary)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a staff member after checking phone uniqueness.
func (r *StaffRepo) Create(ctx context.Context, s *model.Staff) error {
	taken, err := r.phoneTaken(ctx, s.Phone, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateStaffPhone
	}
	const q = `INSERT INTO STAFF (name, role, phone, salary) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Role, s.Phone, s.Salary)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// Update rewrites a staff row; the phone check skips the member itself.
func (r *StaffRepo) Update(ctx context.Context, s *model.Staff) error {
	if _, err := r.GetByID(ctx, s.ID); err != nil {
		return err
	}
	taken, err := r.phoneTaken(ctx, s.Phone, s.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateStaffPhone
	}
	const q = `UPDATE STAFF SET name = ?, role = ?, phone = ?, salary = ? WHERE staff_id = ?`
	_, err = r.db.ExecContext(ctx, q, s.Name, s.Role, s.Phone, s.Salary, s.ID)
	return err
}

// Delete removes a staff member or returns ErrStaffNotFound.
func (r *StaffRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM STAFF WHERE staff_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStaffNotFound
	}
	return nil
}

func (r *StaffRepo) phoneTaken(ctx context.Context, phone string, excludeID int64) (bool, error) {
	const q = `SELECT 1 FROM STAFF WHERE phone = ? AND staff_id != ? LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, q, phone, excludeID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
