package repository

import (
	"context"
	"database/sql"

	"github.com/Patric420/hotel-management/internal/model"
)

// ServiceRepo provides CRUD operations over the SERVICE table and the
// flat discount operation the back office applies across all services.
type ServiceRepo struct {
	db *sql.DB
}

// NewServiceRepo returns a ServiceRepo bound to the given database.
func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{db: db} }

// List returns all services, newest first.
func (r *ServiceRepo) List(ctx context.Context) ([]model.Service, error) {
	const q = `SELECT service_id, service_name, cost FROM SERVICE ORDER BY service_id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Service, 0)
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Cost); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID returns a single service or ErrServiceNotFound.
func (r *ServiceRepo) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	const q = `SELECT service_id, service_name, cost FROM SERVICE WHERE service_id = ?`
	var s model.Service
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.Cost)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a service after checking name uniqueness.
func (r *ServiceRepo) Create(ctx context.Context, s *model.Service) error {
	taken, err := r.nameTaken(ctx, s.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateServiceName
	}
	res, err := r.db.ExecContext(ctx, `INSERT INTO SERVICE (service_name, cost) VALUES (?, ?)`, s.Name, s.Cost)
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

// Update rewrites a service row; the name check skips the service itself.
func (r *ServiceRepo) Update(ctx context.Context, s *model.Service) error {
	if _, err := r.GetByID(ctx, s.ID); err != nil {
		return err
	}
	taken, err := r.nameTaken(ctx, s.Name, s.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateServiceName
	}
	_, err = r.db.ExecContext(ctx, `UPDATE SERVICE SET service_name = ?, cost = ? WHERE service_id = ?`, s.Name, s.Cost, s.ID)
	return err
}

// Delete removes a service unless it is still assigned to customers, in
// which case ErrServiceAssigned is returned.
func (r *ServiceRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM CUSTOMER_SERVICE WHERE service_id = ? LIMIT 1`, id).Scan(&one)
	if err == nil {
		return ErrServiceAssigned
	}
	if err != sql.ErrNoRows {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM SERVICE WHERE service_id = ?`, id)
	return err
}

// ApplyDiscount knocks 10% off every service cost, rounded to cents.
func (r *ServiceRepo) ApplyDiscount(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE SERVICE SET cost = ROUND(cost * 0.9, 2)`)
	return err
}

func (r *ServiceRepo) nameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	const q = `SELECT 1 FROM SERVICE WHERE service_name = ? AND service_id != ? LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, q, name, excludeID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
