package repository

import (
	"context"
	"database/sql"

	"github.com/Patric420/hotel-management/internal/model"
)

// CustomerRepo provides CRUD operations over the CUSTOMER table.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo returns a CustomerRepo bound to the given database.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// List returns all customers, newest first.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	const q = `SELECT customer_id, name, email, phone, address FROM CUSTOMER ORDER BY customer_id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID returns a single customer or ErrCustomerNotFound.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const q = `SELECT customer_id, name, email, phone, address FROM CUSTOMER WHERE customer_id = ?`
	var c model.Customer
	err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address)
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a customer after checking that no other customer holds
// the same email or phone, and populates the generated id.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	taken, err := r.contactTaken(ctx, c.Email, c.Phone, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateCustomer
	}
	const q = `INSERT INTO CUSTOMER (name, email, phone, address) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Email, c.Phone, c.Address)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// Update rewrites a customer row. The duplicate check skips the customer
// itself so saving unchanged contact details succeeds.
func (r *CustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	if _, err := r.GetByID(ctx, c.ID); err != nil {
		return err
	}
	taken, err := r.contactTaken(ctx, c.Email, c.Phone, c.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateCustomer
	}
	const q = `UPDATE CUSTOMER SET name = ?, email = ?, phone = ?, address = ? WHERE customer_id = ?`
	_, err = r.db.ExecContext(ctx, q, c.Name, c.Email, c.Phone, c.Address, c.ID)
	return err
}

// Delete removes a customer or returns ErrCustomerNotFound.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM CUSTOMER WHERE customer_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// contactTaken reports whether another customer (excluding excludeID)
// already holds the given email or phone.
func (r *CustomerRepo) contactTaken(ctx context.Context, email, phone string, excludeID int64) (bool, error) {
	const q = `SELECT 1 FROM CUSTOMER WHERE (email = ? OR phone = ?) AND customer_id != ? LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, q, email, phone, excludeID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
