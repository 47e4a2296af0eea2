package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/Patric420/hotel-management/internal/model"
)

// PaymentRepo provides CRUD operations over the PAYMENT table. The
// one-payment-per-booking rule is enforced here at write time; the schema
// carries no unique constraint for it.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo returns a PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// PaymentDetail is a payment joined with its booking, customer and room.
type PaymentDetail struct {
	ID           int64      `json:"payment_id"`
	BookingID    int64      `json:"booking_id"`
	CustomerName string     `json:"customer_name"`
	RoomType     string     `json:"room_type"`
	CheckIn      model.Date `json:"check_in"`
	CheckOut     model.Date `json:"check_out"`
	Method       string     `json:"payment_method"`
	Amount       float64    `json:"amount"`
	Reference    string     `json:"reference"`
	PaidAt       time.Time  `json:"payment_date"`
}

const paymentSelect = `SELECT p.payment_id, p.booking_id, c.name, r.room_type,
		b.check_in, b.check_out, p.payment_method, p.amount, p.reference, p.payment_date
	FROM PAYMENT p
	JOIN BOOKING b ON p.booking_id = b.booking_id
	JOIN CUSTOMER c ON b.customer_id = c.customer_id
	JOIN ROOM r ON b.room_id = r.room_id`

// ListDetails returns all payments with booking context, newest first.
func (r *PaymentRepo) ListDetails(ctx context.Context) ([]PaymentDetail, error) {
	rows, err := r.db.QueryContext(ctx, paymentSelect+` ORDER BY p.payment_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]PaymentDetail, 0)
	for rows.Next() {
		var d PaymentDetail
		if err := rows.Scan(&d.ID, &d.BookingID, &d.CustomerName, &d.RoomType,
			&d.CheckIn, &d.CheckOut, &d.Method, &d.Amount, &d.Reference, &d.PaidAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetDetail returns a single joined payment or ErrPaymentNotFound.
func (r *PaymentRepo) GetDetail(ctx context.Context, id int64) (*PaymentDetail, error) {
	var d PaymentDetail
	err := r.db.QueryRowContext(ctx, paymentSelect+` WHERE p.payment_id = ?`, id).Scan(
		&d.ID, &d.BookingID, &d.CustomerName, &d.RoomType,
		&d.CheckIn, &d.CheckOut, &d.Method, &d.Amount, &d.Reference, &d.PaidAt)
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create records a payment for a booking. The booking must exist
// (ErrBookingNotFound) and must not be paid yet (ErrPaymentExists).
// Reference and PaidAt are server-assigned.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM BOOKING WHERE booking_id = ?`, p.BookingID).Scan(&one)
	if err == sql.ErrNoRows {
		return ErrBookingNotFound
	}
	if err != nil {
		return err
	}
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM PAYMENT WHERE booking_id = ? LIMIT 1`, p.BookingID).Scan(&one)
	if err == nil {
		return ErrPaymentExists
	}
	if err != sql.ErrNoRows {
		return err
	}
	p.Reference = uuid.NewString()
	p.PaidAt = time.Now().UTC().Truncate(time.Second)
	const q = `INSERT INTO PAYMENT (booking_id, payment_method, amount, reference, payment_date)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.BookingID, p.Method, p.Amount, p.Reference, p.PaidAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Update rewrites method and amount only; booking linkage, reference and
// timestamp are immutable after creation. Existence is checked up front:
// RowsAffected cannot distinguish a missing row from a no-op rewrite.
func (r *PaymentRepo) Update(ctx context.Context, id int64, method string, amount float64) error {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM PAYMENT WHERE payment_id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return ErrPaymentNotFound
	}
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE PAYMENT SET payment_method = ?, amount = ? WHERE payment_id = ?`, method, amount, id)
	return err
}

// Delete removes a payment or returns ErrPaymentNotFound.
func (r *PaymentRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM PAYMENT WHERE payment_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
