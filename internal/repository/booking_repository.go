package repository

import (
	"context"
	"database/sql"

	"github.com/Patric420/hotel-management/internal/availability"
	"github.com/Patric420/hotel-management/internal/model"
)

// BookingRepo provides CRUD operations over the BOOKING table. Write
// paths that must agree with the availability check run inside a caller
// supplied transaction so the check and the write commit together.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle for transaction orchestration.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// BookingDetail is a booking joined with its customer and room for list
// and detail responses.
type BookingDetail struct {
	ID           int64      `json:"booking_id"`
	CustomerID   int64      `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	RoomID       int64      `json:"room_id"`
	RoomType     string     `json:"room_type"`
	RoomPrice    float64    `json:"room_price"`
	CheckIn      model.Date `json:"check_in"`
	CheckOut     model.Date `json:"check_out"`
	Status       string     `json:"status"`
}

const detailSelect = `SELECT b.booking_id, b.customer_id, c.name, b.room_id, r.room_type, r.price,
		b.check_in, b.check_out, b.status
	FROM BOOKING b
	JOIN CUSTOMER c ON b.customer_id = c.customer_id
	JOIN ROOM r ON b.room_id = r.room_id`

// ListDetails returns all bookings with customer and room info, newest first.
func (r *BookingRepo) ListDetails(ctx context.Context) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx, detailSelect+` ORDER BY b.booking_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]BookingDetail, 0)
	for rows.Next() {
		var d BookingDetail
		if err := rows.Scan(&d.ID, &d.CustomerID, &d.CustomerName, &d.RoomID, &d.RoomType, &d.RoomPrice,
			&d.CheckIn, &d.CheckOut, &d.Status); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetDetail returns a single joined booking or ErrBookingNotFound.
func (r *BookingRepo) GetDetail(ctx context.Context, id int64) (*BookingDetail, error) {
	var d BookingDetail
	err := r.db.QueryRowContext(ctx, detailSelect+` WHERE b.booking_id = ?`, id).Scan(
		&d.ID, &d.CustomerID, &d.CustomerName, &d.RoomID, &d.RoomType, &d.RoomPrice,
		&d.CheckIn, &d.CheckOut, &d.Status)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID returns the raw booking row or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	return r.get(ctx, r.db, id)
}

// GetTx is GetByID within a transaction.
func (r *BookingRepo) GetTx(ctx context.Context, tx *sql.Tx, id int64) (*model.Booking, error) {
	return r.get(ctx, tx, id)
}

func (r *BookingRepo) get(ctx context.Context, q rowQuerier, id int64) (*model.Booking, error) {
	const sel = `SELECT booking_id, customer_id, room_id, check_in, check_out, status FROM BOOKING WHERE booking_id = ?`
	var b model.Booking
	err := q.QueryRowContext(ctx, sel, id).Scan(&b.ID, &b.CustomerID, &b.RoomID, &b.CheckIn, &b.CheckOut, &b.Status)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// InsertGuardedTx inserts a booking only if its room exists, is stored as
// Available, and has no conflicting active booking — a single guarded
// INSERT ... SELECT, so the availability check cannot be separated from
// the write it gates. Zero rows affected means the guard rejected the
// assignment and ErrRoomUnavailable is returned. On success the
// generated id is populated on b.
func (r *BookingRepo) InsertGuardedTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO BOOKING (customer_id, room_id, check_in, check_out, status)
		SELECT ?, r.room_id, ?, ?, ?
		FROM ROOM r
		WHERE r.room_id = ?
		  AND r.status = '` + model.RoomAvailable + `'
		  AND ` + availability.NoConflictClause
	args := append([]interface{}{b.CustomerID, b.CheckIn, b.CheckOut, b.Status, b.RoomID},
		availability.NoConflictArgs(0, b.CheckIn, b.CheckOut)...)
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRoomUnavailable
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// UpdateTx rewrites a booking row within a transaction. Availability for
// a room change must be established by the caller beforehand, in the same
// transaction, via the resolver's CanAssignTx.
func (r *BookingRepo) UpdateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `UPDATE BOOKING SET customer_id = ?, room_id = ?, check_in = ?, check_out = ?, status = ?
		WHERE booking_id = ?`
	_, err := tx.ExecContext(ctx, q, b.CustomerID, b.RoomID, b.CheckIn, b.CheckOut, b.Status, b.ID)
	return err
}

// SetStatusTx overwrites only the booking's status.
func (r *BookingRepo) SetStatusTx(ctx context.Context, tx *sql.Tx, id int64, status string) error {
	_, err := tx.ExecContext(ctx, `UPDATE BOOKING SET status = ? WHERE booking_id = ?`, status, id)
	return err
}

// DeleteTx removes a booking row within a transaction.
func (r *BookingRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id int64) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM BOOKING WHERE booking_id = ?`, id)
	return err
}
