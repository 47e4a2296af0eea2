package repository

import (
	"context"
	"database/sql"

	"github.com/Patric420/hotel-management/internal/model"
)

// RoomRepo provides CRUD operations over the ROOM table. The stored
// status field is a cached view over booking state; it is written here as
// plain overwrites, mirroring the booking lifecycle side effects.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying handle for transaction orchestration.
func (r *RoomRepo) DB() *sql.DB { return r.db }

// List returns all rooms, newest first.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT room_id, room_type, price, status FROM ROOM ORDER BY room_id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Type, &rm.Price, &rm.Status); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

// GetByID returns a single room or ErrRoomNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	const q = `SELECT room_id, room_type, price, status FROM ROOM WHERE room_id = ?`
	var rm model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(&rm.ID, &rm.Type, &rm.Price, &rm.Status)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

// Create inserts a room and populates the generated id.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	const q = `INSERT INTO ROOM (room_type, price, status) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, rm.Type, rm.Price, rm.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = id
	return nil
}

// Update rewrites a room row or returns ErrRoomNotFound. Existence is
// checked up front: RowsAffected cannot distinguish a missing row from a
// no-op rewrite.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room) error {
	if _, err := r.GetByID(ctx, rm.ID); err != nil {
		return err
	}
	const q = `UPDATE ROOM SET room_type = ?, price = ?, status = ? WHERE room_id = ?`
	_, err := r.db.ExecContext(ctx, q, rm.Type, rm.Price, rm.Status, rm.ID)
	return err
}

// Delete removes a room unless it still has Confirmed or Checked-In
// bookings, in which case ErrRoomHasBookings is returned.
func (r *RoomRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	const activeQ = `SELECT 1 FROM BOOKING
		WHERE room_id = ? AND status IN ('` + model.BookingConfirmed + `', '` + model.BookingCheckedIn + `') LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, activeQ, id).Scan(&one)
	if err == nil {
		return ErrRoomHasBookings
	}
	if err != sql.ErrNoRows {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM ROOM WHERE room_id = ?`, id)
	return err
}

// SetStatusTx overwrites a room's status within a booking transaction.
func (r *RoomRepo) SetStatusTx(ctx context.Context, tx *sql.Tx, roomID int64, status string) error {
	_, err := tx.ExecContext(ctx, `UPDATE ROOM SET status = ? WHERE room_id = ?`, status, roomID)
	return err
}
