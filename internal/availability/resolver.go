// Package availability decides whether a room can be assigned for a stay
// interval. It is the single authority for the booking conflict rule:
// every call site that needs to know "is this room free for these dates"
// (booking creation, booking update, free-room search) routes through the
// one predicate defined here instead of restating it.
package availability

import (
	"context"
	"database/sql"

	"github.com/Patric420/hotel-management/internal/model"
)

// activeStatuses enumerates the booking states that occupy a room.
const activeStatuses = "('" + model.BookingConfirmed + "', '" + model.BookingCheckedIn + "')"

// NoConflictClause is the shared anti-join deciding that no active,
// non-excluded booking of room alias r overlaps a candidate interval.
// Bounds are inclusive: an existing booking whose check_out equals the
// candidate check_in still conflicts.
//
// Placeholders, in order, are those produced by NoConflictArgs: the
// excluded booking id twice (0 disables the exclusion) followed by the
// candidate check_out and check_in.
const NoConflictClause = `NOT EXISTS (
		SELECT 1 FROM BOOKING b
		WHERE b.room_id = r.room_id
		  AND b.status IN ` + activeStatuses + `
		  AND (? = 0 OR b.booking_id != ?)
		  AND b.check_in <= ? AND b.check_out >= ?
	)`

// NoConflictArgs returns the bind arguments for NoConflictClause.
// excludeBookingID removes one booking from the comparison set; pass 0
// for none. Exclusion is what lets an edit that keeps the same room and
// dates pass: the booking being edited must not conflict with itself.
func NoConflictArgs(excludeBookingID int64, checkIn, checkOut model.Date) []interface{} {
	return []interface{}{excludeBookingID, excludeBookingID, checkOut, checkIn}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Resolver answers availability questions against the relational store.
// All methods are read-only; storage failures propagate unchanged and an
// empty result set is the answer "no rooms", never an error.
type Resolver struct {
	db *sql.DB
}

// NewResolver returns a Resolver bound to the given database.
func NewResolver(db *sql.DB) *Resolver { return &Resolver{db: db} }

// FindAvailableRooms returns every room that is not under maintenance and
// has no active, non-excluded booking overlapping [checkIn, checkOut],
// ordered by room id ascending. A room under maintenance is excluded even
// when it has zero bookings.
func (r *Resolver) FindAvailableRooms(ctx context.Context, checkIn, checkOut model.Date, excludeBookingID int64) ([]model.Room, error) {
	const q = `SELECT r.room_id, r.room_type, r.price, r.status
		FROM ROOM r
		WHERE r.status != '` + model.RoomMaintenance + `'
		  AND ` + NoConflictClause + `
		ORDER BY r.room_id`
	rows, err := r.db.QueryContext(ctx, q, NoConflictArgs(excludeBookingID, checkIn, checkOut)...)
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

// IsRoomAvailable reports whether the given room would be returned by
// FindAvailableRooms for the same interval and exclusion: not under
// maintenance and free of overlapping active bookings. A room id that
// does not exist yields false.
func (r *Resolver) IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut model.Date, excludeBookingID int64) (bool, error) {
	const q = `SELECT 1 FROM ROOM r
		WHERE r.room_id = ?
		  AND r.status != '` + model.RoomMaintenance + `'
		  AND ` + NoConflictClause
	return r.exists(ctx, r.db, q, roomID, excludeBookingID, checkIn, checkOut)
}

// CanAssignTx is the date-only variant used when editing an existing
// booking: the stored room status is not re-checked, only the conflict
// scan, with the booking under edit excluded from the comparison set.
// It runs inside the caller's transaction so the check and the following
// write commit or fail together.
func (r *Resolver) CanAssignTx(ctx context.Context, tx *sql.Tx, roomID int64, checkIn, checkOut model.Date, excludeBookingID int64) (bool, error) {
	const q = `SELECT 1 FROM ROOM r
		WHERE r.room_id = ?
		  AND ` + NoConflictClause
	return r.exists(ctx, tx, q, roomID, excludeBookingID, checkIn, checkOut)
}

func (r *Resolver) exists(ctx context.Context, q querier, query string, roomID, excludeBookingID int64, checkIn, checkOut model.Date) (bool, error) {
	args := append([]interface{}{roomID}, NoConflictArgs(excludeBookingID, checkIn, checkOut)...)
	var one int
	err := q.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
