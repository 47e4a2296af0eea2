package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Patric420/hotel-management/internal/model"
)

func insertGuarded(t *testing.T, db *sql.DB, b *model.Booking) error {
	t.Helper()
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	if err := NewBookingRepo(db).InsertGuardedTx(ctx, tx, b); err != nil {
		_ = tx.Rollback()
		return err
	}
	require.NoError(t, tx.Commit())
	return nil
}

func mustBooking(t *testing.T, customerID, roomID int64, checkIn, checkOut, status string) *model.Booking {
	t.Helper()
	in, err := model.ParseDate(checkIn)
	require.NoError(t, err)
	out, err := model.ParseDate(checkOut)
	require.NoError(t, err)
	return &model.Booking{CustomerID: customerID, RoomID: roomID, CheckIn: in, CheckOut: out, Status: status}
}

func TestInsertGuardedTx(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "Ada Lovelace", "ada@example.com", "0700000001")
	room := seedRoom(t, db, "Double", 120, model.RoomAvailable)

	b := mustBooking(t, customer, room, "2025-06-10", "2025-06-15", model.BookingConfirmed)
	require.NoError(t, insertGuarded(t, db, b))
	assert.NotZero(t, b.ID)

	t.Run("overlap rejected", func(t *testing.T) {
		dup := mustBooking(t, customer, room, "2025-06-12", "2025-06-20", model.BookingConfirmed)
		assert.ErrorIs(t, insertGuarded(t, db, dup), ErrRoomUnavailable)
	})

	t.Run("touching boundary rejected", func(t *testing.T) {
		dup := mustBooking(t, customer, room, "2025-06-15", "2025-06-20", model.BookingConfirmed)
		assert.ErrorIs(t, insertGuarded(t, db, dup), ErrRoomUnavailable)
	})

	t.Run("disjoint dates accepted", func(t *testing.T) {
		next := mustBooking(t, customer, room, "2025-06-16", "2025-06-20", model.BookingConfirmed)
		require.NoError(t, insertGuarded(t, db, next))
	})

	t.Run("unknown room rejected", func(t *testing.T) {
		ghost := mustBooking(t, customer, 9999, "2025-09-01", "2025-09-05", model.BookingConfirmed)
		assert.ErrorIs(t, insertGuarded(t, db, ghost), ErrRoomUnavailable)
	})

	t.Run("maintenance room rejected", func(t *testing.T) {
		down := seedRoom(t, db, "Suite", 250, model.RoomMaintenance)
		b := mustBooking(t, customer, down, "2025-09-01", "2025-09-05", model.BookingConfirmed)
		assert.ErrorIs(t, insertGuarded(t, db, b), ErrRoomUnavailable)
	})
}

func TestInsertGuardedTxIgnoresInactiveBookings(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "Ada Lovelace", "ada@example.com", "0700000001")
	room := seedRoom(t, db, "Double", 120, model.RoomAvailable)
	ctx := context.Background()
	repo := NewBookingRepo(db)

	old := seedBooking(t, db, customer, room, "2025-06-10", "2025-06-15", model.BookingConfirmed)
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.SetStatusTx(ctx, tx, old, model.BookingCancelled))
	require.NoError(t, tx.Commit())

	// A cancelled stay no longer blocks the same dates.
	b := mustBooking(t, customer, room, "2025-06-10", "2025-06-15", model.BookingConfirmed)
	require.NoError(t, insertGuarded(t, db, b))
}

func TestBookingGetAndDetail(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "Ada Lovelace", "ada@example.com", "0700000001")
	room := seedRoom(t, db, "Suite", 250, model.RoomAvailable)
	id := seedBooking(t, db, customer, room, "2025-06-10", "2025-06-15", model.BookingConfirmed)
	ctx := context.Background()
	repo := NewBookingRepo(db)

	b, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", b.CheckIn.String())
	assert.Equal(t, "2025-06-15", b.CheckOut.String())

	d, err := repo.GetDetail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", d.CustomerName)
	assert.Equal(t, "Suite", d.RoomType)
	assert.Equal(t, 250.0, d.RoomPrice)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	_, err = repo.GetDetail(ctx, 9999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingUpdateTxAndDeleteTx(t *testing.T) {
	db := openTestDB(t)
	customer := seedCustomer(t, db, "Ada Lovelace", "ada@example.com", "0700000001")
	room := seedRoom(t, db, "Single", 80, model.RoomAvailable)
	other := seedRoom(t, db, "Double", 120, model.RoomAvailable)
	id := seedBooking(t, db, customer, room, "2025-06-10", "2025-06-15", model.BookingConfirmed)
	ctx := context.Background()
	repo := NewBookingRepo(db)

	edited := mustBooking(t, customer, other, "2025-07-01", "2025-07-05", model.BookingCheckedIn)
	edited.ID = id
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateTx(ctx, tx, edited))
	require.NoError(t, tx.Commit())

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, other, got.RoomID)
	assert.Equal(t, "2025-07-01", got.CheckIn.String())
	assert.Equal(t, model.BookingCheckedIn, got.Status)

	tx, err = db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteTx(ctx, tx, id))
	require.NoError(t, tx.Commit())
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
