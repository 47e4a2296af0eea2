package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/Patric420/hotel-management/internal/model"
)

// openTestDB creates an in-memory SQLite database with the hotel schema.
// Date columns are declared DATE and timestamps DATETIME so the driver
// hands parsed time values back to the scanners, matching what MySQL with
// parseTime=true produces.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range []string{
		`CREATE TABLE CUSTOMER (
			customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE ROOM (
			room_id INTEGER PRIMARY KEY AUTOINCREMENT,
			room_type TEXT NOT NULL,
			price REAL NOT NULL,
			status TEXT NOT NULL
		)`,
		`CREATE TABLE BOOKING (
			booking_id INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_id INTEGER NOT NULL,
			room_id INTEGER NOT NULL,
			check_in DATE NOT NULL,
			check_out DATE NOT NULL,
			status TEXT NOT NULL
		)`,
		`CREATE TABLE PAYMENT (
			payment_id INTEGER PRIMARY KEY AUTOINCREMENT,
			booking_id INTEGER NOT NULL,
			payment_method TEXT NOT NULL,
			amount REAL NOT NULL,
			reference TEXT NOT NULL,
			payment_date DATETIME NOT NULL
		)`,
		`CREATE TABLE STAFF (
			staff_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			phone TEXT NOT NULL,
			salary REAL NOT NULL
		)`,
		`CREATE TABLE SERVICE (
			service_id INTEGER PRIMARY KEY AUTOINCREMENT,
			service_name TEXT NOT NULL,
			cost REAL NOT NULL
		)`,
		`CREATE TABLE CUSTOMER_SERVICE (
			customer_id INTEGER NOT NULL,
			service_id INTEGER NOT NULL
		)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}

func seedCustomer(t *testing.T, db *sql.DB, name, email, phone string) int64 {
	t.Helper()
	c := &model.Customer{Name: name, Email: email, Phone: phone, Address: "1 Test Lane"}
	require.NoError(t, NewCustomerRepo(db).Create(context.Background(), c))
	return c.ID
}

func seedRoom(t *testing.T, db *sql.DB, roomType string, price float64, status string) int64 {
	t.Helper()
	rm := &model.Room{Type: roomType, Price: price, Status: status}
	require.NoError(t, NewRoomRepo(db).Create(context.Background(), rm))
	return rm.ID
}

// seedBooking inserts a booking through the guarded insert path.
func seedBooking(t *testing.T, db *sql.DB, customerID, roomID int64, checkIn, checkOut, status string) int64 {
	t.Helper()
	in, err := model.ParseDate(checkIn)
	require.NoError(t, err)
	out, err := model.ParseDate(checkOut)
	require.NoError(t, err)
	b := &model.Booking{CustomerID: customerID, RoomID: roomID, CheckIn: in, CheckOut: out, Status: status}

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, NewBookingRepo(db).InsertGuardedTx(ctx, tx, b))
	require.NoError(t, tx.Commit())
	return b.ID
}
