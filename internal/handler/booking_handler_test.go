package handler_test

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Patric420/hotel-management/internal/availability"
	"github.com/Patric420/hotel-management/internal/handler"
	"github.com/Patric420/hotel-management/internal/model"
	"github.com/Patric420/hotel-management/internal/repository"
	"github.com/Patric420/hotel-management/internal/router"
)

type testAPI struct {
	e  *echo.Echo
	db *sql.DB
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range []string{
		`CREATE TABLE CUSTOMER (
			customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL, email TEXT NOT NULL, phone TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE ROOM (
			room_id INTEGER PRIMARY KEY AUTOINCREMENT,
			room_type TEXT NOT NULL, price REAL NOT NULL, status TEXT NOT NULL
		)`,
		`CREATE TABLE BOOKING (
			booking_id INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_id INTEGER NOT NULL, room_id INTEGER NOT NULL,
			check_in DATE NOT NULL, check_out DATE NOT NULL, status TEXT NOT NULL
		)`,
		`CREATE TABLE PAYMENT (
			payment_id INTEGER PRIMARY KEY AUTOINCREMENT,
			booking_id INTEGER NOT NULL, payment_method TEXT NOT NULL,
			amount REAL NOT NULL, reference TEXT NOT NULL, payment_date DATETIME NOT NULL
		)`,
		`CREATE TABLE STAFF (
			staff_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL, role TEXT NOT NULL, phone TEXT NOT NULL, salary REAL NOT NULL
		)`,
		`CREATE TABLE SERVICE (
			service_id INTEGER PRIMARY KEY AUTOINCREMENT,
			service_name TEXT NOT NULL, cost REAL NOT NULL
		)`,
		`CREATE TABLE CUSTOMER_SERVICE (customer_id INTEGER NOT NULL, service_id INTEGER NOT NULL)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)
	resolver := availability.NewResolver(db)

	bookingHandler := handler.NewBookingHandler(bookings, rooms, resolver)
	bookingHandler.PublishEvents = false

	e := echo.New()
	router.Register(e, router.Handlers{
		Customers: handler.NewCustomerHandler(repository.NewCustomerRepo(db)),
		Rooms:     handler.NewRoomHandler(rooms, resolver),
		Bookings:  bookingHandler,
		Payments:  handler.NewPaymentHandler(repository.NewPaymentRepo(db)),
		Staff:     handler.NewStaffHandler(repository.NewStaffRepo(db)),
		Services:  handler.NewServiceHandler(repository.NewServiceRepo(db)),
		Dashboard: handler.NewDashboardHandler(repository.NewDashboardRepo(db)),
	}, db, nil)
	return &testAPI{e: e, db: db}
}

func (a *testAPI) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func (a *testAPI) addCustomer(t *testing.T, name, email, phone string) int64 {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/v1/customers",
		fmt.Sprintf(`{"name":%q,"email":%q,"phone":%q,"address":"1 Test Lane"}`, name, email, phone))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var c model.Customer
	decode(t, rec, &c)
	return c.ID
}

func (a *testAPI) addRoom(t *testing.T, roomType string, price float64) int64 {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/v1/rooms",
		fmt.Sprintf(`{"room_type":%q,"price":%v}`, roomType, price))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var rm model.Room
	decode(t, rec, &rm)
	return rm.ID
}

func (a *testAPI) roomStatus(t *testing.T, id int64) string {
	t.Helper()
	rec := a.do(t, http.MethodGet, fmt.Sprintf("/v1/rooms/%d", id), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rm model.Room
	decode(t, rec, &rm)
	return rm.Status
}

func bookingBody(customerID, roomID int64, checkIn, checkOut, status string) string {
	b := fmt.Sprintf(`{"customer_id":%d,"room_id":%d,"check_in":%q,"check_out":%q`,
		customerID, roomID, checkIn, checkOut)
	if status != "" {
		b += fmt.Sprintf(`,"status":%q`, status)
	}
	return b + "}"
}

func TestBookingCreate(t *testing.T) {
	api := newTestAPI(t)
	customer := api.addCustomer(t, "Ada", "ada@example.com", "0700000001")
	room := api.addRoom(t, "Double", 120)

	rec := api.do(t, http.MethodPost, "/v1/bookings", bookingBody(customer, room, "2025-06-10", "2025-06-15", ""))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var detail repository.BookingDetail
	decode(t, rec, &detail)
	assert.Equal(t, model.BookingConfirmed, detail.Status, "status defaults to Confirmed")
	assert.Equal(t, "Ada", detail.CustomerName)
	assert.Equal(t, "Double", detail.RoomType)
	assert.Equal(t, model.RoomBooked, api.roomStatus(t, room))

	t.Run("overlapping dates conflict", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/v1/bookings", bookingBody(customer, room, "2025-06-12", "2025-06-20", ""))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "not available")
	})

	t.Run("touching boundary conflicts", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/v1/bookings", bookingBody(customer, room, "2025-06-15", "2025-06-20", ""))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestBookingCreateValidation(t *testing.T) {
	api := newTestAPI(t)
	customer := api.addCustomer(t, "Ada", "ada@example.com", "0700000001")
	room := api.addRoom(t, "Double", 120)

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{"customer_id":1}`},
		{"bad date format", bookingBody(customer, room, "10/06/2025", "2025-06-15", "")},
		{"checkout before checkin", bookingBody(customer, room, "2025-06-15", "2025-06-10", "")},
		{"unknown status", bookingBody(customer, room, "2025-06-10", "2025-06-15", "Pending")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/v1/bookings", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestBookingUpdateExcludesSelf(t *testing.T) {
	api := newTestAPI(t)
	customer := api.addCustomer(t, "Ada", "ada@example.com", "0700000001")
	room := api.addRoom(t, "Double", 120)

	rec := api.do(t, http.MethodPost, "/v1/bookings", bookingBody(customer, room, "2025-06-10", "2025-06-15", ""))
	require.Equal(t, http.StatusCreated, rec.Code)
	var detail repository.BookingDetail
	decode(t, rec, &detail)
	path := fmt.Sprintf("/v1/bookings/%d", detail.ID)

	// Saving the booking with the same room and dates must not conflict
	// with itself.
	rec = api.do(t, http.MethodPut, path, bookingBody(customer, room, "2025-06-10", "2025-06-15", model.BookingConfirmed))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Shifting the dates within its own window is also fine.
	rec = api.do(t, http.MethodPut, path, bookingBody(customer, room, "2025-06-12", "2025-06-18", model.BookingConfirmed))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &detail)
	assert.Equal(t, "2025-06-12", detail.CheckIn.String())
	assert.Equal(t, "2025-06-18", detail.CheckOut.String())
}

func TestBookingUpdateConflictsWithOthers(t *testing.T) {
	api := newTestAPI(t)
	customer := api.addCustomer(t, "Ada", "ada@example.com", "0700000001")
	roomA := api.addRoom(t, "Double", 120)
	roomB := api.addRoom(t, "Single", 80)

	rec := api.do(t, http.MethodPost, "/v1/bookings", bookingBody(customer, roomA, "2025-06-10", "2025-06-15", ""))
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = api.do(t, http.MethodPost, "/v1/bookings", bookingBody(customer, roomB, "2025-07-01", "2025-07-05", ""))
	require.Equal(t, http.StatusCreated, rec.Code)
	var second repository.BookingDetail
	decode(t, rec, &second)

	// Moving the second booking onto the first one's room and dates is a
	// conflict even though the second booking is excluded from the scan.
	rec = api.do(t, http.MethodPut, fmt.Sprintf("/v1/bookings/%d", second.ID),
		bookingBody(customer, roomA, "2025-06-12", "2025-06-20", model.BookingConfirmed))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Moving it to clear dates on that room works and frees its old room.
	rec = api.do(t, http.MethodPut, fmt.Sprintf("/v1/bookings/%d", second.ID),
		bookingBody(customer, roomA, "2025-06-16", "2025-06-20", model.BookingConfirmed))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.RoomAvailable, api.roomStatus(t, roomB))
	assert.Equal(t, model.RoomBooked, api.roomStatus(t, roomA))
}

func TestBookingStatusLifecycle(t *testing.T) {
	api := newTestAPI(t)
	customer := api.addCustomer(t, "Ada", "ada@example.com", "0700000001")
	room := api.addRoom(t, "Double", 120)

	rec := api.do(t, http.MethodPost, "/v1/bookings", bookingBody(customer, room, "2025-06-10", "2025-06-15", ""))
	require.Equal(t, http.StatusCreated, rec.Code)
	var detail repository.BookingDetail
	decode(t, rec, &detail)
	statusPath := fmt.Sprintf("/v1/bookings/%d/status", detail.ID)

	rec = api.do(t, http.MethodPatch, statusPath, `{"status":"Checked-In"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.RoomBooked, api.roomStatus(t, room))

	rec = api.do(t, http.MethodPatch, statusPath, `{"status":"Checked-Out"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A checked-out stay no longer blocks the calendar.
	rec = api.do(t, http.MethodPost, "/v1/bookings", bookingBody(customer, room, "2025-06-12", "2025-06-20", ""))
	assert.Equal(t, http.StatusConflict, rec.Code, "room status is still Booked until freed")

	rec = api.do(t, http.MethodPatch, statusPath, `{"status":"Cancelled"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.RoomAvailable, api.roomStatus(t, room))

	rec = api.do(t, http.MethodPost, "/v1/bookings", bookingBody(customer, room, "2025-06-12", "2025-06-20", ""))
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodPatch, statusPath, `{"status":"No-Show"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = api.do(t, http.MethodPatch, "/v1/bookings/9999/status", `{"status":"Cancelled"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingDeleteFreesRoom(t *testing.T) {
	api := newTestAPI(t)
	customer := api.addCustomer(t, "Ada", "ada@example.com", "0700000001")
	room := api.addRoom(t, "Double", 120)

	rec := api.do(t, http.MethodPost, "/v1/bookings", bookingBody(customer, room, "2025-06-10", "2025-06-15", ""))
	require.Equal(t, http.StatusCreated, rec.Code)
	var detail repository.BookingDetail
	decode(t, rec, &detail)
	path := fmt.Sprintf("/v1/bookings/%d", detail.ID)

	rec = api.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.RoomAvailable, api.roomStatus(t, room))

	rec = api.do(t, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = api.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAvailableRoomsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	customer := api.addCustomer(t, "Ada", "ada@example.com", "0700000001")
	roomA := api.addRoom(t, "Double", 120)
	roomB := api.addRoom(t, "Single", 80)

	rec := api.do(t, http.MethodPost, "/v1/bookings", bookingBody(customer, roomA, "2025-06-10", "2025-06-15", ""))
	require.Equal(t, http.StatusCreated, rec.Code)
	var detail repository.BookingDetail
	decode(t, rec, &detail)

	rec = api.do(t, http.MethodGet, "/v1/rooms/available?check_in=2025-06-12&check_out=2025-06-20", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rooms []model.Room
	decode(t, rec, &rooms)
	require.Len(t, rooms, 1)
	assert.Equal(t, roomB, rooms[0].ID)

	// The edit picker passes the booking under edit to see its own room.
	rec = api.do(t, http.MethodGet,
		fmt.Sprintf("/v1/rooms/available?check_in=2025-06-12&check_out=2025-06-20&booking_id=%d", detail.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &rooms)
	assert.Len(t, rooms, 2)

	rec = api.do(t, http.MethodGet, "/v1/rooms/available?check_in=2025-06-12", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = api.do(t, http.MethodGet, "/v1/rooms/available?check_in=2025-06-20&check_out=2025-06-12", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
