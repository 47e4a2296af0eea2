package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Patric420/hotel-management/internal/availability"
	"github.com/Patric420/hotel-management/internal/metrics"
	"github.com/Patric420/hotel-management/internal/model"
	"github.com/Patric420/hotel-management/internal/queue"
	"github.com/Patric420/hotel-management/internal/repository"
	queue_publisher "github.com/Patric420/hotel-management/internal/service"
)

// BookingHandler serves the booking lifecycle. Every write that depends
// on the availability check runs inside one transaction, so the check
// and the booking/room writes commit or fail together: two concurrent
// requests cannot both pass the check and both commit an overlapping
// stay, and a booking row can no longer land without its room-status
// update.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Rooms    *repository.RoomRepo
	Resolver *availability.Resolver

	// PublishEvents toggles the RabbitMQ booking.confirmed events;
	// disabled in tests.
	PublishEvents bool
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings *repository.BookingRepo, rooms *repository.RoomRepo, resolver *availability.Resolver) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Rooms: rooms, Resolver: resolver, PublishEvents: true}
}

// List handles GET /v1/bookings.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.Bookings.ListDetails(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// Get handles GET /v1/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	detail, err := h.Bookings.GetDetail(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

type bookingRequest struct {
	CustomerID int64  `json:"customer_id"`
	RoomID     int64  `json:"room_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Status     string `json:"status"`
}

// parse validates the payload and converts it into a model.Booking.
// Status defaults to Confirmed. An empty string return means valid.
func (r *bookingRequest) parse() (*model.Booking, string) {
	if r.CustomerID == 0 || r.RoomID == 0 || r.CheckIn == "" || r.CheckOut == "" {
		return nil, "Customer, room, check-in, and check-out dates are required"
	}
	checkIn, err := model.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err.Error()
	}
	checkOut, err := model.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err.Error()
	}
	if checkOut.Before(checkIn.Time) {
		return nil, "Check-out date cannot be before check-in date"
	}
	status := r.Status
	if status == "" {
		status = model.BookingConfirmed
	}
	if !model.ValidBookingStatus(status) {
		return nil, "Invalid status value"
	}
	return &model.Booking{
		CustomerID: r.CustomerID,
		RoomID:     r.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     status,
	}, ""
}

// Create handles POST /v1/bookings. The insert itself carries the
// availability guard: the row only lands when the room exists, is stored
// as Available, and has no overlapping active booking.
func (h *BookingHandler) Create(c echo.Context) error {
	var body bookingRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	booking, msg := body.parse()
	if msg != "" {
		return badRequest(c, msg)
	}

	ctx := c.Request().Context()
	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return repoError(c, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := h.Bookings.InsertGuardedTx(ctx, tx, booking); err != nil {
		if err == repository.ErrRoomUnavailable {
			metrics.IncAvailabilityRejected()
		}
		return repoError(c, err)
	}
	if booking.Active() {
		if err := h.Rooms.SetStatusTx(ctx, tx, booking.RoomID, model.RoomBooked); err != nil {
			return repoError(c, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return repoError(c, err)
	}
	committed = true
	metrics.IncBookingCreated(booking.Status)

	detail, err := h.Bookings.GetDetail(ctx, booking.ID)
	if err != nil {
		return repoError(c, err)
	}
	if booking.Active() {
		h.publishConfirmed(detail)
	}
	return c.JSON(http.StatusCreated, detail)
}

// Update handles PUT /v1/bookings/:id. The conflict scan runs in the
// same transaction as the rewrite and always excludes the booking under
// edit, so keeping the same room and dates passes. The stored room
// status is not re-checked on edit; only the date conflict matters.
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body bookingRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	booking, msg := body.parse()
	if msg != "" {
		return badRequest(c, msg)
	}
	booking.ID = id
	if body.Status == "" {
		return badRequest(c, "Status is required")
	}

	ctx := c.Request().Context()
	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return repoError(c, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	current, err := h.Bookings.GetTx(ctx, tx, id)
	if err != nil {
		return repoError(c, err)
	}

	ok, err := h.Resolver.CanAssignTx(ctx, tx, booking.RoomID, booking.CheckIn, booking.CheckOut, id)
	if err != nil {
		return repoError(c, err)
	}
	if !ok {
		metrics.IncAvailabilityRejected()
		return repoError(c, repository.ErrRoomUnavailable)
	}

	if err := h.Bookings.UpdateTx(ctx, tx, booking); err != nil {
		return repoError(c, err)
	}
	if current.RoomID != booking.RoomID {
		// The old room is simply freed; only the new room is validated.
		if err := h.Rooms.SetStatusTx(ctx, tx, current.RoomID, model.RoomAvailable); err != nil {
			return repoError(c, err)
		}
		if booking.Active() {
			if err := h.Rooms.SetStatusTx(ctx, tx, booking.RoomID, model.RoomBooked); err != nil {
				return repoError(c, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return repoError(c, err)
	}
	committed = true

	detail, err := h.Bookings.GetDetail(ctx, id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// UpdateStatus handles PATCH /v1/bookings/:id/status. Room status side
// effects are plain overwrites: an occupying status books the room,
// Cancelled frees it, Checked-Out leaves it untouched.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if !model.ValidBookingStatus(body.Status) {
		return badRequest(c, "Invalid status value")
	}

	ctx := c.Request().Context()
	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return repoError(c, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	current, err := h.Bookings.GetTx(ctx, tx, id)
	if err != nil {
		return repoError(c, err)
	}
	if err := h.Bookings.SetStatusTx(ctx, tx, id, body.Status); err != nil {
		return repoError(c, err)
	}
	switch {
	case model.BookingStatusActive(body.Status):
		err = h.Rooms.SetStatusTx(ctx, tx, current.RoomID, model.RoomBooked)
	case body.Status == model.BookingCancelled:
		err = h.Rooms.SetStatusTx(ctx, tx, current.RoomID, model.RoomAvailable)
	}
	if err != nil {
		return repoError(c, err)
	}
	if err := tx.Commit(); err != nil {
		return repoError(c, err)
	}
	committed = true

	if body.Status == model.BookingCancelled {
		metrics.IncBookingCancelled()
	}
	if model.BookingStatusActive(body.Status) && !model.BookingStatusActive(current.Status) {
		if detail, err := h.Bookings.GetDetail(ctx, id); err == nil {
			h.publishConfirmed(detail)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": body.Status})
}

// Delete handles DELETE /v1/bookings/:id. The row is removed outright
// and the room is freed.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	ctx := c.Request().Context()
	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return repoError(c, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	current, err := h.Bookings.GetTx(ctx, tx, id)
	if err != nil {
		return repoError(c, err)
	}
	if err := h.Bookings.DeleteTx(ctx, tx, id); err != nil {
		return repoError(c, err)
	}
	if err := h.Rooms.SetStatusTx(ctx, tx, current.RoomID, model.RoomAvailable); err != nil {
		return repoError(c, err)
	}
	if err := tx.Commit(); err != nil {
		return repoError(c, err)
	}
	committed = true
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// publishConfirmed fires the booking.confirmed event in the background;
// publish failures are logged by the publisher and never fail a request.
func (h *BookingHandler) publishConfirmed(d *repository.BookingDetail) {
	if !h.PublishEvents {
		return
	}
	event := queue.BookingConfirmedEvent{
		BookingID:    d.ID,
		CustomerID:   d.CustomerID,
		CustomerName: d.CustomerName,
		RoomID:       d.RoomID,
		RoomType:     d.RoomType,
		RoomPrice:    d.RoomPrice,
		CheckIn:      d.CheckIn.String(),
		CheckOut:     d.CheckOut.String(),
		Status:       d.Status,
		ConfirmedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingConfirmed(ctx, event)
	}()
}
