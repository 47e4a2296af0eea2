package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Patric420/hotel-management/internal/availability"
	"github.com/Patric420/hotel-management/internal/model"
	"github.com/Patric420/hotel-management/internal/repository"
)

// RoomHandler serves CRUD endpoints for rooms plus the available-room
// search backed by the availability resolver.
type RoomHandler struct {
	Rooms    *repository.RoomRepo
	Resolver *availability.Resolver
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(rooms *repository.RoomRepo, resolver *availability.Resolver) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Resolver: resolver}
}

// List handles GET /v1/rooms.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get handles GET /v1/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	room, err := h.Rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

type roomRequest struct {
	Type   string  `json:"room_type"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

func (r *roomRequest) validate() string {
	r.Type = strings.TrimSpace(r.Type)
	if r.Type == "" || r.Price <= 0 {
		return "Room type and price are required"
	}
	if r.Status == "" {
		r.Status = model.RoomAvailable
	}
	if !model.ValidRoomStatus(r.Status) {
		return "Invalid status value"
	}
	return ""
}

// Create handles POST /v1/rooms.
func (h *RoomHandler) Create(c echo.Context) error {
	var body roomRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := body.validate(); msg != "" {
		return badRequest(c, msg)
	}
	room := &model.Room{Type: body.Type, Price: body.Price, Status: body.Status}
	if err := h.Rooms.Create(c.Request().Context(), room); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}

// Update handles PUT /v1/rooms/:id.
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body roomRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := body.validate(); msg != "" {
		return badRequest(c, msg)
	}
	room := &model.Room{ID: id, Type: body.Type, Price: body.Price, Status: body.Status}
	if err := h.Rooms.Update(c.Request().Context(), room); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /v1/rooms/:id. Rooms with active bookings are
// protected.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := h.Rooms.Delete(c.Request().Context(), id); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Available handles GET /v1/rooms/available?check_in=...&check_out=...
// with an optional booking_id to exclude from the conflict scan (used by
// the edit-booking room picker so the booking does not conflict with
// itself).
func (h *RoomHandler) Available(c echo.Context) error {
	inStr := c.QueryParam("check_in")
	outStr := c.QueryParam("check_out")
	if inStr == "" || outStr == "" {
		return badRequest(c, "Check-in and check-out dates are required")
	}
	checkIn, err := model.ParseDate(inStr)
	if err != nil {
		return badRequest(c, err.Error())
	}
	checkOut, err := model.ParseDate(outStr)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if checkOut.Before(checkIn.Time) {
		return badRequest(c, "Check-out date cannot be before check-in date")
	}
	var excludeID int64
	if s := c.QueryParam("booking_id"); s != "" {
		excludeID, err = strconv.ParseInt(s, 10, 64)
		if err != nil || excludeID <= 0 {
			return badRequest(c, "invalid booking_id")
		}
	}
	rooms, err := h.Resolver.FindAvailableRooms(c.Request().Context(), checkIn, checkOut, excludeID)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}
