package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Patric420/hotel-management/internal/model"
	"github.com/Patric420/hotel-management/internal/repository"
)

// StaffHandler serves CRUD endpoints for hotel employees.
type StaffHandler struct {
	Staff *repository.StaffRepo
}

// NewStaffHandler constructs a StaffHandler.
func NewStaffHandler(staff *repository.StaffRepo) *StaffHandler {
	return &StaffHandler{Staff: staff}
}

// List handles GET /v1/staff.
func (h *StaffHandler) List(c echo.Context) error {
	staff, err := h.Staff.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, staff)
}

// Get handles GET /v1/staff/:id.
func (h *StaffHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	member, err := h.Staff.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, member)
}

type staffRequest struct {
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Phone  string  `json:"phone"`
	Salary float64 `json:"salary"`
}

func (r *staffRequest) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(r.Role)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Name == "" || r.Role == "" || r.Phone == "" {
		return "Name, role, and phone are required"
	}
	if r.Salary < 0 {
		return "Salary cannot be negative"
	}
	return ""
}

// Create handles POST /v1/staff.
func (h *StaffHandler) Create(c echo.Context) error {
	var body staffRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := body.validate(); msg != "" {
		return badRequest(c, msg)
	}
	member := &model.Staff{Name: body.Name, Role: body.Role, Phone: body.Phone, Salary: body.Salary}
	if err := h.Staff.Create(c.Request().Context(), member); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, member)
}

// Update handles PUT /v1/staff/:id.
func (h *StaffHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body staffRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := body.validate(); msg != "" {
		return badRequest(c, msg)
	}
	member := &model.Staff{ID: id, Name: body.Name, Role: body.Role, Phone: body.Phone, Salary: body.Salary}
	if err := h.Staff.Update(c.Request().Context(), member); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, member)
}

// Delete handles DELETE /v1/staff/:id.
func (h *StaffHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := h.Staff.Delete(c.Request().Context(), id); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
