package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Patric420/hotel-management/internal/model"
	"github.com/Patric420/hotel-management/internal/repository"
)

// ServiceHandler serves CRUD endpoints for extra services plus the
// flat-discount bulk operation.
type ServiceHandler struct {
	Services *repository.ServiceRepo
}

// NewServiceHandler constructs a ServiceHandler.
func NewServiceHandler(services *repository.ServiceRepo) *ServiceHandler {
	return &ServiceHandler{Services: services}
}

// List handles GET /v1/services.
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.Services.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, services)
}

// Get handles GET /v1/services/:id.
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	service, err := h.Services.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, service)
}

type serviceRequest struct {
	Name string  `json:"service_name"`
	Cost float64 `json:"cost"`
}

func (r *serviceRequest) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return "Service name is required"
	}
	if r.Cost < 0 {
		return "Cost cannot be negative"
	}
	return ""
}

// Create handles POST /v1/services.
func (h *ServiceHandler) Create(c echo.Context) error {
	var body serviceRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := body.validate(); msg != "" {
		return badRequest(c, msg)
	}
	service := &model.Service{Name: body.Name, Cost: body.Cost}
	if err := h.Services.Create(c.Request().Context(), service); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, service)
}

// Update handles PUT /v1/services/:id.
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body serviceRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := body.validate(); msg != "" {
		return badRequest(c, msg)
	}
	service := &model.Service{ID: id, Name: body.Name, Cost: body.Cost}
	if err := h.Services.Update(c.Request().Context(), service); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, service)
}

// Delete handles DELETE /v1/services/:id.
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := h.Services.Delete(c.Request().Context(), id); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ApplyDiscount handles POST /v1/services/apply-discount: 10% off every
// service cost, rounded to cents. The operation is not idempotent.
func (h *ServiceHandler) ApplyDiscount(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.Services.ApplyDiscount(ctx); err != nil {
		return repoError(c, err)
	}
	services, err := h.Services.List(ctx)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Discount applied to all services", "services": services})
}
