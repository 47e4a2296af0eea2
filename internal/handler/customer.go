package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Patric420/hotel-management/internal/model"
	"github.com/Patric420/hotel-management/internal/repository"
)

// CustomerHandler serves CRUD endpoints for hotel guests.
type CustomerHandler struct {
	Customers *repository.CustomerRepo
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(customers *repository.CustomerRepo) *CustomerHandler {
	return &CustomerHandler{Customers: customers}
}

// List handles GET /v1/customers.
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.Customers.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, customers)
}

// Get handles GET /v1/customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	customer, err := h.Customers.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

type customerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r *customerRequest) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	if r.Name == "" || r.Email == "" || r.Phone == "" {
		return "Name, email, and phone are required"
	}
	return ""
}

// Create handles POST /v1/customers.
func (h *CustomerHandler) Create(c echo.Context) error {
	var body customerRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := body.validate(); msg != "" {
		return badRequest(c, msg)
	}
	customer := &model.Customer{Name: body.Name, Email: body.Email, Phone: body.Phone, Address: body.Address}
	if err := h.Customers.Create(c.Request().Context(), customer); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, customer)
}

// Update handles PUT /v1/customers/:id.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body customerRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := body.validate(); msg != "" {
		return badRequest(c, msg)
	}
	customer := &model.Customer{ID: id, Name: body.Name, Email: body.Email, Phone: body.Phone, Address: body.Address}
	if err := h.Customers.Update(c.Request().Context(), customer); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /v1/customers/:id.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := h.Customers.Delete(c.Request().Context(), id); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
