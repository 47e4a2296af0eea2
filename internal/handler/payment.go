package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Patric420/hotel-management/internal/model"
	"github.com/Patric420/hotel-management/internal/repository"
)

// PaymentHandler serves payment endpoints. Each booking settles with at
// most one payment; the reference code and timestamp are server-assigned.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(payments *repository.PaymentRepo) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// List handles GET /v1/payments.
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.Payments.ListDetails(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

// Get handles GET /v1/payments/:id.
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	detail, err := h.Payments.GetDetail(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

type paymentRequest struct {
	BookingID int64   `json:"booking_id"`
	Method    string  `json:"payment_method"`
	Amount    float64 `json:"amount"`
}

func (r *paymentRequest) validate(requireBooking bool) string {
	r.Method = strings.TrimSpace(r.Method)
	if (requireBooking && r.BookingID == 0) || r.Method == "" || r.Amount <= 0 {
		return "Booking, payment method, and a positive amount are required"
	}
	return ""
}

// Create handles POST /v1/payments.
func (h *PaymentHandler) Create(c echo.Context) error {
	var body paymentRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := body.validate(true); msg != "" {
		return badRequest(c, msg)
	}
	payment := &model.Payment{BookingID: body.BookingID, Method: body.Method, Amount: body.Amount}
	if err := h.Payments.Create(c.Request().Context(), payment); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, payment)
}

// Update handles PUT /v1/payments/:id. Only the method and amount can
// change; the booking linkage, reference and timestamp are immutable.
func (h *PaymentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body paymentRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := body.validate(false); msg != "" {
		return badRequest(c, msg)
	}
	ctx := c.Request().Context()
	if err := h.Payments.Update(ctx, id, body.Method, body.Amount); err != nil {
		return repoError(c, err)
	}
	detail, err := h.Payments.GetDetail(ctx, id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Delete handles DELETE /v1/payments/:id.
func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := h.Payments.Delete(c.Request().Context(), id); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
