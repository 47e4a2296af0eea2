package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Patric420/hotel-management/internal/repository"
)

// DashboardHandler serves the aggregated back-office dashboard.
type DashboardHandler struct {
	Dashboard *repository.DashboardRepo
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(dashboard *repository.DashboardRepo) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

// Stats handles GET /v1/dashboard.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.Dashboard.Load(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
