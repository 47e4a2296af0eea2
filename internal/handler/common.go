package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Patric420/hotel-management/internal/repository"
)

// pathID parses the :id path parameter into a positive integer.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// repoStatus maps repository sentinels onto HTTP responses so every
// handler reports the same status category for the same failure:
// 404 for missing references, 409 for conflicts, 500 otherwise.
var repoStatus = map[error]struct {
	code int
	msg  string
}{
	repository.ErrCustomerNotFound: {http.StatusNotFound, "Customer not found"},
	repository.ErrRoomNotFound:     {http.StatusNotFound, "Room not found"},
	repository.ErrBookingNotFound:  {http.StatusNotFound, "Booking not found"},
	repository.ErrPaymentNotFound:  {http.StatusNotFound, "Payment not found"},
	repository.ErrStaffNotFound:    {http.StatusNotFound, "Staff not found"},
	repository.ErrServiceNotFound:  {http.StatusNotFound, "Service not found"},

	repository.ErrDuplicateCustomer:    {http.StatusConflict, "A customer with this email or phone already exists"},
	repository.ErrDuplicateStaffPhone:  {http.StatusConflict, "A staff with this phone number already exists"},
	repository.ErrDuplicateServiceName: {http.StatusConflict, "A service with this name already exists"},
	repository.ErrPaymentExists:        {http.StatusConflict, "A payment already exists for this booking"},
	repository.ErrRoomUnavailable:      {http.StatusConflict, "The selected room is not available for the chosen dates"},
	repository.ErrRoomHasBookings:      {http.StatusConflict, "Cannot delete room as it has active bookings"},
	repository.ErrServiceAssigned:      {http.StatusConflict, "Cannot delete service as it is assigned to customers"},
}

// repoError writes the response for an error returned by the repository
// layer. Unknown errors become a generic 500 without leaking internals.
func repoError(c echo.Context, err error) error {
	for sentinel, resp := range repoStatus {
		if errors.Is(err, sentinel) {
			return c.JSON(resp.code, echo.Map{"error": resp.msg})
		}
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}
