// Package handler exposes the HTTP handlers for the booking API.  The
// handlers bind and validate request input, delegate to the service
// layer and translate its sentinel errors into HTTP statuses; no
// business rules live here.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/logger"
	"github.com/iliyamo/hotel-booking/internal/service"
)

// dateLayout is the wire format for all dates, check-out exclusive.
const dateLayout = "2006-01-02"

// Handler aggregates the dependencies shared by every endpoint.
type Handler struct {
	Service *service.Service
	Log     *logger.Logger
}

// New returns a Handler bound to the given service.
func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{Service: svc, Log: log}
}

// parseDate parses a YYYY-MM-DD value, normalized to midnight UTC.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// parseDateRange reads the check_in/check_out query parameters.  Both
// are required; range validity (out after in) is the service's call.
func parseDateRange(c echo.Context) (checkIn, checkOut time.Time, err error) {
	checkIn, err = parseDate(c.QueryParam("check_in"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("check_in must be YYYY-MM-DD")
	}
	checkOut, err = parseDate(c.QueryParam("check_out"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("check_out must be YYYY-MM-DD")
	}
	return checkIn, checkOut, nil
}

// serviceError maps service sentinels onto HTTP responses.  Unknown
// errors are logged and surface as an opaque 500.
func (h *Handler) serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidDateRange):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check-out date must be after check-in date"})
	case errors.Is(err, service.ErrHotelNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
	case errors.Is(err, service.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	case errors.Is(err, service.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	case errors.Is(err, service.ErrGuestNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no guest found for this email"})
	case errors.Is(err, service.ErrInsufficientInventory):
		return c.JSON(http.StatusConflict, echo.Map{"error": "room is not available for the requested dates"})
	case errors.Is(err, service.ErrAlreadyCancelled):
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking is already cancelled"})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "booking belongs to a different guest"})
	default:
		h.Log.Error("request failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
