package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/service"
)

// bookingRequest is the body of POST /v1/bookings.
type bookingRequest struct {
	HotelID         uint64  `json:"hotel_id"`
	RoomID          uint64  `json:"room_id"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	IsCorporate     bool    `json:"is_corporate"`
	CompanyName     *string `json:"company_name"`
	GuestCount      int     `json:"guest_count"`
	PurposeOfTravel string  `json:"purpose_of_travel"`
}

// CreateBooking books a room and returns the confirmation with the
// booking reference.
func (h *Handler) CreateBooking(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.HotelID == 0 || req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "hotel_id and room_id are required"})
	}
	if strings.TrimSpace(req.GuestName) == "" || strings.TrimSpace(req.GuestEmail) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest_name and guest_email are required"})
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
	}

	conf, err := h.Service.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		HotelID:         req.HotelID,
		RoomID:          req.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestName:       strings.TrimSpace(req.GuestName),
		GuestEmail:      strings.TrimSpace(req.GuestEmail),
		IsCorporate:     req.IsCorporate,
		CompanyName:     req.CompanyName,
		GuestCount:      req.GuestCount,
		PurposeOfTravel: req.PurposeOfTravel,
	})
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, conf)
}

// GetBooking returns the detailed projection for one booking reference.
func (h *Handler) GetBooking(c echo.Context) error {
	detail, err := h.Service.GetBooking(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// ListBookings lists a guest's bookings by email.  status filters by
// booking status; include_past=true keeps stays that already ended.
func (h *Handler) ListBookings(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}
	bookings, err := h.Service.ListBookingsByEmail(c.Request().Context(), email, c.QueryParam("status"), queryBool(c, "include_past"))
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListCorporateBookings reports every booking under one company with
// aggregate spend and savings.
func (h *Handler) ListCorporateBookings(c echo.Context) error {
	company := c.QueryParam("company")
	if company == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "company is required"})
	}
	report, err := h.Service.ListCorporateBookings(c.Request().Context(), company)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// cancelRequest is the body of POST /v1/bookings/:reference/cancel.
type cancelRequest struct {
	GuestEmail string `json:"guest_email"`
}

// CancelBooking cancels a booking on behalf of the guest who made it
// and restores the reserved inventory.
func (h *Handler) CancelBooking(c echo.Context) error {
	var req cancelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.GuestEmail) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest_email is required"})
	}
	reference := c.Param("reference")
	if err := h.Service.CancelBooking(c.Request().Context(), reference, strings.TrimSpace(req.GuestEmail)); err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"booking_reference": reference,
		"status":            "cancelled",
	})
}
