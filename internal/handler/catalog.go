package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// GetCities lists every city with hotels, for building search forms.
func (h *Handler) GetCities(c echo.Context) error {
	cities, err := h.Service.ListCities(c.Request().Context())
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"cities": cities, "count": len(cities)})
}

// GetHotelAmenities lists the amenities of one hotel.
func (h *Handler) GetHotelAmenities(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	amenities, err := h.Service.GetHotelAmenities(c.Request().Context(), hotelID)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, amenities)
}

// GetPreferredVendors lists preferred vendor hotels, optionally scoped
// to a city.
func (h *Handler) GetPreferredVendors(c echo.Context) error {
	hotels, err := h.Service.ListPreferredVendors(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"preferred_vendors": hotels, "count": len(hotels)})
}

// GetRoomAvailability reports the per-night availability of one room
// over a date range.
func (h *Handler) GetRoomAvailability(c echo.Context) error {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	checkIn, checkOut, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if !checkOut.After(checkIn) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check-out date must be after check-in date"})
	}

	report, err := h.Service.CheckRoomAvailability(c.Request().Context(), roomID, checkIn, checkOut)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
