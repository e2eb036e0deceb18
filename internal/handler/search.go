package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/service"
)

// queryBool reads an optional boolean query parameter, false on absence
// or garbage.
func queryBool(c echo.Context, name string) bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && v
}

// SearchHotels lists hotels in a city with per-room availability and
// dynamic pricing for the requested stay.
func (h *Handler) SearchHotels(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "city is required"})
	}
	checkIn, checkOut, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	in := service.SearchInput{
		Query: model.HotelSearchQuery{
			City:          city,
			State:         c.QueryParam("state"),
			PreferredOnly: queryBool(c, "preferred_only"),
		},
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		IsCorporate: queryBool(c, "corporate"),
	}
	if v := c.QueryParam("min_star_rating"); v != "" {
		rating, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "min_star_rating must be an integer"})
		}
		in.Query.MinStarRating = rating
	}
	if v := c.QueryParam("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_price must be a number"})
		}
		in.MaxPrice = price
	}

	result, err := h.Service.SearchHotels(c.Request().Context(), in)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetHotelDetails returns one hotel with its rooms priced for the stay,
// the pricing breakdown and the amenity list.
func (h *Handler) GetHotelDetails(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	checkIn, checkOut, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	details, err := h.Service.GetHotelDetails(c.Request().Context(), hotelID, checkIn, checkOut, queryBool(c, "corporate"))
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

// quoteRequest is the body of POST /v1/quotes.
type quoteRequest struct {
	HotelID   uint64 `json:"hotel_id"`
	RoomID    uint64 `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Corporate bool   `json:"corporate"`
}

// CreateQuote prices a stay without reserving anything.
func (h *Handler) CreateQuote(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.HotelID == 0 || req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "hotel_id and room_id are required"})
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
	}

	quote, err := h.Service.QuoteTrip(c.Request().Context(), req.HotelID, req.RoomID, checkIn, checkOut, req.Corporate)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, quote)
}
