// Package router wires the API endpoints onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-booking/internal/config"
	"github.com/iliyamo/hotel-booking/internal/handler"
	"github.com/iliyamo/hotel-booking/internal/middleware"
)

// Register mounts every route.  Read-only catalog and search endpoints
// sit behind the Redis response cache; the whole /v1 surface is rate
// limited.  Booking mutations are never cached.
func Register(e *echo.Echo, h *handler.Handler, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.Use(middleware.NewRateLimiter(rlCfg, rdb))

	cached := v1.Group("")
	cached.Use(middleware.NewResponseCache(cacheCfg, rdb))
	cached.GET("/cities", h.GetCities)
	cached.GET("/hotels/search", h.SearchHotels)
	cached.GET("/hotels/:id", h.GetHotelDetails)
	cached.GET("/hotels/:id/amenities", h.GetHotelAmenities)
	cached.GET("/vendors/preferred", h.GetPreferredVendors)

	// Availability is read too but reflects every booking immediately,
	// so it bypasses the cache.
	v1.GET("/rooms/:id/availability", h.GetRoomAvailability)

	v1.POST("/quotes", h.CreateQuote)
	v1.POST("/bookings", h.CreateBooking)
	// The corporate listing must register before /bookings/:reference
	// would otherwise swallow "corporate" as a reference.
	v1.GET("/bookings/corporate", h.ListCorporateBookings)
	v1.GET("/bookings/:reference", h.GetBooking)
	v1.GET("/bookings", h.ListBookings)
	v1.POST("/bookings/:reference/cancel", h.CancelBooking)
}
