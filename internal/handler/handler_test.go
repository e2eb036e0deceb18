package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/logger"
)

// newContext builds an echo context for one request; the recorder
// captures the response.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Validation failures must reject the request before the service is
// touched; the nil Service guarantees a panic if they do not.
func TestSearchHotelsValidation(t *testing.T) {
	h := &Handler{Log: logger.New("test", "error")}

	cases := []struct {
		name   string
		target string
	}{
		{"missing city", "/v1/hotels/search?check_in=2025-03-04&check_out=2025-03-06"},
		{"missing dates", "/v1/hotels/search?city=Austin"},
		{"bad date", "/v1/hotels/search?city=Austin&check_in=03/04/2025&check_out=2025-03-06"},
		{"bad rating", "/v1/hotels/search?city=Austin&check_in=2025-03-04&check_out=2025-03-06&min_star_rating=lots"},
		{"bad price", "/v1/hotels/search?city=Austin&check_in=2025-03-04&check_out=2025-03-06&max_price=cheap"},
	}
	for _, tc := range cases {
		c, rec := newContext(http.MethodGet, tc.target, "")
		if err := h.SearchHotels(c); err != nil {
			t.Fatalf("%s: handler error %v", tc.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestCreateBookingValidation(t *testing.T) {
	h := &Handler{Log: logger.New("test", "error")}

	cases := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing guest", `{"hotel_id":1,"room_id":2,"check_in":"2025-03-04","check_out":"2025-03-06"}`},
		{"bad check_in", `{"hotel_id":1,"room_id":2,"check_in":"tomorrow","check_out":"2025-03-06","guest_name":"Ada Lovelace","guest_email":"ada@example.com"}`},
		{"blank name", `{"hotel_id":1,"room_id":2,"check_in":"2025-03-04","check_out":"2025-03-06","guest_name":"   ","guest_email":"ada@example.com"}`},
	}
	for _, tc := range cases {
		c, rec := newContext(http.MethodPost, "/v1/bookings", tc.body)
		if err := h.CreateBooking(c); err != nil {
			t.Fatalf("%s: handler error %v", tc.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestCancelBookingRequiresEmail(t *testing.T) {
	h := &Handler{Log: logger.New("test", "error")}

	c, rec := newContext(http.MethodPost, "/v1/bookings/HTL-X/cancel", `{}`)
	c.SetParamNames("reference")
	c.SetParamValues("HTL-X")
	if err := h.CancelBooking(c); err != nil {
		t.Fatalf("handler error %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
