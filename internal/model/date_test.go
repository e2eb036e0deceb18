package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2025, time.March, 4, 15, 30, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-03-04"` {
		t.Fatalf("marshalled %s, want \"2025-03-04\"", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip %v != %v", back, d)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.Format("2006-01-02") != "2025-07-07" {
		t.Fatalf("scanned %v", d)
	}
	if err := d.Scan([]byte("2025-12-24")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if d.Format("2006-01-02") != "2025-12-24" {
		t.Fatalf("scanned %v", d)
	}
	if err := d.Scan(42); err == nil {
		t.Fatal("scan of int should fail")
	}
}

// Every key of a serialized booking detail must be snake_case and
// every date must be plain YYYY-MM-DD, including the fields coming
// from the embedded Booking.
func TestBookingDetailWireFormat(t *testing.T) {
	detail := BookingDetail{
		Booking: Booking{
			ID:          7,
			Reference:   "HTL-20250304120000-ABCD1234",
			CheckIn:     NewDate(time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)),
			CheckOut:    NewDate(time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)),
			Nights:      3,
			TotalAmount: 450,
			Status:      StatusConfirmed,
		},
		GuestDisplayName: "Ada Lovelace",
		GuestEmail:       "ada@example.com",
		HotelName:        "Test Hotel",
		City:             "Testville",
		RoomType:         "Standard",
	}
	b, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(b, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"Reference", "CheckIn", "CheckOut", "ID", "TotalAmount"} {
		if _, ok := payload[key]; ok {
			t.Errorf("Go field name %q leaked into the payload", key)
		}
	}
	if got := payload["booking_reference"]; got != "HTL-20250304120000-ABCD1234" {
		t.Errorf("booking_reference = %v", got)
	}
	if got := payload["check_in_date"]; got != "2025-03-04" {
		t.Errorf("check_in_date = %v, want 2025-03-04", got)
	}
	if got := payload["check_out_date"]; got != "2025-03-07" {
		t.Errorf("check_out_date = %v, want 2025-03-07", got)
	}
	// The display name from the join wins over the embedded booking's
	// snapshot field.
	if got := payload["guest_name"]; got != "Ada Lovelace" {
		t.Errorf("guest_name = %v", got)
	}
}

func TestEmbeddedModelsWireFormat(t *testing.T) {
	hotel, err := json.Marshal(Hotel{ID: 3, Name: "Test Hotel", StarRating: 4})
	if err != nil {
		t.Fatalf("marshal hotel: %v", err)
	}
	var h map[string]any
	if err := json.Unmarshal(hotel, &h); err != nil {
		t.Fatalf("unmarshal hotel: %v", err)
	}
	if _, ok := h["hotel_name"]; !ok {
		t.Error("hotel payload missing hotel_name")
	}
	if _, ok := h["Name"]; ok {
		t.Error("Go field name Name leaked into hotel payload")
	}

	entry, err := json.Marshal(InventoryEntry{
		RoomID:         10,
		Date:           NewDate(time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)),
		AvailableCount: 5,
	})
	if err != nil {
		t.Fatalf("marshal inventory: %v", err)
	}
	var e map[string]any
	if err := json.Unmarshal(entry, &e); err != nil {
		t.Fatalf("unmarshal inventory: %v", err)
	}
	if got := e["date"]; got != "2025-03-04" {
		t.Errorf("date = %v, want 2025-03-04", got)
	}
	if got := e["available_count"]; got != float64(5) {
		t.Errorf("available_count = %v", got)
	}
}
