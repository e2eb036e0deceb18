// Package queue defines message payloads exchanged over the message
// broker and the publisher that emits them.
package queue

// BookingConfirmedEvent is published when a booking is successfully
// created.  It carries enough for downstream consumers to notify or
// run analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingReference  string  `json:"booking_reference"`
	GuestEmail        string  `json:"guest_email"`
	HotelID           uint64  `json:"hotel_id"`
	RoomID            uint64  `json:"room_id"`
	CheckIn           string  `json:"check_in_date"`
	CheckOut          string  `json:"check_out_date"`
	Nights            int     `json:"nights"`
	TotalAmount       float64 `json:"total_amount"`
	CorporateDiscount float64 `json:"corporate_discount"`
	IsCorporate       bool    `json:"is_corporate"`
	ConfirmedAt       string  `json:"confirmed_at"`
}

// BookingCancelledEvent is published after a booking is cancelled and
// its inventory restored.
type BookingCancelledEvent struct {
	BookingReference string `json:"booking_reference"`
	GuestEmail       string `json:"guest_email"`
	RoomID           uint64 `json:"room_id"`
	CheckIn          string `json:"check_in_date"`
	CheckOut         string `json:"check_out_date"`
	CancelledAt      string `json:"cancelled_at"`
}
