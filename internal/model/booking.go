package model

// Booking statuses.  Create produces StatusConfirmed directly and cancel
// moves a booking to StatusCancelled exactly once; pending and completed
// exist in the schema for external batch processes and only pass through
// list filters here.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Booking records a guest's stay in one room of one hotel.  CheckOut is
// exclusive: the guest occupies the room for every night in
// [CheckIn, CheckOut).
//
// Fields:
//  ID                – primary key identifier.
//  Reference         – unique booking reference (HTL-...).
//  GuestID           – guest who booked.
//  HotelID, RoomID   – booked hotel and room.
//  CheckIn, CheckOut – stay boundaries, date only, check-out exclusive.
//  Nights            – number of nights, always CheckOut minus CheckIn.
//  GuestName         – display name as supplied at booking time.
//  GuestCount        – number of guests staying.
//  TotalAmount       – final charged amount after discounts.
//  PerNightRate      – average nightly rate (TotalAmount / Nights).
//  CorporateDiscount – discount amount subtracted from the subtotal.
//  Status            – one of the status constants above.
//  PurposeOfTravel   – free text, may be empty.
type Booking struct {
	ID                uint64  `json:"booking_id"`         // bookings.booking_id
	Reference         string  `json:"booking_reference"`  // bookings.booking_reference
	GuestID           uint64  `json:"guest_id"`           // bookings.user_id
	HotelID           uint64  `json:"hotel_id"`           // bookings.hotel_id
	RoomID            uint64  `json:"room_id"`            // bookings.room_id
	CheckIn           Date    `json:"check_in_date"`      // bookings.check_in_date
	CheckOut          Date    `json:"check_out_date"`     // bookings.check_out_date
	Nights            int     `json:"nights"`             // bookings.nights
	GuestName         string  `json:"guest_name"`         // bookings.guest_name
	GuestCount        int     `json:"guest_count"`        // bookings.guest_count
	TotalAmount       float64 `json:"total_amount"`       // bookings.total_amount
	PerNightRate      float64 `json:"per_night_rate"`     // bookings.per_night_rate
	CorporateDiscount float64 `json:"corporate_discount"` // bookings.corporate_discount
	Status            string  `json:"status"`             // bookings.status
	PurposeOfTravel   string  `json:"purpose_of_travel"`  // bookings.purpose_of_travel
}

// BookingDetail joins a booking with its guest, hotel and room
// projections for display.
type BookingDetail struct {
	Booking
	GuestDisplayName string  `json:"guest_name"`
	GuestEmail       string  `json:"guest_email"`
	IsCorporate      bool    `json:"is_corporate"`
	CompanyName      *string `json:"company_name"`
	HotelName        string  `json:"hotel_name"`
	HotelAddress     string  `json:"hotel_address"`
	City             string  `json:"city"`
	State            *string `json:"state"`
	HotelPhone       *string `json:"hotel_phone"`
	RoomType         string  `json:"room_type"`
	BedType          *string `json:"bed_type"`
}

// BookingSummary is the row shape returned when listing a guest's
// bookings by email.
type BookingSummary struct {
	Reference       string  `json:"booking_reference"`
	Status          string  `json:"status"`
	HotelName       string  `json:"hotel_name"`
	City            string  `json:"city"`
	RoomType        string  `json:"room_type"`
	CheckIn         Date    `json:"check_in_date"`
	CheckOut        Date    `json:"check_out_date"`
	Nights          int     `json:"nights"`
	TotalAmount     float64 `json:"total_amount"`
	PurposeOfTravel string  `json:"purpose_of_travel"`
}

// CorporateBooking extends the summary with the traveling employee and
// the discount captured, for per-company reporting.
type CorporateBooking struct {
	BookingSummary
	TravelerName      string  `json:"traveler_name"`
	TravelerEmail     string  `json:"email"`
	CorporateDiscount float64 `json:"corporate_discount"`
}
