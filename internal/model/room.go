package model

// Room belongs to exactly one hotel.  Read-only from the booking core's
// perspective; the nightly price actually charged is derived from
// BasePrice by the pricing engine.
//
// Fields:
//  ID           – primary key identifier.
//  HotelID      – owning hotel.
//  RoomType     – descriptive type (e.g. "Deluxe King").
//  BasePrice    – base nightly price, always > 0.
//  MaxOccupancy – maximum number of guests.
//  BedType      – bed configuration, may be empty.
//  Amenities    – JSON array of room amenities stored as a string.
type Room struct {
	ID           uint64  `json:"room_id"`       // rooms.room_id
	HotelID      uint64  `json:"hotel_id"`      // rooms.hotel_id
	RoomType     string  `json:"room_type"`     // rooms.room_type
	BasePrice    float64 `json:"base_price"`    // rooms.base_price
	MaxOccupancy int     `json:"max_occupancy"` // rooms.max_occupancy
	BedType      *string `json:"bed_type"`      // rooms.bed_type (nullable)
	Amenities    *string `json:"amenities"`     // rooms.amenities (nullable JSON string)
}

// RoomRate is the minimal hotel/room join the booking and quoting paths
// need: the room's base price together with the owning hotel's corporate
// discount and display fields.
type RoomRate struct {
	HotelID         uint64  // hotels.hotel_id
	RoomID          uint64  // rooms.room_id
	HotelName       string  // hotels.hotel_name
	City            string  // hotels.city
	RoomType        string  // rooms.room_type
	BasePrice       float64 // rooms.base_price
	DiscountPercent float64 // hotels.corporate_discount_percent
}

// RoomAvailability pairs a room with the minimum available-unit count
// across a requested date range.
type RoomAvailability struct {
	Room
	MinAvailable int `json:"min_available"` // MIN(room_inventory.available_count) over the range
}

// RoomInfo carries a room with its hotel's name and city, used by the
// per-room availability report.
type RoomInfo struct {
	Room
	HotelName string // hotels.hotel_name
	City      string // hotels.city
}
