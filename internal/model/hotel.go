package model

// Hotel is a static reference entity.  The booking core only ever reads
// hotels; rows are maintained by the seeding tooling outside this service.
//
// Fields:
//  ID                       – primary key identifier.
//  Name                     – display name.
//  Code                     – unique hotel code.
//  Chain                    – hotel chain, may be empty.
//  StarRating               – star rating between 1 and 5.
//  Address, City, State     – location fields; State may be empty.
//  Country, PostalCode      – location fields.
//  Phone, Email             – contact details.
//  CorporateDiscountPercent – discount applied to corporate bookings (0–100).
//  IsPreferredVendor        – preferred vendor flag for corporate travel.
type Hotel struct {
	ID                       uint64  `json:"hotel_id"`                   // hotels.hotel_id
	Name                     string  `json:"hotel_name"`                 // hotels.hotel_name
	Code                     string  `json:"hotel_code"`                 // hotels.hotel_code
	Chain                    *string `json:"chain"`                      // hotels.chain (nullable)
	StarRating               int     `json:"star_rating"`                // hotels.star_rating
	Address                  string  `json:"address"`                    // hotels.address
	City                     string  `json:"city"`                       // hotels.city
	State                    *string `json:"state"`                      // hotels.state (nullable)
	Country                  string  `json:"country"`                    // hotels.country
	PostalCode               *string `json:"postal_code"`                // hotels.postal_code (nullable)
	Phone                    *string `json:"phone"`                      // hotels.phone (nullable)
	Email                    *string `json:"email"`                      // hotels.email (nullable)
	CorporateDiscountPercent float64 `json:"corporate_discount_percent"` // hotels.corporate_discount_percent
	IsPreferredVendor        bool    `json:"is_preferred_vendor"`        // hotels.is_preferred_vendor
}

// Amenity is a single amenity offered by a hotel.
type Amenity struct {
	Name string `json:"amenity_name"` // hotel_amenities.amenity_name
	Type string `json:"amenity_type"` // hotel_amenities.amenity_type
}

// HotelSearchQuery carries the optional filters for a city search.
type HotelSearchQuery struct {
	City          string
	State         string
	PreferredOnly bool
	MinStarRating int
}

// CitySummary aggregates the hotels available in one city.
type CitySummary struct {
	City       string  `json:"city"`
	State      *string `json:"state"`
	Country    string  `json:"country"`
	HotelCount int     `json:"hotel_count"`
}
