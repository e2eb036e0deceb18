package service

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/pricing"
	"github.com/iliyamo/hotel-booking/internal/storage"
)

// SearchInput carries a hotel search: city filters plus the stay dates
// the per-room pricing is computed for.
type SearchInput struct {
	Query       model.HotelSearchQuery
	CheckIn     time.Time
	CheckOut    time.Time
	MaxPrice    float64 // 0 = no cap; compared against the average per night
	IsCorporate bool
}

// PricedRoom is a room with availability and the dynamically priced
// stay total.  Breakdown is populated on detail views only.
type PricedRoom struct {
	model.RoomAvailability
	CalculatedTotal          float64            `json:"calculated_total"`
	AveragePerNight          float64            `json:"average_per_night"`
	Nights                   int                `json:"nights"`
	CorporateDiscountApplied float64            `json:"corporate_discount_applied"`
	Breakdown                *pricing.Breakdown `json:"pricing_breakdown,omitempty"`
}

// HotelResult is one search hit with its bookable rooms.
type HotelResult struct {
	model.Hotel
	Rooms              []PricedRoom `json:"rooms"`
	AvailableRoomTypes int          `json:"available_room_types"`
}

// SearchResult is the full response of a hotel search.
type SearchResult struct {
	ResultsCount int           `json:"results_count"`
	Hotels       []HotelResult `json:"hotels"`
}

// priceRooms runs the trip pricer over each room of one hotel using
// the hotel's rule-set snapshot.  Fetching the rules once per hotel
// keeps every room of a hotel priced against the same snapshot.
func (s *Service) priceRooms(ctx context.Context, hotelID uint64, rooms []model.RoomAvailability, in SearchInput, discountPercent float64, withBreakdown bool) ([]PricedRoom, error) {
	rules, err := s.store.RulesByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	priced := make([]PricedRoom, 0, len(rooms))
	for _, room := range rooms {
		quote, err := pricing.PriceTrip(room.BasePrice, in.CheckIn, in.CheckOut, rules, in.IsCorporate, discountPercent)
		if err != nil {
			return nil, err
		}
		pr := PricedRoom{
			RoomAvailability:         room,
			CalculatedTotal:          quote.TotalPrice,
			AveragePerNight:          quote.AveragePerNight,
			Nights:                   quote.Nights,
			CorporateDiscountApplied: quote.DiscountAmount,
		}
		if withBreakdown {
			b := quote.Breakdown
			pr.Breakdown = &b
		}
		priced = append(priced, pr)
	}
	return priced, nil
}

// SearchHotels finds hotels in a city with at least one bookable room
// over the stay, pricing every room dynamically.  Hotels with no
// matching rooms are omitted; rooms above MaxPrice (average per night)
// are filtered out.
func (s *Service) SearchHotels(ctx context.Context, in SearchInput) (*SearchResult, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return nil, ErrInvalidDateRange
	}
	hotels, err := s.store.SearchHotels(ctx, in.Query)
	if err != nil {
		return nil, err
	}
	results := make([]HotelResult, 0, len(hotels))
	for _, h := range hotels {
		rooms, err := s.store.RoomsWithAvailability(ctx, h.ID, in.CheckIn, in.CheckOut)
		if err != nil {
			return nil, err
		}
		priced, err := s.priceRooms(ctx, h.ID, rooms, in, h.CorporateDiscountPercent, false)
		if err != nil {
			return nil, err
		}
		if in.MaxPrice > 0 {
			kept := priced[:0]
			for _, pr := range priced {
				if pr.AveragePerNight <= in.MaxPrice {
					kept = append(kept, pr)
				}
			}
			priced = kept
		}
		if len(priced) == 0 {
			continue
		}
		results = append(results, HotelResult{
			Hotel:              h,
			Rooms:              priced,
			AvailableRoomTypes: len(priced),
		})
	}
	return &SearchResult{ResultsCount: len(results), Hotels: results}, nil
}

// HotelDetails is a hotel with all rooms (including sold-out ones),
// per-room pricing breakdowns and the amenity list.
type HotelDetails struct {
	model.Hotel
	Rooms              []PricedRoom    `json:"rooms"`
	Amenities          []model.Amenity `json:"amenities"`
	CheckIn            model.Date      `json:"check_in"`
	CheckOut           model.Date      `json:"check_out"`
	PricingIsCorporate bool            `json:"pricing_is_corporate"`
}

// GetHotelDetails returns the full detail view for one hotel, pricing
// every room over the requested stay.
func (s *Service) GetHotelDetails(ctx context.Context, hotelID uint64, checkIn, checkOut time.Time, isCorporate bool) (*HotelDetails, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}
	hotel, err := s.store.HotelByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	rooms, err := s.store.RoomsForHotel(ctx, hotelID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	in := SearchInput{CheckIn: checkIn, CheckOut: checkOut, IsCorporate: isCorporate}
	priced, err := s.priceRooms(ctx, hotelID, rooms, in, hotel.CorporateDiscountPercent, true)
	if err != nil {
		return nil, err
	}
	amenities, err := s.store.AmenitiesByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return &HotelDetails{
		Hotel:              *hotel,
		Rooms:              priced,
		Amenities:          amenities,
		CheckIn:            model.NewDate(checkIn),
		CheckOut:           model.NewDate(checkOut),
		PricingIsCorporate: isCorporate,
	}, nil
}

// TripCost is a quote for one hotel/room/stay combination.
type TripCost struct {
	HotelName   string        `json:"hotel_name"`
	City        string        `json:"city"`
	RoomType    string        `json:"room_type"`
	CheckIn     model.Date    `json:"check_in"`
	CheckOut    model.Date    `json:"check_out"`
	Quote       pricing.Quote `json:"cost_breakdown"`
	IsCorporate bool          `json:"is_corporate_booking"`
}

// QuoteTrip computes the estimated cost of a stay without booking it.
// The quote is recomputed from the live rule set; a later booking
// prices again, so a rule change in between changes the charged amount.
func (s *Service) QuoteTrip(ctx context.Context, hotelID, roomID uint64, checkIn, checkOut time.Time, isCorporate bool) (*TripCost, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}
	rate, err := s.store.RoomRate(ctx, hotelID, roomID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	rules, err := s.store.RulesByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	quote, err := pricing.PriceTrip(rate.BasePrice, checkIn, checkOut, rules, isCorporate, rate.DiscountPercent)
	if err != nil {
		return nil, err
	}
	return &TripCost{
		HotelName:   rate.HotelName,
		City:        rate.City,
		RoomType:    rate.RoomType,
		CheckIn:     model.NewDate(checkIn),
		CheckOut:    model.NewDate(checkOut),
		Quote:       *quote,
		IsCorporate: isCorporate,
	}, nil
}
