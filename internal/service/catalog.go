package service

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/storage"
)

// ListCities returns the cities that have hotels.
func (s *Service) ListCities(ctx context.Context) ([]model.CitySummary, error) {
	return s.store.Cities(ctx)
}

// HotelAmenities lists a hotel's amenities after verifying the hotel
// exists.
type HotelAmenities struct {
	HotelID   uint64          `json:"hotel_id"`
	HotelName string          `json:"hotel_name"`
	City      string          `json:"city"`
	Amenities []model.Amenity `json:"amenities"`
}

// GetHotelAmenities returns the amenity list for one hotel.
func (s *Service) GetHotelAmenities(ctx context.Context, hotelID uint64) (*HotelAmenities, error) {
	hotel, err := s.store.HotelByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	amenities, err := s.store.AmenitiesByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return &HotelAmenities{
		HotelID:   hotelID,
		HotelName: hotel.Name,
		City:      hotel.City,
		Amenities: amenities,
	}, nil
}

// ListPreferredVendors returns preferred vendor hotels, optionally
// scoped to a city.
func (s *Service) ListPreferredVendors(ctx context.Context, city string) ([]model.Hotel, error) {
	return s.store.PreferredVendors(ctx, city)
}

// AvailabilityReport is the real-time per-night availability of one
// room over a range.  Available is true when every night in the range
// has inventory data and at least one free unit; when no inventory
// rows exist at all, Daily is empty and AvailableRooms is zero.
type AvailabilityReport struct {
	Available      bool                   `json:"available"`
	RoomID         uint64                 `json:"room_id"`
	HotelName      string                 `json:"hotel_name"`
	City           string                 `json:"city"`
	RoomType       string                 `json:"room_type"`
	MaxOccupancy   int                    `json:"max_occupancy"`
	AvailableRooms int                    `json:"available_rooms"`
	Daily          []model.InventoryEntry `json:"daily_availability"`
}

// CheckRoomAvailability reports nightly availability for a room over
// [checkIn, checkOut).  Returns ErrRoomNotFound when the room does not
// exist.
func (s *Service) CheckRoomAvailability(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (*AvailabilityReport, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}
	info, err := s.store.RoomWithHotel(ctx, roomID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	daily, err := s.store.DailyAvailability(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	report := &AvailabilityReport{
		RoomID:       roomID,
		HotelName:    info.HotelName,
		City:         info.City,
		RoomType:     info.RoomType,
		MaxOccupancy: info.MaxOccupancy,
		Daily:        daily,
	}
	minAvail, ok, err := s.store.MinAvailable(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if ok {
		report.AvailableRooms = minAvail
		report.Available = minAvail > 0
	}
	return report, nil
}
