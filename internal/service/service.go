// Package service implements the booking core: guest identity
// resolution, dynamic trip quoting, the booking lifecycle and the
// search/report operations exposed by the tool layer.  It talks to
// storage exclusively through the narrow interfaces below so tests can
// substitute in-memory fakes.
package service

import (
	"context"
	"time"

	"github.com/iliyamo/hotel-booking/internal/logger"
	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/queue"
)

type txStore interface {
	// BeginTx returns a derived context carrying the transaction; all
	// store calls made with it join the transaction.
	BeginTx(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type guestStore interface {
	// GuestByEmail matches the email case-insensitively and returns
	// storage.ErrNotFound when no guest exists.
	GuestByEmail(ctx context.Context, email string) (*model.Guest, error)
	CreateGuest(ctx context.Context, g *model.Guest) error
}

type catalogStore interface {
	HotelByID(ctx context.Context, hotelID uint64) (*model.Hotel, error)
	SearchHotels(ctx context.Context, q model.HotelSearchQuery) ([]model.Hotel, error)
	Cities(ctx context.Context) ([]model.CitySummary, error)
	AmenitiesByHotel(ctx context.Context, hotelID uint64) ([]model.Amenity, error)
	PreferredVendors(ctx context.Context, city string) ([]model.Hotel, error)
	RoomRate(ctx context.Context, hotelID, roomID uint64) (*model.RoomRate, error)
	RoomWithHotel(ctx context.Context, roomID uint64) (*model.RoomInfo, error)
	RoomsWithAvailability(ctx context.Context, hotelID uint64, checkIn, checkOut time.Time) ([]model.RoomAvailability, error)
	RoomsForHotel(ctx context.Context, hotelID uint64, checkIn, checkOut time.Time) ([]model.RoomAvailability, error)
	RulesByHotel(ctx context.Context, hotelID uint64) ([]model.PricingRule, error)
}

type inventoryStore interface {
	MinAvailable(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (int, bool, error)
	// MinAvailableLocked locks the range's rows for the transaction so
	// concurrent bookings of the same nights serialize.
	MinAvailableLocked(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (int, bool, error)
	DailyAvailability(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) ([]model.InventoryEntry, error)
	DecrementInventory(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) error
	IncrementInventory(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) error
}

type bookingStore interface {
	CreateBooking(ctx context.Context, b *model.Booking) error
	// BookingForUpdate locks the booking row so the status check and
	// the inventory restore form one atomic unit.
	BookingForUpdate(ctx context.Context, reference string) (*model.Booking, error)
	MarkCancelled(ctx context.Context, reference string) error
	BookingDetail(ctx context.Context, reference string) (*model.BookingDetail, error)
	ListByGuest(ctx context.Context, guestID uint64, status string, includePast bool) ([]model.BookingSummary, error)
	ListByCompany(ctx context.Context, companyName string) ([]model.CorporateBooking, error)
}

// Store is the full persistence contract the service depends on.
type Store interface {
	txStore
	guestStore
	catalogStore
	inventoryStore
	bookingStore
}

// eventPublisher emits lifecycle events to the message broker.  A nil
// publisher disables events; publish failures never fail the request.
type eventPublisher interface {
	BookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent)
	BookingCancelled(ctx context.Context, ev queue.BookingCancelledEvent)
}

// Service orchestrates the booking core over a Store.
type Service struct {
	store  Store
	events eventPublisher
	log    *logger.Logger
}

// New constructs a Service.  events may be nil to disable broker
// publishing.
func New(store Store, events eventPublisher, log *logger.Logger) *Service {
	return &Service{store: store, events: events, log: log}
}
