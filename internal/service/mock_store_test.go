package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/storage"
)

// mockStore is an in-memory Store used by the service tests.  A
// transaction snapshots the mutable state on BeginTx; Rollback restores
// the snapshot unless Commit ran first, mirroring the all-or-nothing
// semantics of the real store.
type mockStore struct {
	guests     map[string]*model.Guest // keyed by lowercased email
	guestSeq   uint64
	rates      map[[2]uint64]model.RoomRate
	rules      map[uint64][]model.PricingRule
	inventory  map[uint64]map[string]int // roomID -> date -> available
	bookings   map[string]*model.Booking // keyed by reference
	bookingSeq uint64

	snap      *mockSnapshot
	committed bool
}

var _ Store = (*mockStore)(nil)

type mockSnapshot struct {
	guests     map[string]*model.Guest
	guestSeq   uint64
	inventory  map[uint64]map[string]int
	bookings   map[string]*model.Booking
	bookingSeq uint64
}

func newMockStore() *mockStore {
	return &mockStore{
		guests:    map[string]*model.Guest{},
		rates:     map[[2]uint64]model.RoomRate{},
		rules:     map[uint64][]model.PricingRule{},
		inventory: map[uint64]map[string]int{},
		bookings:  map[string]*model.Booking{},
	}
}

func (m *mockStore) seedRate(hotelID, roomID uint64, basePrice, discount float64) {
	m.rates[[2]uint64{hotelID, roomID}] = model.RoomRate{
		HotelID: hotelID, RoomID: roomID, HotelName: "Test Hotel", City: "Testville",
		RoomType: "Standard", BasePrice: basePrice, DiscountPercent: discount,
	}
}

func (m *mockStore) seedInventory(roomID uint64, from time.Time, counts ...int) {
	inv := m.inventory[roomID]
	if inv == nil {
		inv = map[string]int{}
		m.inventory[roomID] = inv
	}
	for i, c := range counts {
		inv[from.AddDate(0, 0, i).Format("2006-01-02")] = c
	}
}

func rulesWithPeakMultiplier(mult float64) []model.PricingRule {
	season := "peak"
	return []model.PricingRule{{ID: 1, Season: &season, Multiplier: mult, Priority: 10}}
}

func copyGuests(src map[string]*model.Guest) map[string]*model.Guest {
	dst := make(map[string]*model.Guest, len(src))
	for k, v := range src {
		g := *v
		dst[k] = &g
	}
	return dst
}

func copyInventory(src map[uint64]map[string]int) map[uint64]map[string]int {
	dst := make(map[uint64]map[string]int, len(src))
	for room, days := range src {
		inner := make(map[string]int, len(days))
		for d, c := range days {
			inner[d] = c
		}
		dst[room] = inner
	}
	return dst
}

func copyBookings(src map[string]*model.Booking) map[string]*model.Booking {
	dst := make(map[string]*model.Booking, len(src))
	for k, v := range src {
		b := *v
		dst[k] = &b
	}
	return dst
}

func (m *mockStore) BeginTx(ctx context.Context) (context.Context, error) {
	m.snap = &mockSnapshot{
		guests:     copyGuests(m.guests),
		guestSeq:   m.guestSeq,
		inventory:  copyInventory(m.inventory),
		bookings:   copyBookings(m.bookings),
		bookingSeq: m.bookingSeq,
	}
	m.committed = false
	return ctx, nil
}

func (m *mockStore) Commit(ctx context.Context) error {
	if m.snap == nil {
		return storage.ErrNoTransaction
	}
	m.snap = nil
	m.committed = true
	return nil
}

func (m *mockStore) Rollback(ctx context.Context) error {
	if m.snap == nil {
		return nil
	}
	m.guests = m.snap.guests
	m.guestSeq = m.snap.guestSeq
	m.inventory = m.snap.inventory
	m.bookings = m.snap.bookings
	m.bookingSeq = m.snap.bookingSeq
	m.snap = nil
	return nil
}

func (m *mockStore) GuestByEmail(ctx context.Context, email string) (*model.Guest, error) {
	g, ok := m.guests[strings.ToLower(email)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := *g
	return &out, nil
}

func (m *mockStore) CreateGuest(ctx context.Context, g *model.Guest) error {
	key := strings.ToLower(g.Email)
	if _, ok := m.guests[key]; ok {
		return storage.ErrDuplicate
	}
	m.guestSeq++
	g.ID = m.guestSeq
	stored := *g
	m.guests[key] = &stored
	return nil
}

func (m *mockStore) HotelByID(ctx context.Context, hotelID uint64) (*model.Hotel, error) {
	return nil, storage.ErrNotFound
}

func (m *mockStore) SearchHotels(ctx context.Context, q model.HotelSearchQuery) ([]model.Hotel, error) {
	return nil, nil
}

func (m *mockStore) Cities(ctx context.Context) ([]model.CitySummary, error) { return nil, nil }

func (m *mockStore) AmenitiesByHotel(ctx context.Context, hotelID uint64) ([]model.Amenity, error) {
	return nil, nil
}

func (m *mockStore) PreferredVendors(ctx context.Context, city string) ([]model.Hotel, error) {
	return nil, nil
}

func (m *mockStore) RoomRate(ctx context.Context, hotelID, roomID uint64) (*model.RoomRate, error) {
	r, ok := m.rates[[2]uint64{hotelID, roomID}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &r, nil
}

func (m *mockStore) RoomWithHotel(ctx context.Context, roomID uint64) (*model.RoomInfo, error) {
	return nil, storage.ErrNotFound
}

func (m *mockStore) RoomsWithAvailability(ctx context.Context, hotelID uint64, checkIn, checkOut time.Time) ([]model.RoomAvailability, error) {
	return nil, nil
}

func (m *mockStore) RoomsForHotel(ctx context.Context, hotelID uint64, checkIn, checkOut time.Time) ([]model.RoomAvailability, error) {
	return nil, nil
}

func (m *mockStore) RulesByHotel(ctx context.Context, hotelID uint64) ([]model.PricingRule, error) {
	return m.rules[hotelID], nil
}

func (m *mockStore) rangeDates(checkIn, checkOut time.Time) []string {
	var dates []string
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}

func (m *mockStore) MinAvailable(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (int, bool, error) {
	inv := m.inventory[roomID]
	min := 0
	seen := 0
	for _, d := range m.rangeDates(checkIn, checkOut) {
		c, ok := inv[d]
		if !ok {
			continue
		}
		if seen == 0 || c < min {
			min = c
		}
		seen++
	}
	if seen < len(m.rangeDates(checkIn, checkOut)) {
		return 0, false, nil
	}
	return min, true, nil
}

func (m *mockStore) MinAvailableLocked(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (int, bool, error) {
	return m.MinAvailable(ctx, roomID, checkIn, checkOut)
}

func (m *mockStore) DailyAvailability(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) ([]model.InventoryEntry, error) {
	inv := m.inventory[roomID]
	entries := make([]model.InventoryEntry, 0)
	for _, d := range m.rangeDates(checkIn, checkOut) {
		if c, ok := inv[d]; ok {
			day, _ := time.Parse("2006-01-02", d)
			entries = append(entries, model.InventoryEntry{RoomID: roomID, Date: model.NewDate(day), AvailableCount: c})
		}
	}
	return entries, nil
}

func (m *mockStore) DecrementInventory(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) error {
	inv := m.inventory[roomID]
	dates := m.rangeDates(checkIn, checkOut)
	touched := 0
	for _, d := range dates {
		if c, ok := inv[d]; ok && c >= 1 {
			inv[d] = c - 1
			touched++
		}
	}
	if touched != len(dates) {
		return fmt.Errorf("inventory decrement touched %d of %d nights", touched, len(dates))
	}
	return nil
}

func (m *mockStore) IncrementInventory(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) error {
	inv := m.inventory[roomID]
	if inv == nil {
		inv = map[string]int{}
		m.inventory[roomID] = inv
	}
	for _, d := range m.rangeDates(checkIn, checkOut) {
		inv[d]++
	}
	return nil
}

func (m *mockStore) CreateBooking(ctx context.Context, b *model.Booking) error {
	if _, ok := m.bookings[b.Reference]; ok {
		return storage.ErrDuplicate
	}
	m.bookingSeq++
	b.ID = m.bookingSeq
	stored := *b
	m.bookings[b.Reference] = &stored
	return nil
}

func (m *mockStore) BookingForUpdate(ctx context.Context, reference string) (*model.Booking, error) {
	b, ok := m.bookings[reference]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := *b
	return &out, nil
}

func (m *mockStore) MarkCancelled(ctx context.Context, reference string) error {
	if b, ok := m.bookings[reference]; ok {
		b.Status = model.StatusCancelled
	}
	return nil
}

func (m *mockStore) BookingDetail(ctx context.Context, reference string) (*model.BookingDetail, error) {
	b, ok := m.bookings[reference]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &model.BookingDetail{Booking: *b}, nil
}

func (m *mockStore) ListByGuest(ctx context.Context, guestID uint64, status string, includePast bool) ([]model.BookingSummary, error) {
	out := make([]model.BookingSummary, 0)
	for _, b := range m.bookings {
		if b.GuestID != guestID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, model.BookingSummary{
			Reference: b.Reference, Status: b.Status,
			CheckIn: b.CheckIn, CheckOut: b.CheckOut,
			Nights: b.Nights, TotalAmount: b.TotalAmount,
		})
	}
	return out, nil
}

func (m *mockStore) ListByCompany(ctx context.Context, companyName string) ([]model.CorporateBooking, error) {
	return nil, nil
}
