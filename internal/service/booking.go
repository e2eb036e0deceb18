package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/pricing"
	"github.com/iliyamo/hotel-booking/internal/queue"
	"github.com/iliyamo/hotel-booking/internal/storage"
)

// referenceAttempts bounds regeneration when a booking reference
// collides with an existing row.
const referenceAttempts = 5

// round2 rounds aggregate report figures to two decimals.
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// CreateBookingInput carries everything needed to book a room.  No
// pre-registered account is required: the guest row is created lazily
// from the name/email/corporate fields on first contact.
type CreateBookingInput struct {
	HotelID         uint64
	RoomID          uint64
	CheckIn         time.Time
	CheckOut        time.Time
	GuestName       string
	GuestEmail      string
	IsCorporate     bool
	CompanyName     *string
	GuestCount      int
	PurposeOfTravel string
}

// BookingConfirmation echoes the created booking back to the caller.
type BookingConfirmation struct {
	Reference         string     `json:"booking_reference"`
	Status            string     `json:"status"`
	GuestName         string     `json:"guest_name"`
	GuestEmail        string     `json:"guest_email"`
	IsCorporate       bool       `json:"is_corporate"`
	CompanyName       *string    `json:"company_name"`
	CheckIn           model.Date `json:"check_in_date"`
	CheckOut          model.Date `json:"check_out_date"`
	Nights            int        `json:"nights"`
	TotalAmount       float64    `json:"total_amount"`
	PerNightRate      float64    `json:"per_night_rate"`
	CorporateDiscount float64    `json:"corporate_discount"`
	PurposeOfTravel   string     `json:"purpose_of_travel"`
}

// CreateBooking books a room for the guest.  The guest resolution,
// hotel/room validation, availability check, pricing, booking insert
// and inventory decrement all run in one transaction: either the
// booking becomes visible with its inventory reduced, or nothing
// persists.  The availability check locks the inventory rows, so two
// concurrent bookings of the last unit serialize and the loser fails
// with ErrInsufficientInventory.
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingConfirmation, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return nil, ErrInvalidDateRange
	}
	if in.GuestCount < 1 {
		in.GuestCount = 1
	}

	txCtx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.store.Rollback(txCtx) }()

	guest, err := s.resolveGuest(txCtx, in.GuestEmail, in.GuestName, in.IsCorporate, in.CompanyName)
	if err != nil {
		return nil, err
	}

	rate, err := s.store.RoomRate(txCtx, in.HotelID, in.RoomID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	minAvail, ok, err := s.store.MinAvailableLocked(txCtx, in.RoomID, in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if !ok || minAvail < 1 {
		return nil, ErrInsufficientInventory
	}

	rules, err := s.store.RulesByHotel(txCtx, in.HotelID)
	if err != nil {
		return nil, err
	}
	quote, err := pricing.PriceTrip(rate.BasePrice, in.CheckIn, in.CheckOut, rules, in.IsCorporate, rate.DiscountPercent)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		GuestID:           guest.ID,
		HotelID:           in.HotelID,
		RoomID:            in.RoomID,
		CheckIn:           model.NewDate(in.CheckIn),
		CheckOut:          model.NewDate(in.CheckOut),
		Nights:            quote.Nights,
		GuestName:         in.GuestName,
		GuestCount:        in.GuestCount,
		TotalAmount:       quote.TotalPrice,
		PerNightRate:      quote.AveragePerNight,
		CorporateDiscount: quote.DiscountAmount,
		Status:            model.StatusConfirmed,
		PurposeOfTravel:   in.PurposeOfTravel,
	}
	for attempt := 0; ; attempt++ {
		booking.Reference = newBookingReference()
		err = s.store.CreateBooking(txCtx, booking)
		if err == nil {
			break
		}
		if errors.Is(err, storage.ErrDuplicate) && attempt < referenceAttempts-1 {
			continue
		}
		return nil, err
	}

	if err := s.store.DecrementInventory(txCtx, in.RoomID, in.CheckIn, in.CheckOut); err != nil {
		return nil, err
	}

	if err := s.store.Commit(txCtx); err != nil {
		return nil, err
	}

	s.log.Info("booking confirmed",
		"reference", booking.Reference,
		"hotel_id", in.HotelID,
		"room_id", in.RoomID,
		"nights", booking.Nights,
		"total", booking.TotalAmount,
	)
	if s.events != nil {
		s.events.BookingConfirmed(ctx, queue.BookingConfirmedEvent{
			BookingReference:  booking.Reference,
			GuestEmail:        in.GuestEmail,
			HotelID:           in.HotelID,
			RoomID:            in.RoomID,
			CheckIn:           in.CheckIn.Format("2006-01-02"),
			CheckOut:          in.CheckOut.Format("2006-01-02"),
			Nights:            booking.Nights,
			TotalAmount:       booking.TotalAmount,
			CorporateDiscount: booking.CorporateDiscount,
			IsCorporate:       in.IsCorporate,
			ConfirmedAt:       time.Now().UTC().Format(time.RFC3339),
		})
	}

	return &BookingConfirmation{
		Reference:         booking.Reference,
		Status:            booking.Status,
		GuestName:         in.GuestName,
		GuestEmail:        in.GuestEmail,
		IsCorporate:       in.IsCorporate,
		CompanyName:       in.CompanyName,
		CheckIn:           booking.CheckIn,
		CheckOut:          booking.CheckOut,
		Nights:            booking.Nights,
		TotalAmount:       booking.TotalAmount,
		PerNightRate:      booking.PerNightRate,
		CorporateDiscount: booking.CorporateDiscount,
		PurposeOfTravel:   in.PurposeOfTravel,
	}, nil
}

// CancelBooking cancels a booking after verifying that it belongs to
// the guest identified by email, and restores one inventory unit for
// every night of the original stay.  The booking row is locked before
// the status check so a racing double cancel cannot restore inventory
// twice; the second attempt fails with ErrAlreadyCancelled.
// Cancellation is terminal.
func (s *Service) CancelBooking(ctx context.Context, reference, guestEmail string) error {
	txCtx, err := s.store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.store.Rollback(txCtx) }()

	guest, err := s.store.GuestByEmail(txCtx, guestEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrGuestNotFound
		}
		return err
	}

	booking, err := s.store.BookingForUpdate(txCtx, reference)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if booking.GuestID != guest.ID {
		return ErrUnauthorized
	}
	if booking.Status == model.StatusCancelled {
		return ErrAlreadyCancelled
	}

	if err := s.store.MarkCancelled(txCtx, reference); err != nil {
		return err
	}
	if err := s.store.IncrementInventory(txCtx, booking.RoomID, booking.CheckIn.Time, booking.CheckOut.Time); err != nil {
		return err
	}
	if err := s.store.Commit(txCtx); err != nil {
		return err
	}

	s.log.Info("booking cancelled", "reference", reference)
	if s.events != nil {
		s.events.BookingCancelled(ctx, queue.BookingCancelledEvent{
			BookingReference: reference,
			GuestEmail:       guestEmail,
			RoomID:           booking.RoomID,
			CheckIn:          booking.CheckIn.Format("2006-01-02"),
			CheckOut:         booking.CheckOut.Format("2006-01-02"),
			CancelledAt:      time.Now().UTC().Format(time.RFC3339),
		})
	}
	return nil
}

// GetBooking returns the joined booking projection for a reference.
func (s *Service) GetBooking(ctx context.Context, reference string) (*model.BookingDetail, error) {
	detail, err := s.store.BookingDetail(ctx, reference)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return detail, nil
}

// GuestBookings is a guest's booking list with their identity header.
type GuestBookings struct {
	GuestName   string                 `json:"guest_name"`
	GuestEmail  string                 `json:"guest_email"`
	IsCorporate bool                   `json:"is_corporate"`
	CompanyName *string                `json:"company_name"`
	Bookings    []model.BookingSummary `json:"bookings"`
}

// ListBookingsByEmail returns the guest's bookings.  status filters by
// booking status when non-empty; includePast=false (the default at the
// HTTP layer) drops bookings whose check-out has already passed.  An
// email matching no guest is not an error: the listing succeeds with
// an empty booking list, same as a guest who never booked.
func (s *Service) ListBookingsByEmail(ctx context.Context, email, status string, includePast bool) (*GuestBookings, error) {
	guest, err := s.store.GuestByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &GuestBookings{GuestEmail: email, Bookings: []model.BookingSummary{}}, nil
		}
		return nil, err
	}
	bookings, err := s.store.ListByGuest(ctx, guest.ID, status, includePast)
	if err != nil {
		return nil, err
	}
	name := guest.FirstName
	if guest.LastName != "" {
		name += " " + guest.LastName
	}
	return &GuestBookings{
		GuestName:   name,
		GuestEmail:  email,
		IsCorporate: guest.IsCorporate,
		CompanyName: guest.CompanyName,
		Bookings:    bookings,
	}, nil
}

// CompanyBookings aggregates a company's bookings with total spend and
// the discount saved across them.
type CompanyBookings struct {
	CompanyName string                   `json:"company_name"`
	TotalSpent  float64                  `json:"total_spent"`
	TotalSaved  float64                  `json:"total_saved"`
	Bookings    []model.CorporateBooking `json:"bookings"`
}

// ListCorporateBookings reports every booking made under one company.
func (s *Service) ListCorporateBookings(ctx context.Context, companyName string) (*CompanyBookings, error) {
	bookings, err := s.store.ListByCompany(ctx, companyName)
	if err != nil {
		return nil, err
	}
	report := &CompanyBookings{CompanyName: companyName, Bookings: bookings}
	for _, b := range bookings {
		report.TotalSpent += b.TotalAmount
		report.TotalSaved += b.CorporateDiscount
	}
	report.TotalSpent = round2(report.TotalSpent)
	report.TotalSaved = round2(report.TotalSaved)
	return report, nil
}
