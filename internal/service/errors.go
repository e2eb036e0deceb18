package service

import (
	"errors"

	"github.com/iliyamo/hotel-booking/internal/pricing"
)

// Failure taxonomy of the booking core.  Handlers compare with
// errors.Is and translate to HTTP statuses; nothing is swallowed and
// every transactional failure rolls back before surfacing.
var (
	ErrHotelNotFound         = errors.New("hotel not found")
	ErrRoomNotFound          = errors.New("hotel or room not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrGuestNotFound         = errors.New("guest not found")
	ErrInsufficientInventory = errors.New("room not available for selected dates")
	ErrUnauthorized          = errors.New("booking does not belong to this guest")
	ErrAlreadyCancelled      = errors.New("booking is already cancelled")
)

// ErrInvalidDateRange is the pricing sentinel re-exported so callers
// need only this package for the full taxonomy.
var ErrInvalidDateRange = pricing.ErrInvalidDateRange
