package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/storage"
)

// splitGuestName splits a display name on the first whitespace into
// first and last name.  The last name is empty when no space is
// present.
func splitGuestName(name string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

// newGuestCode generates an internal guest code distinguishing
// corporate from individual guests, e.g. CORP4821 or INDV1034.
func newGuestCode(isCorporate bool) string {
	prefix := "INDV"
	if isCorporate {
		prefix = "CORP"
	}
	return fmt.Sprintf("%s%04d", prefix, rand.Intn(9000)+1000)
}

// resolveGuest finds or creates the guest for an email.  The match is
// case-insensitive; when the guest already exists the supplied name and
// corporate data are ignored, so the first booking's name split wins
// permanently.  Must run inside the caller's transaction so a failed
// booking does not leave an orphaned guest row.
func (s *Service) resolveGuest(ctx context.Context, email, name string, isCorporate bool, companyName *string) (*model.Guest, error) {
	g, err := s.store.GuestByEmail(ctx, email)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	first, last := splitGuestName(name)
	g = &model.Guest{
		Code:        newGuestCode(isCorporate),
		FirstName:   first,
		LastName:    last,
		Email:       email,
		IsCorporate: isCorporate,
		CompanyName: companyName,
	}
	if err := s.store.CreateGuest(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
