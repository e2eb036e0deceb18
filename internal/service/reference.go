package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// referencePrefix starts every booking reference.
const referencePrefix = "HTL"

// newBookingReference builds a reference from a timestamp component and
// a random disambiguator, e.g. HTL-20260830142501-9F3A21C4.  The
// timestamp makes references roughly sortable; the uuid fragment keeps
// two bookings in the same second from colliding.  Uniqueness is still
// enforced by the database and callers regenerate on a duplicate.
func newBookingReference() string {
	ts := time.Now().UTC().Format("20060102150405")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", referencePrefix, ts, suffix)
}
