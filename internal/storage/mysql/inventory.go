package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// nightsBetween counts the calendar dates in [checkIn, checkOut).
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// minAvailable scans the inventory rows for the range and returns the
// minimum available-unit count.  ok is false when the range has fewer
// rows than nights, i.e. at least one date has no inventory data at
// all, which is distinct from zero availability.  When forUpdate is
// true the rows are locked for the duration of the transaction so a
// concurrent booking for the same range blocks until this one commits
// or rolls back.
func (s *Store) minAvailable(ctx context.Context, roomID uint64, checkIn, checkOut time.Time, forUpdate bool) (int, bool, error) {
	q := `SELECT available_count FROM room_inventory
	      WHERE room_id = ? AND date >= ? AND date < ?`
	if forUpdate {
		q += ` FOR UPDATE`
	}
	rows, err := s.conn(ctx).QueryContext(ctx, q,
		roomID, checkIn.Format(dateLayout), checkOut.Format(dateLayout))
	if err != nil {
		return 0, false, err
	}
	defer rows.Close()
	count := 0
	min := 0
	for rows.Next() {
		var avail int
		if err := rows.Scan(&avail); err != nil {
			return 0, false, err
		}
		if count == 0 || avail < min {
			min = avail
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, false, err
	}
	if count < nightsBetween(checkIn, checkOut) {
		return 0, false, nil
	}
	return min, true, nil
}

// MinAvailable returns the minimum available-unit count across every
// date in [checkIn, checkOut).  ok is false when any date lacks an
// inventory row.
func (s *Store) MinAvailable(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (int, bool, error) {
	return s.minAvailable(ctx, roomID, checkIn, checkOut, false)
}

// MinAvailableLocked is MinAvailable with the inventory rows locked
// (SELECT ... FOR UPDATE).  Must be called inside a transaction; it is
// the guard that keeps two concurrent bookings of the last unit from
// both passing the availability check.
func (s *Store) MinAvailableLocked(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (int, bool, error) {
	return s.minAvailable(ctx, roomID, checkIn, checkOut, true)
}

// DailyAvailability returns the per-date inventory rows for a room and
// range, ordered by date.
func (s *Store) DailyAvailability(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) ([]model.InventoryEntry, error) {
	const q = `SELECT inventory_id, room_id, date, available_count, price
	           FROM room_inventory
	           WHERE room_id = ? AND date >= ? AND date < ?
	           ORDER BY date ASC`
	rows, err := s.conn(ctx).QueryContext(ctx, q,
		roomID, checkIn.Format(dateLayout), checkOut.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]model.InventoryEntry, 0)
	for rows.Next() {
		var e model.InventoryEntry
		if err := rows.Scan(&e.ID, &e.RoomID, &e.Date, &e.AvailableCount, &e.Price); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DecrementInventory reduces the available-unit count by one for every
// date in the range.  The guard clause keeps counts non-negative even
// if a caller skipped the locked availability check; a short update is
// reported as an error so the surrounding transaction rolls back and
// the range stays untouched.
func (s *Store) DecrementInventory(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) error {
	const q = `UPDATE room_inventory
	           SET available_count = available_count - 1
	           WHERE room_id = ? AND date >= ? AND date < ? AND available_count >= 1`
	res, err := s.conn(ctx).ExecContext(ctx, q,
		roomID, checkIn.Format(dateLayout), checkOut.Format(dateLayout))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if want := int64(nightsBetween(checkIn, checkOut)); affected != want {
		return fmt.Errorf("inventory decrement touched %d of %d nights", affected, want)
	}
	return nil
}

// IncrementInventory restores one unit for every date in the range.
// Used on cancellation; no upper bound is enforced.
func (s *Store) IncrementInventory(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) error {
	const q = `UPDATE room_inventory
	           SET available_count = available_count + 1
	           WHERE room_id = ? AND date >= ? AND date < ?`
	_, err := s.conn(ctx).ExecContext(ctx, q,
		roomID, checkIn.Format(dateLayout), checkOut.Format(dateLayout))
	return err
}
