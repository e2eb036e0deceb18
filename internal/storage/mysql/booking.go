package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/storage"
)

// CreateBooking inserts a booking row and populates the generated ID.
// A colliding booking reference surfaces as storage.ErrDuplicate so
// the caller can regenerate and retry.
func (s *Store) CreateBooking(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings (
	               booking_reference, user_id, hotel_id, room_id,
	               check_in_date, check_out_date, nights,
	               guest_name, guest_count, total_amount, per_night_rate,
	               corporate_discount, status, purpose_of_travel
	           ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := s.conn(ctx).ExecContext(ctx, q,
		b.Reference, b.GuestID, b.HotelID, b.RoomID,
		b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout), b.Nights,
		b.GuestName, b.GuestCount, b.TotalAmount, b.PerNightRate,
		b.CorporateDiscount, b.Status, b.PurposeOfTravel,
	)
	if err != nil {
		if isDuplicate(err) {
			return storage.ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// BookingForUpdate loads the fields cancellation needs and locks the
// booking row for the duration of the transaction, so a racing double
// cancel serializes on the status check.
func (s *Store) BookingForUpdate(ctx context.Context, reference string) (*model.Booking, error) {
	const q = `SELECT booking_id, booking_reference, user_id, room_id,
	                  check_in_date, check_out_date, status
	           FROM bookings WHERE booking_reference = ? FOR UPDATE`
	var b model.Booking
	err := s.conn(ctx).QueryRowContext(ctx, q, reference).Scan(
		&b.ID, &b.Reference, &b.GuestID, &b.RoomID,
		&b.CheckIn, &b.CheckOut, &b.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// MarkCancelled sets a booking's status to cancelled.
func (s *Store) MarkCancelled(ctx context.Context, reference string) error {
	const q = `UPDATE bookings SET status = ? WHERE booking_reference = ?`
	_, err := s.conn(ctx).ExecContext(ctx, q, model.StatusCancelled, reference)
	return err
}

// BookingDetail returns the full joined projection of one booking for
// display: booking fields plus guest, hotel and room attributes.
func (s *Store) BookingDetail(ctx context.Context, reference string) (*model.BookingDetail, error) {
	const q = `SELECT b.booking_id, b.booking_reference, b.user_id, b.hotel_id, b.room_id,
	                  b.check_in_date, b.check_out_date, b.nights,
	                  b.guest_name, b.guest_count, b.total_amount, b.per_night_rate,
	                  b.corporate_discount, b.status, b.purpose_of_travel,
	                  CONCAT(u.first_name, ' ', u.last_name), u.email, u.is_corporate, u.company_name,
	                  h.hotel_name, h.address, h.city, h.state, h.phone,
	                  r.room_type, r.bed_type
	           FROM bookings b
	           JOIN users u  ON u.user_id  = b.user_id
	           JOIN hotels h ON h.hotel_id = b.hotel_id
	           JOIN rooms r  ON r.room_id  = b.room_id
	           WHERE b.booking_reference = ?`
	var d model.BookingDetail
	var company, state, phone, bedType sql.NullString
	err := s.conn(ctx).QueryRowContext(ctx, q, reference).Scan(
		&d.ID, &d.Reference, &d.GuestID, &d.HotelID, &d.RoomID,
		&d.CheckIn, &d.CheckOut, &d.Nights,
		&d.GuestName, &d.GuestCount, &d.TotalAmount, &d.PerNightRate,
		&d.CorporateDiscount, &d.Status, &d.PurposeOfTravel,
		&d.GuestDisplayName, &d.GuestEmail, &d.IsCorporate, &company,
		&d.HotelName, &d.HotelAddress, &d.City, &state, &phone,
		&d.RoomType, &bedType,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	if company.Valid {
		v := company.String
		d.CompanyName = &v
	}
	if state.Valid {
		v := state.String
		d.State = &v
	}
	if phone.Valid {
		v := phone.String
		d.HotelPhone = &v
	}
	if bedType.Valid {
		v := bedType.String
		d.BedType = &v
	}
	return &d, nil
}

// ListByGuest returns a guest's bookings, newest check-in first.  An
// empty status means no status filter; includePast=false keeps only
// bookings whose check-out has not passed yet.
func (s *Store) ListByGuest(ctx context.Context, guestID uint64, status string, includePast bool) ([]model.BookingSummary, error) {
	q := `SELECT b.booking_reference, b.status, h.hotel_name, h.city, r.room_type,
	             b.check_in_date, b.check_out_date, b.nights, b.total_amount, b.purpose_of_travel
	      FROM bookings b
	      JOIN hotels h ON h.hotel_id = b.hotel_id
	      JOIN rooms r  ON r.room_id  = b.room_id
	      WHERE b.user_id = ?`
	args := []any{guestID}
	if status != "" {
		q += ` AND b.status = ?`
		args = append(args, status)
	}
	if !includePast {
		q += ` AND b.check_out_date >= CURDATE()`
	}
	q += ` ORDER BY b.check_in_date DESC`

	rows, err := s.conn(ctx).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]model.BookingSummary, 0)
	for rows.Next() {
		var sum model.BookingSummary
		if err := rows.Scan(
			&sum.Reference, &sum.Status, &sum.HotelName, &sum.City, &sum.RoomType,
			&sum.CheckIn, &sum.CheckOut, &sum.Nights, &sum.TotalAmount, &sum.PurposeOfTravel,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, sum)
	}
	return bookings, rows.Err()
}

// ListByCompany returns every booking made by guests of one company,
// newest check-in first.
func (s *Store) ListByCompany(ctx context.Context, companyName string) ([]model.CorporateBooking, error) {
	const q = `SELECT b.booking_reference, b.status,
	                  CONCAT(u.first_name, ' ', u.last_name), u.email,
	                  h.hotel_name, h.city, r.room_type,
	                  b.check_in_date, b.check_out_date, b.nights,
	                  b.total_amount, b.corporate_discount, b.purpose_of_travel
	           FROM bookings b
	           JOIN users u  ON u.user_id  = b.user_id
	           JOIN hotels h ON h.hotel_id = b.hotel_id
	           JOIN rooms r  ON r.room_id  = b.room_id
	           WHERE u.company_name = ?
	           ORDER BY b.check_in_date DESC`
	rows, err := s.conn(ctx).QueryContext(ctx, q, companyName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]model.CorporateBooking, 0)
	for rows.Next() {
		var cb model.CorporateBooking
		if err := rows.Scan(
			&cb.Reference, &cb.Status,
			&cb.TravelerName, &cb.TravelerEmail,
			&cb.HotelName, &cb.City, &cb.RoomType,
			&cb.CheckIn, &cb.CheckOut, &cb.Nights,
			&cb.TotalAmount, &cb.CorporateDiscount, &cb.PurposeOfTravel,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, cb)
	}
	return bookings, rows.Err()
}
