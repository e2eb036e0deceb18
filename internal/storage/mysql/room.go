package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/storage"
)

// RoomRate fetches the hotel/room join needed by pricing: the room's
// base price with the owning hotel's corporate discount.  Returns
// storage.ErrNotFound when the pairing is invalid.
func (s *Store) RoomRate(ctx context.Context, hotelID, roomID uint64) (*model.RoomRate, error) {
	const q = `SELECT h.hotel_id, r.room_id, h.hotel_name, h.city, r.room_type,
	                  r.base_price, h.corporate_discount_percent
	           FROM hotels h
	           JOIN rooms r ON r.hotel_id = h.hotel_id
	           WHERE h.hotel_id = ? AND r.room_id = ?`
	var rr model.RoomRate
	err := s.conn(ctx).QueryRowContext(ctx, q, hotelID, roomID).Scan(
		&rr.HotelID, &rr.RoomID, &rr.HotelName, &rr.City, &rr.RoomType,
		&rr.BasePrice, &rr.DiscountPercent,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &rr, nil
}

// RoomWithHotel returns a room together with its hotel's name and city.
func (s *Store) RoomWithHotel(ctx context.Context, roomID uint64) (*model.RoomInfo, error) {
	const q = `SELECT r.room_id, r.hotel_id, r.room_type, r.base_price, r.max_occupancy,
	                  r.bed_type, r.amenities, h.hotel_name, h.city
	           FROM rooms r
	           JOIN hotels h ON h.hotel_id = r.hotel_id
	           WHERE r.room_id = ?`
	var info model.RoomInfo
	var bedType, amenities sql.NullString
	err := s.conn(ctx).QueryRowContext(ctx, q, roomID).Scan(
		&info.ID, &info.HotelID, &info.RoomType, &info.BasePrice, &info.MaxOccupancy,
		&bedType, &amenities, &info.HotelName, &info.City,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	if bedType.Valid {
		v := bedType.String
		info.BedType = &v
	}
	if amenities.Valid {
		v := amenities.String
		info.Amenities = &v
	}
	return &info, nil
}

// RoomsForHotel returns all of a hotel's rooms with the minimum
// available-unit count over the range, zero when the range has no
// inventory data, cheapest first.  Unlike RoomsWithAvailability it
// keeps sold-out rooms so detail views can show them.
func (s *Store) RoomsForHotel(ctx context.Context, hotelID uint64, checkIn, checkOut time.Time) ([]model.RoomAvailability, error) {
	const q = `SELECT r.room_id, r.hotel_id, r.room_type, r.base_price, r.max_occupancy,
	                  r.bed_type, r.amenities, MIN(ri.available_count) AS min_availability
	           FROM rooms r
	           LEFT JOIN room_inventory ri ON ri.room_id = r.room_id
	                AND ri.date >= ? AND ri.date < ?
	           WHERE r.hotel_id = ?
	           GROUP BY r.room_id, r.hotel_id, r.room_type, r.base_price,
	                    r.max_occupancy, r.bed_type, r.amenities
	           ORDER BY r.base_price ASC`
	rows, err := s.conn(ctx).QueryContext(ctx, q,
		checkIn.Format(dateLayout), checkOut.Format(dateLayout), hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.RoomAvailability, 0)
	for rows.Next() {
		var ra model.RoomAvailability
		var bedType, amenities sql.NullString
		var minAvail sql.NullInt64
		if err := rows.Scan(
			&ra.ID, &ra.HotelID, &ra.RoomType, &ra.BasePrice, &ra.MaxOccupancy,
			&bedType, &amenities, &minAvail,
		); err != nil {
			return nil, err
		}
		if bedType.Valid {
			v := bedType.String
			ra.BedType = &v
		}
		if amenities.Valid {
			v := amenities.String
			ra.Amenities = &v
		}
		if minAvail.Valid {
			ra.MinAvailable = int(minAvail.Int64)
		}
		out = append(out, ra)
	}
	return out, rows.Err()
}

// RoomsWithAvailability returns a hotel's rooms that have at least one
// unit free on every date of the range, with the minimum count across
// the range, cheapest first.
func (s *Store) RoomsWithAvailability(ctx context.Context, hotelID uint64, checkIn, checkOut time.Time) ([]model.RoomAvailability, error) {
	const q = `SELECT r.room_id, r.hotel_id, r.room_type, r.base_price, r.max_occupancy,
	                  r.bed_type, r.amenities, MIN(ri.available_count) AS min_availability
	           FROM rooms r
	           JOIN room_inventory ri ON ri.room_id = r.room_id
	           WHERE r.hotel_id = ? AND ri.date >= ? AND ri.date < ? AND ri.available_count > 0
	           GROUP BY r.room_id, r.hotel_id, r.room_type, r.base_price,
	                    r.max_occupancy, r.bed_type, r.amenities
	           HAVING MIN(ri.available_count) > 0
	           ORDER BY r.base_price ASC`
	rows, err := s.conn(ctx).QueryContext(ctx, q,
		hotelID, checkIn.Format(dateLayout), checkOut.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.RoomAvailability, 0)
	for rows.Next() {
		var ra model.RoomAvailability
		var bedType, amenities sql.NullString
		if err := rows.Scan(
			&ra.ID, &ra.HotelID, &ra.RoomType, &ra.BasePrice, &ra.MaxOccupancy,
			&bedType, &amenities, &ra.MinAvailable,
		); err != nil {
			return nil, err
		}
		if bedType.Valid {
			v := bedType.String
			ra.BedType = &v
		}
		if amenities.Valid {
			v := amenities.String
			ra.Amenities = &v
		}
		out = append(out, ra)
	}
	return out, rows.Err()
}
