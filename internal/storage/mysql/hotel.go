package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/storage"
)

const hotelColumns = `hotel_id, hotel_name, hotel_code, chain, star_rating, address,
	city, state, country, postal_code, phone, email,
	corporate_discount_percent, is_preferred_vendor`

// scanHotel scans one hotels row from any row-shaped source.
func scanHotel(row interface{ Scan(dest ...any) error }) (*model.Hotel, error) {
	var h model.Hotel
	var chain, state, postal, phone, email sql.NullString
	err := row.Scan(
		&h.ID, &h.Name, &h.Code, &chain, &h.StarRating, &h.Address,
		&h.City, &state, &h.Country, &postal, &phone, &email,
		&h.CorporateDiscountPercent, &h.IsPreferredVendor,
	)
	if err != nil {
		return nil, err
	}
	if chain.Valid {
		v := chain.String
		h.Chain = &v
	}
	if state.Valid {
		v := state.String
		h.State = &v
	}
	if postal.Valid {
		v := postal.String
		h.PostalCode = &v
	}
	if phone.Valid {
		v := phone.String
		h.Phone = &v
	}
	if email.Valid {
		v := email.String
		h.Email = &v
	}
	return &h, nil
}

// HotelByID returns one hotel or storage.ErrNotFound.
func (s *Store) HotelByID(ctx context.Context, hotelID uint64) (*model.Hotel, error) {
	const q = `SELECT ` + hotelColumns + ` FROM hotels WHERE hotel_id = ?`
	h, err := scanHotel(s.conn(ctx).QueryRowContext(ctx, q, hotelID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

// SearchHotels returns hotels in a city matching the optional filters,
// preferred vendors first, then by star rating descending.
func (s *Store) SearchHotels(ctx context.Context, query model.HotelSearchQuery) ([]model.Hotel, error) {
	q := `SELECT ` + hotelColumns + ` FROM hotels WHERE LOWER(city) = LOWER(?)`
	args := []any{query.City}
	if query.State != "" {
		q += ` AND LOWER(state) = LOWER(?)`
		args = append(args, query.State)
	}
	if query.PreferredOnly {
		q += ` AND is_preferred_vendor = TRUE`
	}
	if query.MinStarRating > 0 {
		q += ` AND star_rating >= ?`
		args = append(args, query.MinStarRating)
	}
	q += ` ORDER BY is_preferred_vendor DESC, star_rating DESC`

	rows, err := s.conn(ctx).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	hotels := make([]model.Hotel, 0)
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, *h)
	}
	return hotels, rows.Err()
}

// Cities aggregates the distinct cities that have hotels.
func (s *Store) Cities(ctx context.Context) ([]model.CitySummary, error) {
	const q = `SELECT city, state, country, COUNT(hotel_id) AS hotel_count
	           FROM hotels GROUP BY city, state, country ORDER BY city`
	rows, err := s.conn(ctx).QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	cities := make([]model.CitySummary, 0)
	for rows.Next() {
		var c model.CitySummary
		var state sql.NullString
		if err := rows.Scan(&c.City, &state, &c.Country, &c.HotelCount); err != nil {
			return nil, err
		}
		if state.Valid {
			v := state.String
			c.State = &v
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

// AmenitiesByHotel lists a hotel's amenities ordered by type, then name.
func (s *Store) AmenitiesByHotel(ctx context.Context, hotelID uint64) ([]model.Amenity, error) {
	const q = `SELECT amenity_name, amenity_type FROM hotel_amenities
	           WHERE hotel_id = ? ORDER BY amenity_type, amenity_name`
	rows, err := s.conn(ctx).QueryContext(ctx, q, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	amenities := make([]model.Amenity, 0)
	for rows.Next() {
		var a model.Amenity
		if err := rows.Scan(&a.Name, &a.Type); err != nil {
			return nil, err
		}
		amenities = append(amenities, a)
	}
	return amenities, rows.Err()
}

// PreferredVendors lists preferred vendor hotels, optionally filtered
// by city.
func (s *Store) PreferredVendors(ctx context.Context, city string) ([]model.Hotel, error) {
	q := `SELECT ` + hotelColumns + ` FROM hotels WHERE is_preferred_vendor = TRUE`
	args := []any{}
	if city != "" {
		q += ` AND LOWER(city) = LOWER(?)`
		args = append(args, city)
	}
	q += ` ORDER BY city, hotel_name`

	rows, err := s.conn(ctx).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	hotels := make([]model.Hotel, 0)
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, *h)
	}
	return hotels, rows.Err()
}
