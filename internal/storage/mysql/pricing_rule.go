package mysql

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// RulesByHotel returns the hotel's pricing rules plus the global rules
// (hotel_id NULL), ordered by priority descending.  Ties resolve by
// rule_id ascending so insertion order is the deterministic tie-break.
func (s *Store) RulesByHotel(ctx context.Context, hotelID uint64) ([]model.PricingRule, error) {
	const q = `SELECT rule_id, hotel_id, season, day_of_week, price_multiplier, priority
	           FROM pricing_rules
	           WHERE hotel_id = ? OR hotel_id IS NULL
	           ORDER BY priority DESC, rule_id ASC`
	rows, err := s.conn(ctx).QueryContext(ctx, q, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rules := make([]model.PricingRule, 0)
	for rows.Next() {
		var r model.PricingRule
		var hid sql.NullInt64
		var season, day sql.NullString
		if err := rows.Scan(&r.ID, &hid, &season, &day, &r.Multiplier, &r.Priority); err != nil {
			return nil, err
		}
		if hid.Valid {
			v := uint64(hid.Int64)
			r.HotelID = &v
		}
		if season.Valid {
			v := season.String
			r.Season = &v
		}
		if day.Valid {
			v := day.String
			r.DayOfWeek = &v
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}
