package model

// PricingRule adjusts the nightly price for dates matching its filters.
// A rule with a nil HotelID is global and applies to every hotel.  A nil
// Season or DayOfWeek filter is a wildcard.  When several rules match
// the same night, the highest priority wins; ties resolve by insertion
// order.
type PricingRule struct {
	ID         uint64  // pricing_rules.rule_id
	HotelID    *uint64 // pricing_rules.hotel_id (nullable = global)
	Season     *string // pricing_rules.season ("peak"/"regular", nullable)
	DayOfWeek  *string // pricing_rules.day_of_week ("weekend"/"weekday", nullable)
	Multiplier float64 // pricing_rules.price_multiplier, > 0
	Priority   int     // pricing_rules.priority, higher wins
}
