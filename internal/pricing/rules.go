package pricing

import (
	"sort"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// sortRules orders rules by priority descending.  The sort is stable so
// rules with equal priority keep their insertion order, which makes the
// tie-break deterministic.
func sortRules(rules []model.PricingRule) []model.PricingRule {
	sorted := make([]model.PricingRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}

// ruleApplies reports whether a rule matches the classified night.  A
// nil season or day filter is a wildcard.
func ruleApplies(r model.PricingRule, season Season, day DayType) bool {
	if r.Season != nil && *r.Season != string(season) {
		return false
	}
	if r.DayOfWeek != nil && *r.DayOfWeek != string(day) {
		return false
	}
	return true
}

// EffectiveMultiplier resolves the single multiplier for one classified
// night: the first rule in priority order whose filters both match.
// When no rule matches the multiplier is 1.0.  Rules must already be
// sorted priority-descending; PriceTrip sorts once per trip.
func EffectiveMultiplier(rules []model.PricingRule, season Season, day DayType) float64 {
	for _, r := range rules {
		if ruleApplies(r, season, day) {
			return r.Multiplier
		}
	}
	return 1.0
}
