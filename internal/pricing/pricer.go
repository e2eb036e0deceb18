package pricing

import (
	"errors"
	"math"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// ErrInvalidDateRange is returned when check-out is not after check-in.
var ErrInvalidDateRange = errors.New("check-out date must be after check-in date")

// Breakdown itemizes how a trip total was reached.  AfterDynamicPricing
// is the subtotal once per-night multipliers are applied but before the
// corporate discount is subtracted.
type Breakdown struct {
	BaseTotal           float64 `json:"base_total"`
	AfterDynamicPricing float64 `json:"after_dynamic_pricing"`
	DiscountPercent     float64 `json:"corporate_discount_percent"`
	DiscountAmount      float64 `json:"corporate_discount_amount"`
	FinalTotal          float64 `json:"final_total"`
}

// Quote is the result of pricing one stay.  Monetary outputs are rounded
// to two decimals; intermediate per-night sums are not, so cumulative
// rounding error cannot change the total.
type Quote struct {
	TotalPrice      float64   `json:"total_price"`
	AveragePerNight float64   `json:"average_per_night"`
	Nights          int       `json:"nights"`
	DiscountAmount  float64   `json:"corporate_discount_applied"`
	Breakdown       Breakdown `json:"breakdown"`
}

// Nights returns the number of nights between check-in and check-out
// (check-out exclusive).
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// round2 rounds to two decimal places.  Used only at documented output
// points.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PriceTrip prices a stay night by night.  Every night in
// [checkIn, checkOut) is classified independently, the effective
// multiplier resolved against the rule set and base*multiplier
// accumulated.  The corporate discount, when applicable, is subtracted
// from the summed subtotal.  The rule set is a snapshot: the same inputs
// always produce the same quote.
func PriceTrip(basePrice float64, checkIn, checkOut time.Time, rules []model.PricingRule, isCorporate bool, discountPercent float64) (*Quote, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	sorted := sortRules(rules)
	nights := 0
	total := 0.0
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		mult := EffectiveMultiplier(sorted, SeasonOf(d), DayTypeOf(d))
		total += basePrice * mult
		nights++
	}

	discount := 0.0
	if isCorporate && discountPercent > 0 {
		discount = total * discountPercent / 100
		total -= discount
	}

	pct := 0.0
	if isCorporate {
		pct = discountPercent
	}
	return &Quote{
		TotalPrice:      round2(total),
		AveragePerNight: round2(total / float64(nights)),
		Nights:          nights,
		DiscountAmount:  round2(discount),
		Breakdown: Breakdown{
			BaseTotal:           basePrice * float64(nights),
			AfterDynamicPricing: total + discount,
			DiscountPercent:     pct,
			DiscountAmount:      round2(discount),
			FinalTotal:          round2(total),
		},
	}, nil
}
