package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
)

func strp(s string) *string { return &s }

func rule(id uint64, season, day *string, mult float64, prio int) model.PricingRule {
	return model.PricingRule{ID: id, Season: season, DayOfWeek: day, Multiplier: mult, Priority: prio}
}

func TestEffectiveMultiplierNoMatch(t *testing.T) {
	rules := []model.PricingRule{
		rule(1, strp("peak"), nil, 1.5, 10),
	}
	if got := EffectiveMultiplier(rules, SeasonRegular, DayWeekday); got != 1.0 {
		t.Fatalf("multiplier = %v, want 1.0 when no rule matches", got)
	}
	if got := EffectiveMultiplier(nil, SeasonPeak, DayWeekend); got != 1.0 {
		t.Fatalf("multiplier = %v, want 1.0 for empty rule set", got)
	}
}

func TestEffectiveMultiplierHighestPriorityWins(t *testing.T) {
	sorted := sortRules([]model.PricingRule{
		rule(1, nil, nil, 1.1, 1),
		rule(2, strp("peak"), nil, 1.5, 10),
		rule(3, strp("peak"), strp("weekend"), 2.0, 20),
	})
	// Peak weekend matches all three; the priority 20 rule must win.
	if got := EffectiveMultiplier(sorted, SeasonPeak, DayWeekend); got != 2.0 {
		t.Errorf("peak/weekend multiplier = %v, want 2.0", got)
	}
	// Peak weekday: the weekend filter excludes rule 3, rule 2 wins.
	if got := EffectiveMultiplier(sorted, SeasonPeak, DayWeekday); got != 1.5 {
		t.Errorf("peak/weekday multiplier = %v, want 1.5", got)
	}
	// Regular weekday: only the wildcard rule applies.
	if got := EffectiveMultiplier(sorted, SeasonRegular, DayWeekday); got != 1.1 {
		t.Errorf("regular/weekday multiplier = %v, want 1.1", got)
	}
}

func TestEffectiveMultiplierTieBreakInsertionOrder(t *testing.T) {
	sorted := sortRules([]model.PricingRule{
		rule(1, nil, nil, 1.2, 5),
		rule(2, nil, nil, 1.8, 5),
	})
	if got := EffectiveMultiplier(sorted, SeasonRegular, DayWeekday); got != 1.2 {
		t.Fatalf("multiplier = %v, want 1.2 (first inserted rule wins ties)", got)
	}
}

func TestPriceTripInvalidRange(t *testing.T) {
	in := date(2025, time.March, 10)
	for _, out := range []time.Time{in, in.AddDate(0, 0, -1)} {
		if _, err := PriceTrip(100, in, out, nil, false, 0); !errors.Is(err, ErrInvalidDateRange) {
			t.Errorf("PriceTrip(%s, %s) err = %v, want ErrInvalidDateRange", in.Format("2006-01-02"), out.Format("2006-01-02"), err)
		}
	}
}

func TestPriceTripRegularWeekdayNoRules(t *testing.T) {
	// Base 200.00, 3 nights Tue-Fri in March: all regular weekday, no
	// rules, so the multiplier stays 1.0 every night.
	in := date(2025, time.March, 4)
	out := date(2025, time.March, 7)
	q, err := PriceTrip(200, in, out, nil, false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if q.Nights != 3 {
		t.Errorf("nights = %d, want 3", q.Nights)
	}
	if q.TotalPrice != 600.00 {
		t.Errorf("total = %v, want 600.00", q.TotalPrice)
	}
	if q.AveragePerNight != 200.00 {
		t.Errorf("average = %v, want 200.00", q.AveragePerNight)
	}
	if q.DiscountAmount != 0.00 {
		t.Errorf("discount = %v, want 0.00", q.DiscountAmount)
	}
}

func TestPriceTripPeakRuleWithCorporateDiscount(t *testing.T) {
	// Base 100.00, 2 peak-season nights, a hotel rule {peak, 1.5,
	// priority 10} matching both, corporate with 20%:
	// subtotal 300.00, discount 60.00, final 240.00.
	in := date(2025, time.July, 7)
	out := date(2025, time.July, 9)
	rules := []model.PricingRule{rule(1, strp("peak"), nil, 1.5, 10)}
	q, err := PriceTrip(100, in, out, rules, true, 20)
	if err != nil {
		t.Fatal(err)
	}
	if q.Breakdown.AfterDynamicPricing != 300.00 {
		t.Errorf("subtotal = %v, want 300.00", q.Breakdown.AfterDynamicPricing)
	}
	if q.DiscountAmount != 60.00 {
		t.Errorf("discount = %v, want 60.00", q.DiscountAmount)
	}
	if q.TotalPrice != 240.00 {
		t.Errorf("total = %v, want 240.00", q.TotalPrice)
	}
	if q.Breakdown.DiscountPercent != 20 {
		t.Errorf("discount percent = %v, want 20", q.Breakdown.DiscountPercent)
	}
	if q.Breakdown.BaseTotal != 200.00 {
		t.Errorf("base total = %v, want 200.00", q.Breakdown.BaseTotal)
	}
}

func TestPriceTripNightsMatchDateDifference(t *testing.T) {
	in := date(2025, time.November, 28)
	for n := 1; n <= 14; n++ {
		out := in.AddDate(0, 0, n)
		q, err := PriceTrip(150, in, out, nil, false, 0)
		if err != nil {
			t.Fatal(err)
		}
		if q.Nights != n {
			t.Errorf("nights = %d, want %d", q.Nights, n)
		}
		if q.Nights != Nights(in, out) {
			t.Errorf("quote nights %d disagrees with Nights() %d", q.Nights, Nights(in, out))
		}
	}
}

func TestPriceTripClassifiesEachNightIndependently(t *testing.T) {
	// Stay crossing the May→June boundary: the June nights are peak and
	// pick up the 1.5 rule, the May nights stay at base.
	in := date(2025, time.May, 30)  // Friday
	out := date(2025, time.June, 3) // 4 nights: May 30, 31, Jun 1, 2
	rules := []model.PricingRule{rule(1, strp("peak"), nil, 1.5, 10)}
	q, err := PriceTrip(100, in, out, rules, false, 0)
	if err != nil {
		t.Fatal(err)
	}
	// 2 regular nights at 100 + 2 peak nights at 150.
	if q.TotalPrice != 500.00 {
		t.Errorf("total = %v, want 500.00", q.TotalPrice)
	}
	if q.AveragePerNight != 125.00 {
		t.Errorf("average = %v, want 125.00", q.AveragePerNight)
	}
}

func TestPriceTripDiscountIgnoredForNonCorporate(t *testing.T) {
	in := date(2025, time.March, 4)
	out := date(2025, time.March, 6)
	q, err := PriceTrip(100, in, out, nil, false, 25)
	if err != nil {
		t.Fatal(err)
	}
	if q.TotalPrice != 200.00 || q.DiscountAmount != 0 {
		t.Errorf("total = %v discount = %v, want 200.00 / 0 without corporate flag", q.TotalPrice, q.DiscountAmount)
	}
	if q.Breakdown.DiscountPercent != 0 {
		t.Errorf("breakdown percent = %v, want 0 for individual bookings", q.Breakdown.DiscountPercent)
	}
}

func TestPriceTripRoundsOnlyAtOutput(t *testing.T) {
	// 3 nights at 99.99 * 1.333 accumulates unrounded, then rounds once.
	in := date(2025, time.March, 4)
	out := date(2025, time.March, 7)
	rules := []model.PricingRule{rule(1, nil, nil, 1.333, 1)}
	q, err := PriceTrip(99.99, in, out, rules, false, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := 399.86 // round2(3 * 99.99 * 1.333) = round2(399.86...)
	if q.TotalPrice != want {
		t.Errorf("total = %v, want %v", q.TotalPrice, want)
	}
}
