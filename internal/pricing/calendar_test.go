package pricing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeasonOf(t *testing.T) {
	cases := []struct {
		month time.Month
		want  Season
	}{
		{time.January, SeasonPeak},
		{time.February, SeasonRegular},
		{time.March, SeasonRegular},
		{time.April, SeasonRegular},
		{time.May, SeasonRegular},
		{time.June, SeasonPeak},
		{time.July, SeasonPeak},
		{time.August, SeasonPeak},
		{time.September, SeasonRegular},
		{time.October, SeasonRegular},
		{time.November, SeasonRegular},
		{time.December, SeasonPeak},
	}
	for _, c := range cases {
		if got := SeasonOf(date(2025, c.month, 15)); got != c.want {
			t.Errorf("SeasonOf(%v) = %q, want %q", c.month, got, c.want)
		}
	}
}

func TestDayTypeOf(t *testing.T) {
	// 2025-03-03 is a Monday.
	monday := date(2025, time.March, 3)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		want := DayWeekday
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			want = DayWeekend
		}
		if got := DayTypeOf(d); got != want {
			t.Errorf("DayTypeOf(%s %s) = %q, want %q", d.Format("2006-01-02"), d.Weekday(), got, want)
		}
	}
}
