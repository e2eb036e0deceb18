// Package pricing implements the dynamic pricing engine: calendar
// classification, rule evaluation and trip pricing.  Everything in this
// package is a pure function of its inputs so quotes are reproducible
// for identical rule-set snapshots.
package pricing

import "time"

// Season classifies a calendar date by month.
type Season string

// DayType classifies a calendar date by day of week.
type DayType string

// Classifier outputs.  The string values match the season and
// day_of_week columns of pricing rules.
const (
	SeasonPeak    Season = "peak"
	SeasonRegular Season = "regular"

	DayWeekend DayType = "weekend"
	DayWeekday DayType = "weekday"
)

// SeasonOf returns the season for a date.  Peak covers the summer
// months June–August and the holiday months December and January.
func SeasonOf(t time.Time) Season {
	switch t.Month() {
	case time.June, time.July, time.August, time.December, time.January:
		return SeasonPeak
	default:
		return SeasonRegular
	}
}

// DayTypeOf returns the day type for a date.  Saturday and Sunday are
// weekend, everything else weekday.
func DayTypeOf(t time.Time) DayType {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return DayWeekend
	default:
		return DayWeekday
	}
}
