package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire and column format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component.  It marshals
// as YYYY-MM-DD on the wire and scans from DATE columns; embedding
// time.Time keeps the full calendar API available.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	return d.parse(strings.Trim(string(b), `"`))
}

// Scan accepts DATE column values from the driver, either parsed
// (parseTime=true) or raw.
func (d *Date) Scan(v any) error {
	switch t := v.(type) {
	case time.Time:
		*d = NewDate(t)
		return nil
	case []byte:
		return d.parse(string(t))
	case string:
		return d.parse(t)
	case nil:
		*d = Date{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", v)
}

func (d Date) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

func (d *Date) parse(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	*d = Date{t}
	return nil
}
