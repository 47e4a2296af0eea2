package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. It is stored in
// the database as an ISO "YYYY-MM-DD" string (or DATE column) and is
// rendered the same way in JSON.
type Date struct {
	time.Time
}

// ParseDate parses an ISO "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string { return d.Format(DateLayout) }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.Time.IsZero() }

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON accepts a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so dates bind as "YYYY-MM-DD" strings.
// ISO strings compare correctly both as MySQL DATE values and as SQLite
// TEXT, which keeps the repository SQL portable across both drivers.
func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}

// Scan implements sql.Scanner. MySQL with parseTime=true hands back
// time.Time for DATE columns; SQLite hands back time.Time or raw text
// depending on the declared column type.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// DateRangesOverlap reports whether two stay intervals conflict. Bounds
// are inclusive: a booking that checks out on the day another checks in
// counts as an overlap. Equivalent to
// a.in <= b.out AND a.out >= b.in over same-granularity dates.
func DateRangesOverlap(aIn, aOut, bIn, bOut Date) bool {
	return !aIn.After(bOut.Time) && !aOut.Before(bIn.Time)
}
