// file: internals/helpers/dbtime/date.go
package dbtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly is a calendar date (no clock, no zone) stored in DATE columns
// and serialized on the wire strictly as "YYYY-MM-DD".
type DateOnly struct{ time.Time }

// From builds a DateOnly out of t, dropping clock and zone.
func From(t time.Time) DateOnly {
	return DateOnly{
		Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// Parse builds a DateOnly from a "YYYY-MM-DD" string.
func Parse(s string) (DateOnly, error) {
	var d DateOnly
	return d, d.parse(s)
}

func (d *DateOnly) parse(s string) error {
	s = strings.TrimSpace(s)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("dbtime: invalid date %q (want YYYY-MM-DD)", s)
	}
	d.Time = t
	return nil
}

// Scan accepts time.Time or a "YYYY-MM-DD" string/[]byte from the driver.
func (d *DateOnly) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*d = From(x)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dbtime: unsupported Scan type %T", v)
	}
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

func (DateOnly) GormDataType() string { return "date" }

// MarshalJSON refuses to emit anything but a valid calendar date; a zero
// value is a programming error and must fail, not be dropped silently.
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return nil, fmt.Errorf("dbtime: cannot marshal zero date")
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("dbtime: invalid date JSON %s", s)
	}
	return d.parse(s[1 : len(s)-1])
}

func (d DateOnly) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(dateLayout)
}
