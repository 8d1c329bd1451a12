package validation

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Date is a leniently parsed date input. It records whether the field was
// present and whether it parsed, so callers can tell "missing" from
// "unparseable" when reporting errors.
type Date struct {
	Time  time.Time
	Raw   string
	Set   bool
	Valid bool
}

// DateOf returns a set, valid Date.
func DateOf(t time.Time) Date {
	return Date{Time: t, Raw: t.Format(time.RFC3339), Set: true, Valid: true}
}

// ParseDate parses s with the formats browsers and date pickers produce
// (RFC 3339, plain dates, US style dates, ...).
func ParseDate(s string) Date {
	d := Date{Raw: s, Set: true}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return d
	}
	t, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return d
	}
	d.Time = t
	d.Valid = true
	return d
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*d = Date{}
	case string:
		*d = ParseDate(v)
	default:
		*d = Date{Raw: string(b), Set: true}
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}
