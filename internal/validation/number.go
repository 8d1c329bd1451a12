package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Number is a loosely typed numeric form input. Browsers submit numbers as
// JSON numbers, numeric strings, or "" for an untouched input; "" and null
// leave the Number unset instead of turning into 0. Text that is not a
// number is kept as set-but-NaN so that every "> 0" rule rejects it.
type Number struct {
	Float float64
	Set   bool
}

// NumberOf returns a set Number holding f.
func NumberOf(f float64) Number {
	return Number{Float: f, Set: true}
}

// ParseNumber reads a form value.
func ParseNumber(raw interface{}) Number {
	if raw == nil {
		return Number{}
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return Number{}
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return Number{Float: math.NaN(), Set: true}
	}
	return Number{Float: f, Set: true}
}

// Positive reports whether the number is set and strictly greater than zero.
func (n Number) Positive() bool {
	return n.Set && !math.IsNaN(n.Float) && n.Float > 0
}

// Ptr returns nil for an unset number, which keeps it out of JSON payloads.
func (n Number) Ptr() *float64 {
	if !n.Set || math.IsNaN(n.Float) {
		return nil
	}
	f := n.Float
	return &f
}

// String renders the number for multipart forwarding; unset renders "".
func (n Number) String() string {
	if !n.Set || math.IsNaN(n.Float) {
		return ""
	}
	return strconv.FormatFloat(n.Float, 'f', -1, 64)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*n = ParseNumber(raw)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if p := n.Ptr(); p != nil {
		return json.Marshal(*p)
	}
	return []byte("null"), nil
}
