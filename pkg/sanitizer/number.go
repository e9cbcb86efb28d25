package sanitizer

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Bounds optionally limits a clamped number on either side. A nil bound
// leaves that side open.
type Bounds struct {
	Min *float64
	Max *float64
}

// Float64 returns a pointer to v, for building Bounds inline.
func Float64(v float64) *float64 {
	return &v
}

// ClampNumber coerces v to a number and clamps it into the supplied bounds.
// Strings are trimmed and parsed; numeric JSON types are accepted directly.
// The second return is false when v cannot be coerced - callers treat that as
// "not a number, drop the field".
func ClampNumber(v any, b Bounds) (float64, bool) {
	num, ok := toFloat(v)
	if !ok || math.IsNaN(num) {
		return 0, false
	}
	if b.Min != nil && num < *b.Min {
		num = *b.Min
	}
	if b.Max != nil && num > *b.Max {
		num = *b.Max
	}
	return num, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

var reNonMoney = regexp.MustCompile(`[^0-9.,]`)

// ParseMoney extracts a numeric amount from free-form user input such as
// "₱40,000.00". Every character that is not a digit, '.' or ',' is stripped,
// then commas are treated as thousands separators and removed. The second
// return is false when nothing numeric remains.
func ParseMoney(input string) (float64, bool) {
	cleaned := reNonMoney.ReplaceAllString(input, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
