package sanitizer

import "encoding/json"

// RichKeys is the set of field names whose string values are allowed limited
// rich HTML. Every other string gets the strict rule.
type RichKeys map[string]struct{}

// NewRichKeys builds a RichKeys set from field names.
func NewRichKeys(keys ...string) RichKeys {
	set := make(RichKeys, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Has reports whether key is allowed rich HTML.
func (rk RichKeys) Has(key string) bool {
	_, ok := rk[key]
	return ok
}

// DeepSanitize walks a decoded JSON value and sanitizes every string it can
// reach, at any depth. Strings under keys in richKeys get SanitizeRich, all
// others SanitizeStrict. Maps and slices are rebuilt, never mutated, so the
// original payload stays safe for concurrent reuse. Numbers, booleans and
// nulls pass through unchanged.
//
// Values of any type outside the decoded-JSON set cannot be proven safe and
// are replaced with nil rather than passed through.
func DeepSanitize(value any, richKeys RichKeys) any {
	switch v := value.(type) {
	case string:
		return SanitizeStrict(v, 0)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = DeepSanitize(item, richKeys)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			if s, ok := item.(string); ok {
				if richKeys.Has(k) {
					out[k] = SanitizeRich(s, 0)
				} else {
					out[k] = SanitizeStrict(s, 0)
				}
				continue
			}
			out[k] = DeepSanitize(item, richKeys)
		}
		return out
	case nil, bool, float64, int, int64, json.Number:
		return v
	default:
		return nil
	}
}
