package sanitizer

import (
	"github.com/microcosm-cc/bluemonday"
)

const (
	// DefaultStrictMaxLen caps plain-text fields.
	DefaultStrictMaxLen = 10000

	// DefaultRichMaxLen caps rich-text fields such as job descriptions.
	DefaultRichMaxLen = 20000
)

// Both policies are read-only after construction and safe for concurrent use.
// Never call mutating helpers (AllowElements, AllowAttrs, ...) on them after
// initialization as that would create a data race.
var (
	strictPolicy = bluemonday.StrictPolicy()

	richPolicy = func() *bluemonday.Policy {
		p := bluemonday.NewPolicy()
		p.AllowElements("p", "br", "ul", "ol", "li", "strong", "em", "b", "i", "u")
		p.AllowAttrs("href", "title").OnElements("a")
		p.AllowURLSchemes("http", "https", "mailto", "tel")
		p.RequireParseableURLs(true)
		p.RequireNoFollowOnLinks(true)
		p.RequireNoReferrerOnLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		return p
	}()
)

// SanitizeStrict removes every HTML tag and attribute from input and caps the
// result at max runes. A max of zero or less selects DefaultStrictMaxLen.
//
// Use for titles, names, locations - anything that must be plain text.
//
//	SanitizeStrict("<img src=x onerror=alert(1)>hello", 0) // "hello"
func SanitizeStrict(input string, max int) string {
	if max <= 0 {
		max = DefaultStrictMaxLen
	}
	return capSanitized(strictPolicy, strictPolicy.Sanitize(input), max)
}

// SanitizeRich keeps a minimal allowlist of formatting tags (paragraphs,
// line breaks, lists, emphasis, anchors) and strips everything else entirely.
// Anchors only survive with http/https/mailto/tel schemes and are forced to
// carry rel="nofollow noopener noreferrer" and target="_blank". The result is
// capped at max runes; zero or less selects DefaultRichMaxLen.
//
// Use for fields that allow limited formatting, e.g. job descriptions. Expand
// the allowlist only after a security review.
func SanitizeRich(input string, max int) string {
	if max <= 0 {
		max = DefaultRichMaxLen
	}
	return capSanitized(richPolicy, richPolicy.Sanitize(input), max)
}

// capSanitized truncates already-sanitized content to max runes. A cut can
// split a tag open, so truncated output is passed through the policy once
// more; that keeps the exported sanitizers idempotent.
func capSanitized(p *bluemonday.Policy, s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return p.Sanitize(string(runes[:max]))
}
