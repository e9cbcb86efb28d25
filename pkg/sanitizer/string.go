package sanitizer

import (
	"regexp"
	"strings"
)

// Strategy is a single string transformation step.
type Strategy func(string) string

// Pipeline chains strategies into one transformation.
type Pipeline []Strategy

// Apply runs every strategy in order.
func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var reWhitespaceRun = regexp.MustCompile(`\s+`)

func trimAndLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Slugify lowercases input and replaces whitespace runs with hyphens,
// truncated to max runes. Used to derive stable option identifiers from
// display labels.
func Slugify(input string, max int) string {
	p := Pipeline{
		trimAndLower,
		func(s string) string { return reWhitespaceRun.ReplaceAllString(s, "-") },
	}
	return Truncate(p.Apply(input), max)
}

// Truncate caps s at max runes. Non-positive max returns s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
