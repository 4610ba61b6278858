package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitPairs splits "a:b,c:d" into key/value pairs, skipping blank or
// malformed entries. The value is everything after the last colon so keys may
// themselves contain colons.
func SplitPairs(raw string) [][2]string {
	out := [][2]string{}
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	}) {
		part = strings.TrimSpace(part)
		i := strings.LastIndex(part, ":")
		if i <= 0 || i == len(part)-1 {
			continue
		}
		out = append(out, [2]string{strings.TrimSpace(part[:i]), strings.TrimSpace(part[i+1:])})
	}
	return out
}
