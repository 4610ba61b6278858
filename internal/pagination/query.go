// Package pagination turns loosely-typed list queries into bounded
// page/sort settings and applies them to in-memory collections.
package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

// Order is the sort direction of a list query.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Safe defaults so the API behaves predictably.
const (
	DefaultPage   = 1
	DefaultLimit  = 20
	MaxLimit      = 100
	MaxPage       = math.MaxInt32 // larger pages saturate so Offset cannot overflow int
	DefaultSortBy = "id"
)

// Query keys read by Normalize.
const (
	ParamPage   = "page"
	ParamLimit  = "limit"
	ParamSortBy = "sortBy"
	ParamOrder  = "order"
)

// Query is a normalised pagination and sort request. Every field is
// within bounds once produced by Normalize.
type Query struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	SortBy string `json:"sortBy"`
	Order  Order  `json:"order"`
}

// Offset is the index of the first item of the page window.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Normalize never fails: anything missing or malformed falls back to a default.
// Only string values are parsed; numbers, slices and maps count as absent.
func Normalize(raw map[string]any, allowedSortFields []string) Query {
	page := parsePositiveInt(raw[ParamPage], DefaultPage)

	// limit with hard cap to prevent abuse
	limit := parsePositiveInt(raw[ParamLimit], DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}

	sortBy := DefaultSortBy
	if s, ok := raw[ParamSortBy].(string); ok && contains(allowedSortFields, s) {
		sortBy = s
	}

	order := OrderAsc
	if s, ok := raw[ParamOrder].(string); ok && s == string(OrderDesc) {
		order = OrderDesc
	}

	return Query{Page: page, Limit: limit, SortBy: sortBy, Order: order}
}

// RawQuery adapts parsed query-string values to the mapping Normalize reads.
// A key given once maps to its string; a repeated key maps to []string.
func RawQuery(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, vs := range values {
		switch len(vs) {
		case 0:
		case 1:
			out[k] = vs[0]
		default:
			out[k] = append([]string(nil), vs...)
		}
	}
	return out
}

func parsePositiveInt(value any, fallback int) int {
	s, ok := value.(string)
	if !ok {
		return fallback
	}
	n, ok := parseIntPrefix(s)
	if !ok || n < 1 {
		return fallback
	}
	return n
}

// parseIntPrefix reads an optionally signed run of decimal digits after
// leading whitespace and ignores whatever follows ("12abc" is 12).
// Positive values beyond MaxPage saturate.
func parseIntPrefix(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || n > MaxPage {
		n = MaxPage
	}
	if neg {
		return -int(n), true
	}
	return int(n), true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
