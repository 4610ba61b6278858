package pagination

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FieldFunc returns the value of the named field of an item, or nil when the
// item has no such field.
type FieldFunc[T any] func(item T, field string) any

// Result is one page window plus the size of the full collection.
type Result[T any] struct {
	Items []T
	Total int
}

// Collation selects the locale used to order text values.
type Collation struct {
	tag language.Tag
}

// NewCollation parses a BCP 47 locale; an empty or unknown locale falls back to English.
func NewCollation(locale string) Collation {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil || tag == language.Und {
		tag = language.English
	}
	return Collation{tag: tag}
}

// Locale reports the effective locale.
func (c Collation) Locale() string {
	if c.tag == language.Und {
		return language.English.String()
	}
	return c.tag.String()
}

// Comparator returns a three-way comparison for field values.
// collate.Collator keeps internal buffers, so each call builds its own.
func (c Collation) Comparator() func(a, b any) int {
	tag := c.tag
	if tag == language.Und {
		tag = language.English
	}
	col := collate.New(tag)
	return func(a, b any) int {
		return compare(col, a, b)
	}
}

// Apply sorts a copy of items by q.SortBy and returns the page window.
// The sort is stable: items comparing equal keep their original order in
// either direction. items itself is never reordered.
func Apply[T any](items []T, q Query, field FieldFunc[T], c Collation) Result[T] {
	total := len(items)

	sorted := slices.Clone(items)
	cmp := c.Comparator()
	slices.SortStableFunc(sorted, func(a, b T) int {
		r := cmp(field(a, q.SortBy), field(b, q.SortBy))
		if q.Order == OrderDesc {
			return -r
		}
		return r
	})

	return Result[T]{Items: Window(sorted, q), Total: total}
}

// Window returns the half-open range [offset, offset+limit) clipped to the
// bounds of items. A start past the end yields an empty, non-nil slice.
func Window[T any](items []T, q Query) []T {
	start := q.Offset()
	if start < 0 || start >= len(items) || q.Limit < 1 {
		return []T{}
	}
	end := start + q.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func compare(col *collate.Collator, a, b any) int {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return col.CompareString(as, bs)
		}
	}

	if ai, ok := asInt(a); ok {
		if bi, ok := asInt(b); ok {
			return sign3(ai < bi, ai > bi)
		}
	}
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			// NaN compares equal to everything.
			return sign3(af < bf, af > bf)
		}
	}

	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return sign3(!ab && bb, ab && !bb)
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func sign3(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	default:
		return 0
	}
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
