package memquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/criteria/internal/criteria"
)

func supportedOperator(op string) bool {
	switch op {
	case "=", "!=", ">", "<", "like", "not like":
		return true
	}
	return false
}

// compare evaluates `r[field] op value`.
func compare(r Record, field, op string, value criteria.Value) bool {
	got, ok := r[field]
	if !ok || got == nil || value == nil {
		return false
	}

	switch op {
	case "like":
		return likeMatch(text(got), value.Text())
	case "not like":
		return !likeMatch(text(got), value.Text())
	}

	c := compareToValue(got, value)
	switch op {
	case "=":
		return c == 0
	case "!=":
		return c != 0
	case ">":
		return c > 0
	case "<":
		return c < 0
	}
	return false
}

// compareToValue compares a record value with a filter value. Numeric when
// the record value is numeric and the filter value is (or parses as) a
// number, textual otherwise.
func compareToValue(got any, value criteria.Value) int {
	if g, ok := number(got); ok {
		if v, ok := valueNumber(value); ok {
			return compareFloat(g, v)
		}
	}
	return strings.Compare(text(got), value.Text())
}

// compareAny orders two record values; nil sorts first.
func compareAny(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if x, ok := number(a); ok {
		if y, ok := number(b); ok {
			return compareFloat(x, y)
		}
	}
	return strings.Compare(text(a), text(b))
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// number converts numeric and boolean record values to float64.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func valueNumber(v criteria.Value) (float64, bool) {
	switch val := v.(type) {
	case criteria.Int:
		return float64(val), true
	case criteria.Float:
		return float64(val), true
	case criteria.Bool:
		if val {
			return 1, true
		}
		return 0, true
	case criteria.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(val)), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case criteria.Value:
		return t.Text()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// likeMatch reports whether s matches the SQL LIKE pattern: % matches any
// run of characters, _ matches exactly one. Matching is case-insensitive
// for ASCII letters only.
func likeMatch(s, pattern string) bool {
	str := []rune(s)
	pat := []rune(pattern)

	si, pi := 0, 0
	star, mark := -1, 0
	for si < len(str) {
		switch {
		case pi < len(pat) && pat[pi] == '%':
			star = pi
			mark = si
			pi++
		case pi < len(pat) && (pat[pi] == '_' || foldASCII(pat[pi]) == foldASCII(str[si])):
			si++
			pi++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(pat) && pat[pi] == '%' {
		pi++
	}
	return pi == len(pat)
}

func foldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
