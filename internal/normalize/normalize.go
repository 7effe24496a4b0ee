// Package normalize turns free-form keyboard input into digit strings and
// back into grouped display text.
//
// Only the sanitized digits are ever stored. Formatting is applied on the way
// out, so separators typed or rendered in the field are never re-read as
// input.
package normalize

import (
	"strconv"
	"strings"

	"timeworth/internal/locale"
)

// Sanitize drops every rune that is not an ASCII digit.
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
}

// FormatForDisplay renders a digit string with ko-KR grouping, e.g.
// "15000" -> "15,000". Empty input stays empty. Values past uint64 fall back
// to float rendering and lose precision in the low digits.
func FormatForDisplay(digits string) string {
	d := Sanitize(digits)
	if d == "" {
		return ""
	}
	if n, err := strconv.ParseUint(d, 10, 64); err == nil {
		return locale.GroupUint(n)
	}
	f, _ := strconv.ParseFloat(d, 64)
	return locale.GroupFloat(f)
}

// Field is the stored state of one numeric input box.
type Field struct {
	digits string
}

// NewField sanitizes raw and wraps the result.
func NewField(raw string) Field {
	return Field{digits: Sanitize(raw)}
}

// Digits returns the canonical digits-only value. Empty means "not entered".
func (f Field) Digits() string { return f.digits }

// Display returns the grouped form used as the input's visible value.
func (f Field) Display() string { return FormatForDisplay(f.digits) }

// Empty reports whether nothing has been entered.
func (f Field) Empty() bool { return f.digits == "" }
