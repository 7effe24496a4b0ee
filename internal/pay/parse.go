package pay

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads s the way a browser's Number() does for the inputs we
// accept: surrounding whitespace is ignored and blank text is 0. The bool is
// false when s is not a number or the value is not finite.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f, false
	}
	return f, true
}
