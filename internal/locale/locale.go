// Package locale renders numbers and won amounts the way a ko-KR browser
// would: comma grouping, no fraction digits and a leading ₩.
package locale

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is shown instead of an amount that is zero, negative or unknown.
const Placeholder = "—"

const wonSign = "₩"

var printer = message.NewPrinter(language.Korean)

// Group formats n with ko-KR thousands separators.
func Group(n int64) string {
	return printer.Sprintf("%d", n)
}

// GroupUint is Group for values that only fit unsigned.
func GroupUint(n uint64) string {
	return printer.Sprintf("%d", n)
}

// GroupFloat rounds f to an integer and groups it. Used for magnitudes
// past the integer types, where float rendering is the accepted result.
func GroupFloat(f float64) string {
	return printer.Sprintf("%.0f", f)
}

// GroupDecimal rounds d half away from zero and groups the result.
func GroupDecimal(d decimal.Decimal) string {
	r := d.Round(0)
	if bi := r.BigInt(); bi.IsInt64() {
		return Group(bi.Int64())
	}
	f, _ := r.Float64()
	return GroupFloat(f)
}

// Won renders a positive amount as "₩37,500". Anything else is Placeholder.
func Won(d decimal.Decimal) string {
	if !d.IsPositive() {
		return Placeholder
	}
	return wonSign + GroupDecimal(d)
}

// WonFloat is Won for values that arrive as float64, e.g. decoded query
// parameters. NaN and infinities render as Placeholder.
func WonFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Placeholder
	}
	return Won(decimal.NewFromFloat(v))
}
