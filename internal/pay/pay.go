// Package pay converts an hourly wage and a worked duration into a payout.
//
// Compute never fails. Text that does not parse, a wage that is not
// positive, or a negative duration all give the zero Result, which renders
// the same as a genuinely zero payout.
package pay

import (
	"math"

	"github.com/shopspring/decimal"

	"timeworth/internal/locale"
)

// MaxMinutes is the largest minutes value used in a calculation. Larger
// inputs are clamped to it, not carried into hours.
const MaxMinutes = 59

var sixty = decimal.NewFromInt(60)

// Input is the raw text of the three form fields.
type Input struct {
	Wage    string
	Hours   string
	Minutes string
}

// Options selects optional additions to the payout.
type Options struct {
	// Holiday adds the weekly holiday pay approximation: one extra day
	// identical to the entered duration.
	Holiday bool
}

// Result is the outcome of one calculation. The zero value is the result of
// invalid input.
type Result struct {
	// Pay is wage * totalMinutes / 60, unrounded.
	Pay decimal.Decimal
	// Wage is the hourly rate the payout was computed from.
	Wage decimal.Decimal

	// EffectiveHours is the floored hours input. It is a decimal so any
	// finite input survives the hand-off unchanged.
	EffectiveHours   decimal.Decimal
	EffectiveMinutes int

	// HolidayAdjusted is only valid when Options.Holiday was set.
	HolidayAdjusted decimal.NullDecimal

	// Valid is false when the inputs were rejected. The rendered output does
	// not depend on it.
	Valid bool
}

// Compute runs the pay formula over the raw field text.
func Compute(in Input, opts Options) Result {
	wage, okWage := ParseNumber(in.Wage)
	hours, okHours := ParseNumber(in.Hours)
	minutes, okMinutes := ParseNumber(in.Minutes)
	if !okWage || !okHours || !okMinutes {
		return Result{}
	}
	if wage <= 0 || hours < 0 || minutes < 0 {
		return Result{}
	}

	h := decimal.NewFromFloat(math.Floor(hours))
	m := int(math.Min(MaxMinutes, math.Floor(minutes)))

	w := decimal.NewFromFloat(wage)
	total := totalMinutes(h, m)
	p := w.Mul(total).Div(sixty)

	res := Result{
		Pay:              p,
		Wage:             w,
		EffectiveHours:   h,
		EffectiveMinutes: m,
		Valid:            true,
	}
	if opts.Holiday {
		res.HolidayAdjusted = decimal.NewNullDecimal(p.Add(w.Mul(total).Div(sixty)))
	}
	return res
}

// TotalMinutes is the duration the payout covers.
func (r Result) TotalMinutes() decimal.Decimal {
	return totalMinutes(r.EffectiveHours, r.EffectiveMinutes)
}

func totalMinutes(h decimal.Decimal, m int) decimal.Decimal {
	return h.Mul(sixty).Add(decimal.NewFromInt(int64(m)))
}

// RoundedPay is Pay rounded to a whole won.
func (r Result) RoundedPay() decimal.Decimal {
	return r.Pay.Round(0)
}

// PayDisplay is the payout in won, or the placeholder when there is none.
func (r Result) PayDisplay() string {
	return locale.Won(r.Pay)
}

// HolidayDisplay is empty when the holiday amount was not requested.
func (r Result) HolidayDisplay() string {
	if !r.HolidayAdjusted.Valid {
		return ""
	}
	return locale.Won(r.HolidayAdjusted.Decimal)
}
