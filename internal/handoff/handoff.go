// Package handoff carries a computed payout to the share card as URL query
// parameters, so the card can be opened from a link with no server state.
//
// The card side treats every value as untrusted. It never recomputes
// anything; it only renders what arrived.
package handoff

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"timeworth/internal/locale"
	"timeworth/internal/pay"
)

const (
	KeyPay     = "pay"
	KeyWage    = "wage"
	KeyHours   = "h"
	KeyMinutes = "m"
)

// CardPath is where the card view is mounted.
const CardPath = "/card"

// Encode produces the hand-off parameters for res. Minutes are already
// clamped by pay.Compute.
func Encode(res pay.Result) url.Values {
	v := url.Values{}
	v.Set(KeyPay, res.RoundedPay().String())
	v.Set(KeyWage, res.Wage.String())
	v.Set(KeyHours, res.EffectiveHours.String())
	v.Set(KeyMinutes, strconv.Itoa(res.EffectiveMinutes))
	return v
}

// CardURL returns a link to the card for res. base may be empty for a
// relative link.
func CardURL(base string, res pay.Result) string {
	return strings.TrimRight(base, "/") + CardPath + "?" + Encode(res).Encode()
}

// Values are the decoded numbers. A missing or unusable parameter is 0.
type Values struct {
	Pay     float64
	Wage    float64
	Hours   float64
	Minutes float64
}

// Decode reads the hand-off parameters. It never fails.
func Decode(q url.Values) Values {
	return Values{
		Pay:     number(q, KeyPay),
		Wage:    number(q, KeyWage),
		Hours:   number(q, KeyHours),
		Minutes: number(q, KeyMinutes),
	}
}

// ParseQuery accepts a full link, a bare query string, or a query with a
// leading "?", and decodes it. Anything unparsable decodes to zeros.
func ParseQuery(raw string) Values {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[i+1:]
	}
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	q, _ := url.ParseQuery(raw)
	return Decode(q)
}

func number(q url.Values, key string) float64 {
	v, ok := pay.ParseNumber(q.Get(key))
	if !ok {
		return 0
	}
	return v
}

// Display is the card's rendered text.
type Display struct {
	Pay     string
	Wage    string
	Hours   string
	Minutes string
}

// Display renders v with the same placeholder rule as the calculator.
// Minutes are shown as received, without clamping.
func (v Values) Display() Display {
	return Display{
		Pay:     locale.WonFloat(v.Pay),
		Wage:    locale.WonFloat(v.Wage),
		Hours:   count(v.Hours, "h"),
		Minutes: count(v.Minutes, "m"),
	}
}

func count(f float64, unit string) string {
	if f < 0 {
		return locale.Placeholder
	}
	return strconv.FormatFloat(math.Floor(f), 'f', -1, 64) + unit
}
