package locale

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGroup(t *testing.T) {
	t.Run("Should group thousands with commas", func(t *testing.T) {
		assert.Equal(t, "0", Group(0))
		assert.Equal(t, "999", Group(999))
		assert.Equal(t, "1,000", Group(1000))
		assert.Equal(t, "1,234,567", Group(1234567))
	})
}

func TestWon(t *testing.T) {
	cases := []struct {
		name string
		in   decimal.Decimal
		want string
	}{
		{"whole amount", decimal.NewFromInt(37500), "₩37,500"},
		{"rounds half up", decimal.RequireFromString("29749.5"), "₩29,750"},
		{"rounds down below half", decimal.RequireFromString("2500.49"), "₩2,500"},
		{"zero is placeholder", decimal.Zero, Placeholder},
		{"negative is placeholder", decimal.NewFromInt(-10), Placeholder},
	}
	for _, tc := range cases {
		t.Run("Should render "+tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Won(tc.in))
		})
	}
}

func TestWonFloat(t *testing.T) {
	t.Run("Should render positive finite values", func(t *testing.T) {
		assert.Equal(t, "₩15,000", WonFloat(15000))
		assert.Equal(t, "₩1", WonFloat(0.5))
	})

	t.Run("Should show placeholder for non-finite and non-positive values", func(t *testing.T) {
		assert.Equal(t, Placeholder, WonFloat(math.NaN()))
		assert.Equal(t, Placeholder, WonFloat(math.Inf(1)))
		assert.Equal(t, Placeholder, WonFloat(0))
		assert.Equal(t, Placeholder, WonFloat(-1))
	})
}
