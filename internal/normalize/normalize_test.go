package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"15000", "15000"},
		{"15,000", "15000"},
		{"₩ 1,234원", "1234"},
		{"-12.5e3", "1253"},
		{"abc", ""},
		{"٣٤", ""},
		{"００７", ""},
		{" 0042 ", "0042"},
	}
	for _, tc := range cases {
		t.Run("Should keep only ascii digits of "+tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.in))
		})
	}

	t.Run("Should be idempotent", func(t *testing.T) {
		for _, tc := range cases {
			once := Sanitize(tc.in)
			assert.Equal(t, once, Sanitize(once))
		}
	})

	t.Run("Should leave clean digit strings unchanged", func(t *testing.T) {
		for _, d := range []string{"0", "1", "0001", "9876543210", "123456789012345678901234567890"} {
			assert.Equal(t, d, Sanitize(d))
		}
	})
}

func TestFormatForDisplay(t *testing.T) {
	t.Run("Should return empty string for empty input", func(t *testing.T) {
		assert.Equal(t, "", FormatForDisplay(""))
		assert.Equal(t, "", FormatForDisplay(",,"))
	})

	t.Run("Should group thousands", func(t *testing.T) {
		assert.Equal(t, "15,000", FormatForDisplay("15000"))
		assert.Equal(t, "999", FormatForDisplay("999"))
		assert.Equal(t, "1,000,000", FormatForDisplay("1000000"))
	})

	t.Run("Should drop leading zeros like a numeric parse", func(t *testing.T) {
		assert.Equal(t, "42", FormatForDisplay("0042"))
		assert.Equal(t, "0", FormatForDisplay("000"))
	})

	t.Run("Should not panic past the integer range", func(t *testing.T) {
		assert.NotPanics(t, func() {
			out := FormatForDisplay("123456789012345678901234567890")
			assert.NotEmpty(t, out)
		})
	})
}

func TestField(t *testing.T) {
	t.Run("Should store digits and display grouped", func(t *testing.T) {
		f := NewField("15,000원")
		assert.Equal(t, "15000", f.Digits())
		assert.Equal(t, "15,000", f.Display())
		assert.False(t, f.Empty())
	})

	t.Run("Should survive a display round trip", func(t *testing.T) {
		f := NewField("1234567")
		again := NewField(f.Display())
		assert.Equal(t, f, again)
	})

	t.Run("Should treat blank input as empty", func(t *testing.T) {
		assert.True(t, NewField("원").Empty())
		assert.Equal(t, "", NewField("").Display())
	})
}
