// file: internals/helpers/money_test.go
package helper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"551", "551.00"},
		{"551.0", "551.00"},
		{"551.005", "551.01"}, // half-up
		{"0", "0.00"},
		{"-12.5", "-12.50"},
	}
	for _, tc := range tests {
		d := decimal.RequireFromString(tc.in)
		assert.Equal(t, tc.want, FormatAmount(d), "input %s", tc.in)
	}
}

// Format dua kali harus idempoten: format(parse(format(x))) == format(x).
func TestFormatAmountStringIdempotent(t *testing.T) {
	once := FormatAmountString("551")
	twice := FormatAmountString(once)
	assert.Equal(t, once, twice)
	assert.Equal(t, "551.00", twice)
}

func TestFormatAmountStringMalformed(t *testing.T) {
	assert.Equal(t, "N/A", FormatAmountString("abc"))
	assert.Equal(t, "N/A", FormatAmountString(""))
	assert.Equal(t, "N/A", FormatAmountString("12,34"))
}

func TestFormatCurrency(t *testing.T) {
	d := decimal.RequireFromString("551")
	assert.Equal(t, "Rp 551.00", FormatCurrency("IDR", d))
	assert.Equal(t, "$ 551.00", FormatCurrency("USD", d))
	assert.Equal(t, "XYZ 551.00", FormatCurrency("xyz", d), "kode tak dikenal dipakai apa adanya")
}
