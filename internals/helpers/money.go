// file: internals/helpers/money.go
package helper

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Semua nominal uang dipegang sebagai decimal fixed-point 2 digit
// (hindari drift float biner pada penjumlahan currency).

// FixedAmount membulatkan ke 2 digit (bankir tidak dipakai; half-up standar).
func FixedAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatAmount: "551.00" — dua digit tetap, tanpa simbol.
func FormatAmount(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

// FormatAmountString: parse string nominal lalu format;
// input rusak ditampilkan sebagai "N/A" (bukan error).
func FormatAmountString(s string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "N/A"
	}
	return FormatAmount(d)
}

var currencySymbols = map[string]string{
	"IDR": "Rp",
	"USD": "$",
	"EUR": "€",
}

// FormatCurrency: "Rp 551.00" / "$ 25.50". Kode tak dikenal dipakai apa adanya.
func FormatCurrency(code string, d decimal.Decimal) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	sym, ok := currencySymbols[code]
	if !ok {
		sym = code
	}
	if sym == "" {
		return FormatAmount(d)
	}
	return sym + " " + FormatAmount(d)
}
