// file: internals/features/finance/invoices/service/calculator.go
package service

import (
	"github.com/shopspring/decimal"
)

/* =======================================================
   KALKULATOR LINE ITEM — murni, tanpa side effect.
   Semua aritmetika pakai decimal (bukan float biner):
   3 × 33.33 harus persis 99.99.
======================================================= */

type LineInput struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

type LineTotal struct {
	Quantity  int
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal // quantity × unit_price, 2 digit
}

// ComputeLineTotals: amount per baris + grand total sebagai jumlah eksak
// amount-amount tsb (bukan re-derive terpisah).
func ComputeLineTotals(items []LineInput) ([]LineTotal, decimal.Decimal) {
	out := make([]LineTotal, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		amount := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2)
		out = append(out, LineTotal{
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.Round(2),
			Amount:    amount,
		})
		total = total.Add(amount)
	}
	return out, total.Round(2)
}
