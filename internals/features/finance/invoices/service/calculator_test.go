// file: internals/features/finance/invoices/service/calculator_test.go
package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeLineTotalsSingleLine(t *testing.T) {
	lines, total := ComputeLineTotals([]LineInput{
		{Quantity: 1, UnitPrice: d("150000")},
	})
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Amount.Equal(d("150000.00")))
	assert.True(t, total.Equal(d("150000.00")))
}

// 3 × 33.33 harus persis 99.99 — aritmetika float biner akan meleset.
func TestComputeLineTotalsNoFloatDrift(t *testing.T) {
	lines, total := ComputeLineTotals([]LineInput{
		{Quantity: 3, UnitPrice: d("33.33")},
	})
	require.Len(t, lines, 1)
	assert.Equal(t, "99.99", lines[0].Amount.StringFixed(2))
	assert.Equal(t, "99.99", total.StringFixed(2))
}

func TestComputeLineTotalsMultipleLines(t *testing.T) {
	// 2×100.25 + 1×50.50 + 3×100.00 = 200.50 + 50.50 + 300.00 = 551.00
	lines, total := ComputeLineTotals([]LineInput{
		{Quantity: 2, UnitPrice: d("100.25")},
		{Quantity: 1, UnitPrice: d("50.50")},
		{Quantity: 3, UnitPrice: d("100.00")},
	})
	require.Len(t, lines, 3)
	assert.Equal(t, "200.50", lines[0].Amount.StringFixed(2))
	assert.Equal(t, "50.50", lines[1].Amount.StringFixed(2))
	assert.Equal(t, "300.00", lines[2].Amount.StringFixed(2))
	assert.Equal(t, "551.00", total.StringFixed(2))
}

func TestComputeLineTotalsGrandTotalIsSumOfLineAmounts(t *testing.T) {
	lines, total := ComputeLineTotals([]LineInput{
		{Quantity: 7, UnitPrice: d("14.285")}, // 99.995 → dibulatkan per baris dulu
		{Quantity: 2, UnitPrice: d("0.01")},
	})
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Amount)
	}
	assert.True(t, total.Equal(sum), "grand total harus jumlah eksak amount per baris")
}

func TestComputeLineTotalsEmpty(t *testing.T) {
	lines, total := ComputeLineTotals(nil)
	assert.Empty(t, lines)
	assert.True(t, total.IsZero())
}
