// file: internals/features/finance/fee_structures/dto/fee_structure_dto_test.go
package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/features/finance/fee_structures/model"
)

func TestFeeStructureUpdateApplyPartial(t *testing.T) {
	m := model.FeeStructureModel{
		FeeStructureName:         "SPP Bulanan",
		FeeStructureAmount:       decimal.RequireFromString("150000"),
		FeeStructureAcademicYear: "2024-2025",
		FeeStructureFrequency:    "monthly",
	}

	newAmount := decimal.RequireFromString("175000.555")
	req := FeeStructureUpdateRequest{FeeStructureAmount: &newAmount}
	req.Apply(&m)

	// hanya field non-nil yang berubah
	assert.Equal(t, "SPP Bulanan", m.FeeStructureName)
	assert.Equal(t, "2024-2025", m.FeeStructureAcademicYear)
	assert.Equal(t, "monthly", m.FeeStructureFrequency)
	// nominal dibulatkan ke 2 digit saat apply
	assert.Equal(t, "175000.56", m.FeeStructureAmount.StringFixed(2))
}

func TestFeeStructureUpdateApplyAll(t *testing.T) {
	m := model.FeeStructureModel{FeeStructureFrequency: "monthly"}

	name := "Uang Gedung"
	year := "2025-2026"
	term := "FIRST_TERM"
	freq := "one_time"
	amount := decimal.RequireFromString("5000000")

	req := FeeStructureUpdateRequest{
		FeeStructureName:         &name,
		FeeStructureAcademicYear: &year,
		FeeStructureTerm:         &term,
		FeeStructureFrequency:    &freq,
		FeeStructureAmount:       &amount,
	}
	req.Apply(&m)

	assert.Equal(t, "Uang Gedung", m.FeeStructureName)
	assert.Equal(t, "2025-2026", m.FeeStructureAcademicYear)
	assert.Equal(t, "FIRST_TERM", *m.FeeStructureTerm)
	assert.Equal(t, "one_time", m.FeeStructureFrequency)
	assert.Equal(t, "5000000.00", m.FeeStructureAmount.StringFixed(2))
}

func TestToFeeStructureResponseFormatsAmount(t *testing.T) {
	m := model.FeeStructureModel{
		FeeStructureName:   "SPP",
		FeeStructureAmount: decimal.RequireFromString("150000"),
	}
	resp := ToFeeStructureResponse(m)
	assert.Equal(t, "150000.00", resp.FeeStructureAmount)
}
