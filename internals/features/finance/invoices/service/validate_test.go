// file: internals/features/finance/invoices/service/validate_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "sekolahku_backend/internals/features/finance/invoices/dto"
)

func validCreateRequest() *dto.InvoiceCreateRequest {
	return &dto.InvoiceCreateRequest{
		StudentID:    uuid.New(),
		AcademicYear: "2024-2025",
		Term:         "FIRST_TERM",
		IssueDate:    "2024-09-01",
		DueDate:      "2024-09-30",
		LineItems: []dto.InvoiceLineItemRequest{
			{Description: "SPP September", UnitPrice: d("150000")},
		},
	}
}

func TestValidateCreateOK(t *testing.T) {
	in, errs := ValidateCreate(validCreateRequest())
	require.Nil(t, errs)
	require.NotNil(t, in)

	assert.Equal(t, "2024-2025", in.AcademicYear)
	require.Len(t, in.Lines, 1)
	assert.Equal(t, 1, in.Lines[0].Quantity, "quantity kosong harus default 1")
	assert.Equal(t, "SPP September", in.Lines[0].Description)
}

func TestValidateCreateDueBeforeIssue(t *testing.T) {
	req := validCreateRequest()
	req.IssueDate = "2024-09-30"
	req.DueDate = "2024-09-01"

	in, errs := ValidateCreate(req)
	assert.Nil(t, in)
	require.NotNil(t, errs)
	// error lintas-field nempel di due_date, bukan form-level
	assert.Contains(t, errs, "due_date")
	assert.NotContains(t, errs, "issue_date")
}

func TestValidateCreateAcademicYear(t *testing.T) {
	tests := []struct {
		name string
		year string
		ok   bool
	}{
		{"berurutan valid", "2024-2025", true},
		{"tidak berurutan", "2024-2026", false},
		{"terbalik", "2025-2024", false},
		{"format salah", "2024/2025", false},
		{"terlalu pendek", "24-25", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			req.AcademicYear = tc.year
			_, errs := ValidateCreate(req)
			if tc.ok {
				assert.NotContains(t, errs, "academic_year")
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs, "academic_year")
			}
		})
	}
}

func TestValidateCreateLineItemErrors(t *testing.T) {
	zero := 0
	neg := -2
	req := validCreateRequest()
	req.LineItems = []dto.InvoiceLineItemRequest{
		{Description: "SPP", Quantity: &zero, UnitPrice: d("1000")},
		{Description: "", UnitPrice: d("1000")},
		{Description: "Seragam", Quantity: &neg, UnitPrice: decimal.Zero},
	}

	_, errs := ValidateCreate(req)
	require.NotNil(t, errs)

	// key per-item supaya form bisa highlight baris yang salah
	assert.Contains(t, errs, "line_items[0].quantity")
	assert.Contains(t, errs, "line_items[1].description")
	assert.Contains(t, errs, "line_items[2].quantity")
	assert.Contains(t, errs, "line_items[2].unit_price")
}

func TestValidateCreateCollectsAllViolations(t *testing.T) {
	req := validCreateRequest()
	req.AcademicYear = "2024-2026"
	req.IssueDate = "2024-09-30"
	req.DueDate = "2024-09-01"
	zero := 0
	req.LineItems[0].Quantity = &zero

	_, errs := ValidateCreate(req)
	require.NotNil(t, errs)
	// bukan fail-fast: ketiga pelanggaran muncul sekaligus
	assert.Contains(t, errs, "academic_year")
	assert.Contains(t, errs, "due_date")
	assert.Contains(t, errs, "line_items[0].quantity")
}

func TestValidateCreateMissingRequired(t *testing.T) {
	_, errs := ValidateCreate(&dto.InvoiceCreateRequest{})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "student_id")
	assert.Contains(t, errs, "academic_year")
	assert.Contains(t, errs, "term")
	assert.Contains(t, errs, "line_items")
}

func TestValidateCreateBadDates(t *testing.T) {
	req := validCreateRequest()
	req.IssueDate = "01-09-2024"
	req.DueDate = "bukan tanggal"

	_, errs := ValidateCreate(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "issue_date")
	assert.Contains(t, errs, "due_date")
}
