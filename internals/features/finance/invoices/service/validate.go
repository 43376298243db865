// file: internals/features/finance/invoices/service/validate.go
package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dto "sekolahku_backend/internals/features/finance/invoices/dto"
	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   VALIDASI CREATE INVOICE — murni, tanpa side effect.
   SEMUA pelanggaran dikumpulkan sekaligus (bukan fail-fast)
   supaya form bisa highlight tiap input.
======================================================= */

var academicYearRe = regexp.MustCompile(`^\d{4}-\d{4}$`)

const dateLayout = "2006-01-02"

// CreateInput: hasil normalisasi request yang sudah lolos validasi.
type CreateInput struct {
	StudentID    uuid.UUID
	AcademicYear string
	Term         string
	IssueDate    time.Time
	DueDate      time.Time
	Notes        *string
	Lines        []CreateLineInput
}

type CreateLineInput struct {
	FeeStructureID *uuid.UUID
	Description    string
	Quantity       int // sudah di-default 1 kalau kosong
	UnitPrice      decimal.Decimal
}

// ValidateCreate: tag validator dulu, lalu aturan lintas-field.
// Return (input ternormalisasi, nil) atau (nil, map field → pesan).
func ValidateCreate(in *dto.InvoiceCreateRequest) (*CreateInput, map[string][]string) {
	errs := helper.ValidateStruct(in)
	if errs == nil {
		errs = map[string][]string{}
	}
	addErr := func(field, msg string) { errs[field] = append(errs[field], msg) }

	// academic_year: "YYYY-YYYY" dan tahun kedua = tahun pertama + 1
	ay := strings.TrimSpace(in.AcademicYear)
	if ay != "" {
		if !academicYearRe.MatchString(ay) {
			addErr("academic_year", "format harus YYYY-YYYY")
		} else {
			first, _ := strconv.Atoi(ay[:4])
			second, _ := strconv.Atoi(ay[5:])
			if second != first+1 {
				addErr("academic_year", "tahun harus berurutan (mis. 2024-2025)")
			}
		}
	}

	// tanggal
	var issue, due time.Time
	if s := strings.TrimSpace(in.IssueDate); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			addErr("issue_date", "tanggal tidak valid (pakai YYYY-MM-DD)")
		} else {
			issue = t
		}
	}
	if s := strings.TrimSpace(in.DueDate); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			addErr("due_date", "tanggal tidak valid (pakai YYYY-MM-DD)")
		} else {
			due = t
		}
	}
	// cross-field: due >= issue — error nempel di due_date (bukan form-level)
	if !issue.IsZero() && !due.IsZero() && due.Before(issue) {
		addErr("due_date", "jatuh tempo harus pada/atau setelah tanggal terbit")
	}

	// line items
	lines := make([]CreateLineInput, 0, len(in.LineItems))
	for i, li := range in.LineItems {
		key := func(f string) string { return fmt.Sprintf("line_items[%d].%s", i, f) }

		qty := 1 // default saat kosong
		if li.Quantity != nil {
			qty = *li.Quantity
			if qty <= 0 {
				addErr(key("quantity"), "harus bilangan bulat positif")
			}
		}
		if strings.TrimSpace(li.Description) == "" {
			addErr(key("description"), "wajib diisi")
		}
		if li.UnitPrice.LessThanOrEqual(decimal.Zero) {
			addErr(key("unit_price"), "harus lebih besar dari 0")
		}

		lines = append(lines, CreateLineInput{
			FeeStructureID: li.FeeStructureID,
			Description:    strings.TrimSpace(li.Description),
			Quantity:       qty,
			UnitPrice:      li.UnitPrice,
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &CreateInput{
		StudentID:    in.StudentID,
		AcademicYear: ay,
		Term:         in.Term,
		IssueDate:    issue,
		DueDate:      due,
		Notes:        in.Notes,
		Lines:        lines,
	}, nil
}
