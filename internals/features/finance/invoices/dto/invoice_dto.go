// file: internals/features/finance/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	invoiceModel "sekolahku_backend/internals/features/finance/invoices/model"
	helper "sekolahku_backend/internals/helpers"
)

////////////////////////////////////////////////////////////////////////////////
// INVOICES — DTO
////////////////////////////////////////////////////////////////////////////////

// Create (satu invoice + semua line item sekaligus; atomik)
type InvoiceLineItemRequest struct {
	FeeStructureID *uuid.UUID      `json:"fee_structure_id,omitempty"`
	Description    string          `json:"description" validate:"required"`
	Quantity       *int            `json:"quantity,omitempty"` // kosong = 1; harus bulat positif
	UnitPrice      decimal.Decimal `json:"unit_price"`         // harus positif
}

type InvoiceCreateRequest struct {
	StudentID    uuid.UUID                `json:"student_id" validate:"required"`
	AcademicYear string                   `json:"academic_year" validate:"required"`
	Term         string                   `json:"term" validate:"required,oneof=FIRST_TERM SECOND_TERM THIRD_TERM"`
	IssueDate    string                   `json:"issue_date" validate:"required"` // ISO-8601 date
	DueDate      string                   `json:"due_date" validate:"required"`
	Notes        *string                  `json:"notes,omitempty"`
	LineItems    []InvoiceLineItemRequest `json:"line_items" validate:"required,min=1,dive"`
}

// Proyeksi minimal siswa untuk konfirmasi
type StudentProjection struct {
	StudentID       uuid.UUID `json:"student_id"`
	StudentNIS      string    `json:"student_nis"`
	StudentFullName string    `json:"student_full_name"`
}

// Response line item
type InvoiceLineItemResponse struct {
	InvoiceLineItemID uuid.UUID  `json:"invoice_line_item_id"`
	FeeStructureID    *uuid.UUID `json:"fee_structure_id,omitempty"`
	Description       string     `json:"description"`
	Quantity          int        `json:"quantity"`
	UnitPrice         string     `json:"unit_price"`
	Amount            string     `json:"amount"`
}

// Response invoice (list & detail)
type InvoiceResponse struct {
	InvoiceID     uuid.UUID `json:"invoice_id"`
	SchoolID      uuid.UUID `json:"school_id"`
	InvoiceNumber string    `json:"invoice_number"`

	Student *StudentProjection `json:"student,omitempty"`

	AcademicYear string `json:"academic_year"`
	Term         string `json:"term"`

	IssueDate string `json:"issue_date"` // "2006-01-02"
	DueDate   string `json:"due_date"`

	TotalAmount string `json:"total_amount"` // fixed 2 digit
	PaidAmount  string `json:"paid_amount"`

	// Display-ready (Presentation Adapter)
	TotalAmountDisplay string      `json:"total_amount_display"` // dengan simbol currency
	Status             string      `json:"status"`
	StatusBadge        StatusBadge `json:"status_badge"`

	Notes *string `json:"notes,omitempty"`

	LineItems []InvoiceLineItemResponse `json:"line_items"`

	CreatedAt time.Time `json:"created_at"`
}

////////////////////////////////////////////////////////////////////////////////
// PRESENTATION ADAPTER — status badge & formatting
////////////////////////////////////////////////////////////////////////////////

type StatusBadge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusBadges = map[invoiceModel.InvoiceStatus]StatusBadge{
	invoiceModel.InvoiceStatusPending:       {Label: "Menunggu", Color: "yellow"},
	invoiceModel.InvoiceStatusPartiallyPaid: {Label: "Dibayar Sebagian", Color: "blue"},
	invoiceModel.InvoiceStatusPaid:          {Label: "Lunas", Color: "green"},
	invoiceModel.InvoiceStatusOverdue:       {Label: "Terlambat", Color: "red"},
	invoiceModel.InvoiceStatusCancelled:     {Label: "Dibatalkan", Color: "gray"},
	invoiceModel.InvoiceStatusRefunded:      {Label: "Dikembalikan", Color: "purple"},
}

// BadgeForStatus: status tidak dikenal ditampilkan "N/A" (bukan error).
func BadgeForStatus(s invoiceModel.InvoiceStatus) StatusBadge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return StatusBadge{Label: "N/A", Color: "gray"}
}

// FormatDate: tanggal simpanan → tampilan "2006-01-02"; zero value → "N/A".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("2006-01-02")
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model → Response
////////////////////////////////////////////////////////////////////////////////

func ToInvoiceLineItemResponse(m invoiceModel.InvoiceLineItemModel) InvoiceLineItemResponse {
	return InvoiceLineItemResponse{
		InvoiceLineItemID: m.InvoiceLineItemID,
		FeeStructureID:    m.InvoiceLineItemFeeStructureID,
		Description:       m.InvoiceLineItemDescription,
		Quantity:          m.InvoiceLineItemQuantity,
		UnitPrice:         helper.FormatAmount(m.InvoiceLineItemUnitPrice),
		Amount:            helper.FormatAmount(m.InvoiceLineItemAmount),
	}
}

// ToInvoiceResponse: currency = kode mata uang sekolah (untuk display),
// student boleh nil (list tanpa preload projection).
func ToInvoiceResponse(m invoiceModel.InvoiceModel, student *StudentProjection, currency string) InvoiceResponse {
	items := make([]InvoiceLineItemResponse, 0, len(m.InvoiceLineItems))
	for _, it := range m.InvoiceLineItems {
		items = append(items, ToInvoiceLineItemResponse(it))
	}

	// status OVERDUE diturunkan saat baca: due lewat & belum lunas/batal
	status := DeriveDisplayStatus(m, time.Now())

	return InvoiceResponse{
		InvoiceID:     m.InvoiceID,
		SchoolID:      m.InvoiceSchoolID,
		InvoiceNumber: m.InvoiceNumber,
		Student:       student,
		AcademicYear:  m.InvoiceAcademicYear,
		Term:          string(m.InvoiceTerm),
		IssueDate:     FormatDate(time.Time(m.InvoiceIssueDate)),
		DueDate:       FormatDate(time.Time(m.InvoiceDueDate)),

		TotalAmount:        helper.FormatAmount(m.InvoiceTotalAmount),
		PaidAmount:         helper.FormatAmount(m.InvoicePaidAmount),
		TotalAmountDisplay: helper.FormatCurrency(currency, m.InvoiceTotalAmount),

		Status:      string(status),
		StatusBadge: BadgeForStatus(status),

		Notes:     m.InvoiceNotes,
		LineItems: items,
		CreatedAt: m.InvoiceCreatedAt,
	}
}

// DeriveDisplayStatus: OVERDUE hanya status tampilan — baris tetap
// PENDING/PARTIALLY_PAID di storage sampai pembayaran mengubahnya.
func DeriveDisplayStatus(m invoiceModel.InvoiceModel, now time.Time) invoiceModel.InvoiceStatus {
	switch m.InvoiceStatus {
	case invoiceModel.InvoiceStatusPending, invoiceModel.InvoiceStatusPartiallyPaid:
		due := time.Time(m.InvoiceDueDate)
		if !due.IsZero() && dueBeforeDay(due, now) {
			return invoiceModel.InvoiceStatusOverdue
		}
	}
	return m.InvoiceStatus
}

// dueBeforeDay membandingkan komponen tanggal, dengan "hari ini" diambil
// di lokasi `now` (zona deployment). Truncate epoch UTC bisa meleset
// beberapa jam untuk server non-UTC (mis. WIB).
func dueBeforeDay(due, now time.Time) bool {
	dy, dm, dd := due.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy < ny
	}
	if dm != nm {
		return dm < nm
	}
	return dd < nd
}

func ToInvoiceResponses(list []invoiceModel.InvoiceModel, students map[uuid.UUID]StudentProjection, currency string) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, m := range list {
		var sp *StudentProjection
		if s, ok := students[m.InvoiceStudentID]; ok {
			cp := s
			sp = &cp
		}
		out = append(out, ToInvoiceResponse(m, sp, currency))
	}
	return out
}
