// file: internals/features/finance/invoices/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status invoice
============================== */

type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "PENDING"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
	InvoiceStatusOverdue       InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled     InvoiceStatus = "CANCELLED"
	InvoiceStatusRefunded      InvoiceStatus = "REFUNDED"
)

/* ==============================
   ENUM — term akademik
============================== */

type InvoiceTerm string

const (
	TermFirst  InvoiceTerm = "FIRST_TERM"
	TermSecond InvoiceTerm = "SECOND_TERM"
	TermThird  InvoiceTerm = "THIRD_TERM"
)

/* ==============================================
   MODEL — header invoice
   Unique (school_id, invoice_number): penjaga terakhir
   terhadap race penomoran (lihat service.GenerateInvoiceNumber).
============================================== */

type InvoiceModel struct {
	// PK
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	// Tenant & subject
	InvoiceSchoolID  uuid.UUID `gorm:"column:invoice_school_id;type:uuid;not null;index;uniqueIndex:uniq_school_invoice_number,priority:1" json:"invoice_school_id"`
	InvoiceStudentID uuid.UUID `gorm:"column:invoice_student_id;type:uuid;not null;index" json:"invoice_student_id"`

	// Nomor "INV-{YYYY}{MM}-{NNNN}", unik per sekolah
	InvoiceNumber string `gorm:"column:invoice_number;type:varchar(20);not null;uniqueIndex:uniq_school_invoice_number,priority:2" json:"invoice_number"`

	// Periode
	InvoiceAcademicYear string      `gorm:"column:invoice_academic_year;type:varchar(9);not null;index" json:"invoice_academic_year"`
	InvoiceTerm         InvoiceTerm `gorm:"column:invoice_term;type:varchar(20);not null" json:"invoice_term"`

	// Tanggal (date-only; due >= issue dijaga di validasi)
	InvoiceIssueDate datatypes.Date `gorm:"column:invoice_issue_date;type:date;not null;index" json:"invoice_issue_date"`
	InvoiceDueDate   datatypes.Date `gorm:"column:invoice_due_date;type:date;not null" json:"invoice_due_date"`

	// Nominal fixed-point 2 digit
	InvoiceTotalAmount decimal.Decimal `gorm:"column:invoice_total_amount;type:numeric(12,2);not null" json:"invoice_total_amount"`
	InvoicePaidAmount  decimal.Decimal `gorm:"column:invoice_paid_amount;type:numeric(12,2);not null;default:0" json:"invoice_paid_amount"`

	InvoiceStatus InvoiceStatus `gorm:"column:invoice_status;type:varchar(20);not null;default:'PENDING';index" json:"invoice_status"`
	InvoiceNotes  *string       `gorm:"column:invoice_notes;type:text" json:"invoice_notes,omitempty"`

	// Line items (cascade: item hanya hidup bersama invoice-nya)
	InvoiceLineItems []InvoiceLineItemModel `gorm:"foreignKey:InvoiceLineItemInvoiceID;references:InvoiceID;constraint:OnDelete:CASCADE" json:"invoice_line_items,omitempty"`

	// Audit (invoice tidak pernah hard-delete; tidak ada endpoint delete)
	InvoiceCreatedAt time.Time `gorm:"column:invoice_created_at;type:timestamptz;not null;default:now();index" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time `gorm:"column:invoice_updated_at;type:timestamptz;not null;default:now()" json:"invoice_updated_at"`
}

func (InvoiceModel) TableName() string { return "invoices" }

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	m.InvoiceUpdatedAt = now
	if m.InvoiceStatus == "" {
		m.InvoiceStatus = InvoiceStatusPending
	}
	return nil
}

func (m *InvoiceModel) BeforeUpdate(tx *gorm.DB) error {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}

/* ==============================================
   MODEL — line item (immutable setelah create)
============================================== */

type InvoiceLineItemModel struct {
	// PK
	InvoiceLineItemID uuid.UUID `gorm:"column:invoice_line_item_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_line_item_id"`

	// Owner (cascade delete bersama invoice)
	InvoiceLineItemInvoiceID uuid.UUID `gorm:"column:invoice_line_item_invoice_id;type:uuid;not null;index" json:"invoice_line_item_invoice_id"`

	// Referensi lemah ke fee structure (nullable; SET NULL saat fee dihapus).
	// NULL berarti item custom/ad-hoc.
	InvoiceLineItemFeeStructureID *uuid.UUID `gorm:"column:invoice_line_item_fee_structure_id;type:uuid;index;constraint:OnDelete:SET NULL" json:"invoice_line_item_fee_structure_id,omitempty"`

	InvoiceLineItemDescription string `gorm:"column:invoice_line_item_description;type:text;not null" json:"invoice_line_item_description"`

	InvoiceLineItemQuantity  int             `gorm:"column:invoice_line_item_quantity;type:int;not null;default:1;check:invoice_line_item_quantity>0" json:"invoice_line_item_quantity"`
	InvoiceLineItemUnitPrice decimal.Decimal `gorm:"column:invoice_line_item_unit_price;type:numeric(12,2);not null" json:"invoice_line_item_unit_price"`

	// amount = quantity × unit_price (dihitung saat create, tidak pernah diubah)
	InvoiceLineItemAmount decimal.Decimal `gorm:"column:invoice_line_item_amount;type:numeric(12,2);not null" json:"invoice_line_item_amount"`

	InvoiceLineItemCreatedAt time.Time `gorm:"column:invoice_line_item_created_at;type:timestamptz;not null;default:now()" json:"invoice_line_item_created_at"`
}

func (InvoiceLineItemModel) TableName() string { return "invoice_line_items" }
