// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — metode & status payment
============================== */

type PaymentMethod string

const (
	PaymentMethodManual   PaymentMethod = "manual"   // dicatat admin (transfer/tunai)
	PaymentMethodMidtrans PaymentMethod = "midtrans" // snap checkout
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending" // menunggu settlement gateway
	PaymentStatusSettled PaymentStatus = "settled"
	PaymentStatusFailed  PaymentStatus = "failed"
)

/* ==============================================
   MODEL — pembayaran satu invoice
============================================== */

type PaymentModel struct {
	// PK
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	// Tenant & owner invoice
	PaymentSchoolID  uuid.UUID `gorm:"column:payment_school_id;type:uuid;not null;index" json:"payment_school_id"`
	PaymentInvoiceID uuid.UUID `gorm:"column:payment_invoice_id;type:uuid;not null;index" json:"payment_invoice_id"`

	PaymentAmount decimal.Decimal `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`
	PaymentMethod PaymentMethod   `gorm:"column:payment_method;type:varchar(20);not null;default:'manual'" json:"payment_method"`
	PaymentStatus PaymentStatus   `gorm:"column:payment_status;type:varchar(20);not null;default:'settled';index" json:"payment_status"`

	// Midtrans (hanya terisi untuk method=midtrans)
	PaymentExternalID *string `gorm:"column:payment_external_id;type:varchar(64);uniqueIndex" json:"payment_external_id,omitempty"`
	PaymentSnapToken  *string `gorm:"column:payment_snap_token;type:text" json:"payment_snap_token,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at;type:timestamptz" json:"payment_paid_at,omitempty"`
	PaymentNote   *string    `gorm:"column:payment_note;type:text" json:"payment_note,omitempty"`

	// Audit
	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;type:timestamptz;not null;default:now();index" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;type:timestamptz;not null;default:now()" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;type:timestamptz;index" json:"-"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = now
	}
	m.PaymentUpdatedAt = now
	return nil
}

func (m *PaymentModel) BeforeUpdate(tx *gorm.DB) error {
	m.PaymentUpdatedAt = time.Now()
	return nil
}
