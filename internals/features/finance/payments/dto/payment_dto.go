// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sekolahku_backend/internals/features/finance/payments/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ===============================
   REQUEST DTO
=================================*/

type PaymentCreateRequest struct {
	PaymentAmount decimal.Decimal `json:"payment_amount" validate:"required"`
	PaymentNote   *string         `json:"payment_note" validate:"omitempty,max=2000"`
}

// Notifikasi HTTP dari midtrans (subset field yang kita pakai).
// gross_amount dikirim gateway sebagai string, mis. "150000.00".
type MidtransNotification struct {
	OrderID           string `json:"order_id" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
	FraudStatus       string `json:"fraud_status"`
	GrossAmount       string `json:"gross_amount"`
}

/* ===============================
   RESPONSE DTO
=================================*/

type PaymentResponse struct {
	PaymentID        uuid.UUID           `json:"payment_id"`
	PaymentInvoiceID uuid.UUID           `json:"payment_invoice_id"`
	PaymentAmount    string              `json:"payment_amount"`
	PaymentMethod    model.PaymentMethod `json:"payment_method"`
	PaymentStatus    model.PaymentStatus `json:"payment_status"`
	PaymentPaidAt    *time.Time          `json:"payment_paid_at,omitempty"`
	PaymentNote      *string             `json:"payment_note,omitempty"`
	PaymentCreatedAt time.Time           `json:"payment_created_at"`
}

type CheckoutResponse struct {
	PaymentID   uuid.UUID `json:"payment_id"`
	OrderID     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
	GrossAmount string    `json:"gross_amount"`
}

func ToPaymentResponse(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:        m.PaymentID,
		PaymentInvoiceID: m.PaymentInvoiceID,
		PaymentAmount:    helper.FormatAmount(m.PaymentAmount),
		PaymentMethod:    m.PaymentMethod,
		PaymentStatus:    m.PaymentStatus,
		PaymentPaidAt:    m.PaymentPaidAt,
		PaymentNote:      m.PaymentNote,
		PaymentCreatedAt: m.PaymentCreatedAt,
	}
}

func ToPaymentResponses(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}
