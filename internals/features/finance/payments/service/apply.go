// file: internals/features/finance/payments/service/apply.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	invoiceModel "sekolahku_backend/internals/features/finance/invoices/model"
	"sekolahku_backend/internals/features/finance/payments/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ==============================================
   STATE MACHINE — transisi status invoice
   PENDING/PARTIALLY_PAID --bayar--> PARTIALLY_PAID/PAID
   PENDING (belum ada bayaran)  --> CANCELLED
   PAID                         --> REFUNDED
   Overpayment selalu ditolak.
============================================== */

var (
	ErrInvoiceNotPayable = errors.New("invoice tidak bisa menerima pembayaran pada status ini")
	ErrOverpayment       = errors.New("nominal pembayaran melebihi sisa tagihan")
	ErrAmountNotPositive = errors.New("nominal pembayaran harus lebih dari 0")
	ErrCancelNotAllowed  = errors.New("invoice hanya bisa dibatalkan sebelum ada pembayaran")
	ErrRefundNotAllowed  = errors.New("hanya invoice PAID yang bisa di-refund")
)

// ApplyPayment memutasi invoice secara murni (tanpa DB):
// tambah paid_amount, lalu derive status PAID / PARTIALLY_PAID.
func ApplyPayment(inv *invoiceModel.InvoiceModel, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrAmountNotPositive
	}
	switch inv.InvoiceStatus {
	case invoiceModel.InvoiceStatusPending, invoiceModel.InvoiceStatusPartiallyPaid:
	default:
		return fmt.Errorf("%w (status=%s)", ErrInvoiceNotPayable, inv.InvoiceStatus)
	}

	amount = helper.FixedAmount(amount)
	remaining := inv.InvoiceTotalAmount.Sub(inv.InvoicePaidAmount)
	if amount.GreaterThan(remaining) {
		return ErrOverpayment
	}

	inv.InvoicePaidAmount = inv.InvoicePaidAmount.Add(amount)
	if inv.InvoicePaidAmount.Equal(inv.InvoiceTotalAmount) {
		inv.InvoiceStatus = invoiceModel.InvoiceStatusPaid
	} else {
		inv.InvoiceStatus = invoiceModel.InvoiceStatusPartiallyPaid
	}
	return nil
}

func CancelInvoice(inv *invoiceModel.InvoiceModel) error {
	if inv.InvoiceStatus != invoiceModel.InvoiceStatusPending || inv.InvoicePaidAmount.Sign() != 0 {
		return ErrCancelNotAllowed
	}
	inv.InvoiceStatus = invoiceModel.InvoiceStatusCancelled
	return nil
}

func RefundInvoice(inv *invoiceModel.InvoiceModel) error {
	if inv.InvoiceStatus != invoiceModel.InvoiceStatusPaid {
		return ErrRefundNotAllowed
	}
	inv.InvoiceStatus = invoiceModel.InvoiceStatusRefunded
	return nil
}

/* ==============================================
   TRANSAKSI — lock invoice FOR UPDATE lalu mutasi
============================================== */

// lockInvoice mengambil invoice milik tenant dengan row lock,
// supaya dua pembayaran bersamaan tidak dobel-apply.
func lockInvoice(tx *gorm.DB, schoolID, invoiceID uuid.UUID) (*invoiceModel.InvoiceModel, error) {
	var inv invoiceModel.InvoiceModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&inv, "invoice_id = ? AND invoice_school_id = ?", invoiceID, schoolID).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

type RecordPaymentInput struct {
	Amount decimal.Decimal
	Note   *string
}

// RecordManualPayment mencatat pembayaran manual (transfer/tunai) dan
// menggeser status invoice dalam satu transaksi.
func RecordManualPayment(db *gorm.DB, schoolID, invoiceID uuid.UUID, in RecordPaymentInput) (*model.PaymentModel, *invoiceModel.InvoiceModel, error) {
	var (
		payment model.PaymentModel
		invOut  *invoiceModel.InvoiceModel
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(tx, schoolID, invoiceID)
		if err != nil {
			return err
		}
		if err := ApplyPayment(inv, in.Amount); err != nil {
			return err
		}

		now := time.Now()
		payment = model.PaymentModel{
			PaymentSchoolID:  schoolID,
			PaymentInvoiceID: inv.InvoiceID,
			PaymentAmount:    helper.FixedAmount(in.Amount),
			PaymentMethod:    model.PaymentMethodManual,
			PaymentStatus:    model.PaymentStatusSettled,
			PaymentPaidAt:    &now,
			PaymentNote:      in.Note,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		if err := tx.Save(inv).Error; err != nil {
			return err
		}
		invOut = inv
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &payment, invOut, nil
}

// SettleMidtransPayment dipanggil dari webhook notifikasi: tandai payment
// settled dan apply nominalnya ke invoice.
func SettleMidtransPayment(db *gorm.DB, externalID string) (*model.PaymentModel, error) {
	var payment model.PaymentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, "payment_external_id = ?", externalID).Error; err != nil {
			return err
		}
		if payment.PaymentStatus != model.PaymentStatusPending {
			// notifikasi ulang dari gateway; sudah final, jangan dobel-apply
			return nil
		}

		inv, err := lockInvoice(tx, payment.PaymentSchoolID, payment.PaymentInvoiceID)
		if err != nil {
			return err
		}
		if err := ApplyPayment(inv, payment.PaymentAmount); err != nil {
			return err
		}

		now := time.Now()
		payment.PaymentStatus = model.PaymentStatusSettled
		payment.PaymentPaidAt = &now
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}
		return tx.Save(inv).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// FailMidtransPayment menandai payment pending sebagai failed (expire/deny).
func FailMidtransPayment(db *gorm.DB, externalID string) error {
	return db.Model(&model.PaymentModel{}).
		Where("payment_external_id = ? AND payment_status = ?", externalID, model.PaymentStatusPending).
		Update("payment_status", model.PaymentStatusFailed).Error
}

// CancelInvoiceTx / RefundInvoiceTx: transisi status murni, dibungkus lock.
func CancelInvoiceTx(db *gorm.DB, schoolID, invoiceID uuid.UUID) (*invoiceModel.InvoiceModel, error) {
	return transitionInvoice(db, schoolID, invoiceID, CancelInvoice)
}

func RefundInvoiceTx(db *gorm.DB, schoolID, invoiceID uuid.UUID) (*invoiceModel.InvoiceModel, error) {
	return transitionInvoice(db, schoolID, invoiceID, RefundInvoice)
}

func transitionInvoice(db *gorm.DB, schoolID, invoiceID uuid.UUID, fn func(*invoiceModel.InvoiceModel) error) (*invoiceModel.InvoiceModel, error) {
	var invOut *invoiceModel.InvoiceModel
	err := db.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(tx, schoolID, invoiceID)
		if err != nil {
			return err
		}
		if err := fn(inv); err != nil {
			return err
		}
		if err := tx.Save(inv).Error; err != nil {
			return err
		}
		invOut = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invOut, nil
}
