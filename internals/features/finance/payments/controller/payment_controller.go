// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	invoiceDTO "sekolahku_backend/internals/features/finance/invoices/dto"
	dto "sekolahku_backend/internals/features/finance/payments/dto"
	"sekolahku_backend/internals/features/finance/payments/model"
	service "sekolahku_backend/internals/features/finance/payments/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type PaymentHandler struct {
	DB *gorm.DB
}

func (h *PaymentHandler) resolveScope(c *fiber.Ctx) (schoolID, invoiceID uuid.UUID, err error) {
	schoolID, err = helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err = helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	invoiceID, err = uuid.Parse(c.Params("invoice_id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, helper.JsonError(c, http.StatusBadRequest, "invalid invoice_id")
	}
	return schoolID, invoiceID, nil
}

func mapTransitionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, http.StatusNotFound, "invoice not found")
	case errors.Is(err, service.ErrAmountNotPositive),
		errors.Is(err, service.ErrOverpayment):
		return helper.JsonValidationError(c, map[string][]string{
			"payment_amount": {err.Error()},
		})
	case errors.Is(err, service.ErrInvoiceNotPayable),
		errors.Is(err, service.ErrCancelNotAllowed),
		errors.Is(err, service.ErrRefundNotAllowed):
		return helper.JsonError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("[ERR] payment transition: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
}

/* ===============================
   MANUAL PAYMENT
=================================*/

// POST /:school_id/finance/invoices/:invoice_id/payments
func (h *PaymentHandler) RecordManual(c *fiber.Ctx) error {
	schoolID, invoiceID, err := h.resolveScope(c)
	if err != nil {
		return err
	}

	var in dto.PaymentCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if errs := helper.ValidateStruct(&in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	payment, inv, err := service.RecordManualPayment(h.DB, schoolID, invoiceID, service.RecordPaymentInput{
		Amount: in.PaymentAmount,
		Note:   in.PaymentNote,
	})
	if err != nil {
		return mapTransitionError(c, err)
	}

	return helper.JsonCreated(c, "payment recorded", fiber.Map{
		"payment":        dto.ToPaymentResponse(*payment),
		"invoice_status": invoiceDTO.DeriveDisplayStatus(*inv, time.Now()),
		"paid_amount":    helper.FormatAmount(inv.InvoicePaidAmount),
	})
}

// GET /:school_id/finance/invoices/:invoice_id/payments
func (h *PaymentHandler) ListByInvoice(c *fiber.Ctx) error {
	schoolID, invoiceID, err := h.resolveScope(c)
	if err != nil {
		return err
	}

	var list []model.PaymentModel
	if err := h.DB.
		Where("payment_school_id = ? AND payment_invoice_id = ?", schoolID, invoiceID).
		Order("payment_created_at ASC").
		Find(&list).Error; err != nil {
		log.Printf("[ERR] list payments invoice=%s: %v", invoiceID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	return helper.JsonOK(c, "payments", dto.ToPaymentResponses(list))
}

/* ===============================
   STATUS TRANSITIONS
=================================*/

// POST /:school_id/finance/invoices/:invoice_id/cancel
func (h *PaymentHandler) CancelInvoice(c *fiber.Ctx) error {
	schoolID, invoiceID, err := h.resolveScope(c)
	if err != nil {
		return err
	}
	inv, err := service.CancelInvoiceTx(h.DB, schoolID, invoiceID)
	if err != nil {
		return mapTransitionError(c, err)
	}
	return helper.JsonUpdated(c, "invoice cancelled", fiber.Map{
		"invoice_id":     inv.InvoiceID,
		"invoice_status": inv.InvoiceStatus,
	})
}

// POST /:school_id/finance/invoices/:invoice_id/refund
func (h *PaymentHandler) RefundInvoice(c *fiber.Ctx) error {
	schoolID, invoiceID, err := h.resolveScope(c)
	if err != nil {
		return err
	}
	inv, err := service.RefundInvoiceTx(h.DB, schoolID, invoiceID)
	if err != nil {
		return mapTransitionError(c, err)
	}
	return helper.JsonUpdated(c, "invoice refunded", fiber.Map{
		"invoice_id":     inv.InvoiceID,
		"invoice_status": inv.InvoiceStatus,
	})
}

/* ===============================
   MIDTRANS CHECKOUT + WEBHOOK
=================================*/

// POST /:school_id/finance/invoices/:invoice_id/checkout
// Buat payment pending sebesar sisa tagihan + snap token untuk dibayar online.
func (h *PaymentHandler) Checkout(c *fiber.Ctx) error {
	schoolID, invoiceID, err := h.resolveScope(c)
	if err != nil {
		return err
	}
	if !service.MidtransEnabled() {
		return helper.JsonError(c, http.StatusServiceUnavailable, "checkout online belum dikonfigurasi")
	}

	checkout, err := service.CreateCheckout(h.DB, schoolID, invoiceID)
	if err != nil {
		return mapTransitionError(c, err)
	}
	return helper.JsonCreated(c, "checkout created", checkout)
}

// POST /api/payments/midtrans/notification (publik, dipanggil gateway)
func (h *PaymentHandler) MidtransNotification(c *fiber.Ctx) error {
	var in dto.MidtransNotification
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if errs := helper.ValidateStruct(&in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	switch in.TransactionStatus {
	case "capture", "settlement":
		if in.FraudStatus == "challenge" || in.FraudStatus == "deny" {
			return helper.JsonOK(c, "notification ignored (fraud review)", nil)
		}
		if _, err := service.SettleMidtransPayment(h.DB, in.OrderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, http.StatusNotFound, "payment not found")
			}
			log.Printf("[ERR] settle midtrans order=%s: %v", in.OrderID, err)
			return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
		}
		// gross_amount string dari gateway; rusak → "N/A", jangan gagalkan settle
		log.Printf("✅ midtrans settled order=%s gross=%s", in.OrderID, helper.FormatAmountString(in.GrossAmount))
	case "deny", "cancel", "expire", "failure":
		if err := service.FailMidtransPayment(h.DB, in.OrderID); err != nil {
			log.Printf("[ERR] fail midtrans order=%s: %v", in.OrderID, err)
			return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
		}
	default:
		// pending dll: tidak ada yang perlu diubah
	}
	return helper.JsonOK(c, "notification processed", nil)
}
