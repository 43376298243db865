// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "sekolahku_backend/internals/features/finance/payments/controller"
)

// PaymentAdminRoutes menempel di group /api/a/:school_id/finance
// (operasi per-invoice: record/list payment + transisi status + checkout).
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &paymentController.PaymentHandler{DB: db}

	inv := r.Group("/invoices/:invoice_id")
	inv.Post("/payments", h.RecordManual)
	inv.Get("/payments", h.ListByInvoice)
	inv.Post("/checkout", h.Checkout)
	inv.Post("/cancel", h.CancelInvoice)
	inv.Post("/refund", h.RefundInvoice)
}

// PaymentWebhookRoutes: endpoint publik untuk notifikasi gateway.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	h := &paymentController.PaymentHandler{DB: db}
	r.Post("/payments/midtrans/notification", h.MidtransNotification)
}
