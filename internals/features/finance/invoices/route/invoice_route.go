// file: internals/features/finance/invoices/route/invoice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceController "sekolahku_backend/internals/features/finance/invoices/controller"
)

// InvoiceAdminRoutes dipasang di bawah group /api/a/:school_id/finance
// (sudah melewati AuthJWT, guard admin dilakukan per-handler).
func InvoiceAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &invoiceController.InvoiceHandler{DB: db}

	inv := r.Group("/invoices")
	inv.Post("/", h.CreateInvoice)
	inv.Get("/", h.ListInvoices)
	inv.Get("/:id", h.GetInvoiceByID)
}
