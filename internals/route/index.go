// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	feeRoute "sekolahku_backend/internals/features/finance/fee_structures/route"
	invoiceRoute "sekolahku_backend/internals/features/finance/invoices/route"
	paymentRoute "sekolahku_backend/internals/features/finance/payments/route"
	schoolRoute "sekolahku_backend/internals/features/school/schools/route"
	studentRoute "sekolahku_backend/internals/features/school/students/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	// ---- PUBLIK ----
	authRoute.AuthRoutes(api, db)        // /api/auth/*
	paymentRoute.PaymentWebhookRoutes(api, db) // /api/payments/midtrans/notification

	// ---- PROTECTED (Bearer JWT) ----
	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	protected := api.Group("", jwt)
	authRoute.AuthProtectedRoutes(protected, db) // /api/auth/me

	// ---- ADMIN per-tenant: /api/a/:school_id/* ----
	admin := api.Group("/a/:school_id", jwt)

	schoolRoute.SchoolAdminRoutes(admin, db)   // /profile
	studentRoute.StudentAdminRoutes(admin, db) // /students

	finance := admin.Group("/finance")
	feeRoute.FeeStructureAdminRoutes(finance, db) // /fee-structures
	invoiceRoute.InvoiceAdminRoutes(finance, db)  // /invoices
	paymentRoute.PaymentAdminRoutes(finance, db)  // /invoices/:invoice_id/{payments,checkout,cancel,refund}
}
