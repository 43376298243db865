// file: internals/features/finance/fee_structures/route/fee_structure_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "sekolahku_backend/internals/features/finance/fee_structures/controller"
)

func FeeStructureAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &feeController.FeeStructureHandler{DB: db}

	fee := r.Group("/fee-structures")
	fee.Post("/", h.Create)
	fee.Get("/", h.List)
	fee.Get("/:id", h.GetByID)
	fee.Patch("/:id", h.Update)
	fee.Delete("/:id", h.Delete)
}
