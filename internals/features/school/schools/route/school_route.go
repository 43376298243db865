// file: internals/features/school/schools/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "sekolahku_backend/internals/features/school/schools/controller"
)

func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &schoolController.SchoolHandler{DB: db}

	p := r.Group("/profile")
	p.Get("/", h.GetProfile)
	p.Patch("/", h.UpdateProfile)
	p.Post("/logo", h.UploadLogo)
	p.Get("/logo", h.GetLogo)
}
