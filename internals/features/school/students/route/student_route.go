// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "sekolahku_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &studentController.StudentHandler{DB: db}

	st := r.Group("/students")
	st.Post("/", h.Create)
	st.Get("/", h.List)
	st.Get("/:id", h.GetByID)
	st.Patch("/:id", h.Update)
	st.Delete("/:id", h.Delete)
}
