// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik (dengan rate limiter login).
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	h := &authController.AuthHandler{DB: db}

	auth := r.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	auth.Post("/login/google", middlewares.LoginRateLimiter(), h.GoogleLogin)
	auth.Post("/refresh", h.Refresh)
}

// AuthProtectedRoutes: endpoint self-service di belakang AuthJWT.
func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	h := &authController.AuthHandler{DB: db}
	r.Get("/auth/me", h.Me)
}
