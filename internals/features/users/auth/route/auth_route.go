package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authctrl "sekolahku_backend/internals/features/users/auth/controller"
)

// PublicAuthRoutes carries the unauthenticated surface (login only).
func PublicAuthRoutes(api fiber.Router, db *gorm.DB) {
	h := authctrl.NewAuthController(db)
	api.Post("/auth/login", h.Login)
}

// ProtectedAuthRoutes runs behind the JWT middleware.
func ProtectedAuthRoutes(api fiber.Router, db *gorm.DB) {
	h := authctrl.NewAuthController(db)
	api.Get("/auth/check-auth", h.CheckAuth)
}
