package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userctrl "sekolahku_backend/internals/features/users/user/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	h := userctrl.NewUserController(db)

	users := api.Group("/users")
	users.Get("/code/:code", h.GetUserByCode)
}
