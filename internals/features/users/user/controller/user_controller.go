package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
	helper "sekolahku_backend/internals/helpers"
	authz "sekolahku_backend/internals/helpers/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users/code/:code
func (ctl *UserController) GetUserByCode(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RoleSuperAdmin); err != nil {
		return err
	}

	user, err := userRepo.FindUserByCode(c.UserContext(), ctl.DB, c.Params("code"))
	if err != nil {
		if userRepo.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}

	return helper.Success(c, "OK", user)
}
