package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "sekolahku_backend/internals/features/users/auth/dto"
	authService "sekolahku_backend/internals/features/users/auth/service"
	helper "sekolahku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := authService.Login(c.UserContext(), ctl.DB, &req)
	if err != nil {
		return err
	}
	return helper.Success(c, "Login successful", resp)
}

// GET /api/auth/check-auth
func (ctl *AuthController) CheckAuth(c *fiber.Ctx) error {
	username := helper.GetUsernameFromLocals(c)
	if username == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.Success(c, "OK", authDTO.CheckAuthResponse{
		Username: username,
		Role:     helper.GetRoleFromLocals(c),
	})
}
