package service

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	authDTO "sekolahku_backend/internals/features/users/auth/dto"
	userModel "sekolahku_backend/internals/features/users/user/model"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
)

// Login verifies the credentials and issues a bearer token. Wrong username
// and wrong password are indistinguishable to the caller.
func Login(ctx context.Context, db *gorm.DB, req *authDTO.LoginRequest) (*authDTO.LoginResponse, error) {
	user, err := userRepo.FindUserByUsername(ctx, db, req.Username)
	if err != nil {
		if userRepo.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := SignAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &authDTO.LoginResponse{Token: token, Role: user.Role}, nil
}

// BootstrapSuperAdmin runs once at startup. Idempotent: guarded by
// ExistsByUsername, an existing password is never overwritten.
func BootstrapSuperAdmin(ctx context.Context, db *gorm.DB) error {
	exists, err := userRepo.ExistsByUsername(ctx, db, constants.SuperAdminUsername)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configs.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	superAdmin := &userModel.UserModel{
		UserName: constants.SuperAdminUsername,
		Password: string(hash),
		UserCode: constants.SuperAdminCode,
		Role:     constants.RoleSuperAdmin,
	}
	if err := userRepo.CreateUser(ctx, db, superAdmin); err != nil {
		return err
	}

	log.Printf("[BOOTSTRAP] super admin %q created", constants.SuperAdminUsername)
	return nil
}
