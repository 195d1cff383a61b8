package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
	helper "sekolahku_backend/internals/helpers"
)

// Tenancy resolver: the single source of truth for "which school am I in".
//
//   - PRINCIPAL → the school whose principal is this user.
//   - TEACHER   → the teacher row linked via user_code == teacher_number,
//     then its school. The by-code convention is deliberate: tokens carry
//     usernames and the linkage is observable in stored data.
//   - SUPER_ADMIN → no implicit school; those operations must name one.

// SchoolForUsername resolves the tenant school for an authenticated user.
func SchoolForUsername(ctx context.Context, db *gorm.DB, username string) (*schoolModel.SchoolModel, error) {
	user, err := userRepo.FindUserByUsername(ctx, db, username)
	if err != nil {
		if userRepo.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}

	switch user.Role {
	case constants.RolePrincipal:
		var school schoolModel.SchoolModel
		err := db.WithContext(ctx).
			Where("school_principal_user_id = ?", user.UserID).
			First(&school).Error
		if err != nil {
			if userRepo.IsNotFound(err) {
				return nil, fiber.NewError(fiber.StatusNotFound, "School not found for principal")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load school")
		}
		return &school, nil

	case constants.RoleTeacher:
		var school schoolModel.SchoolModel
		err := db.WithContext(ctx).
			Joins("JOIN teachers ON teachers.teacher_school_id = schools.school_id").
			Where("teachers.teacher_number = ?", user.UserCode).
			First(&school).Error
		if err != nil {
			if userRepo.IsNotFound(err) {
				return nil, fiber.NewError(fiber.StatusNotFound, "School not found for teacher")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load school")
		}
		return &school, nil

	default:
		return nil, fiber.NewError(fiber.StatusNotFound, "No school is associated with this user")
	}
}

// ResolveSchool resolves the caller's school from the request identity.
func ResolveSchool(c *fiber.Ctx, db *gorm.DB) (*schoolModel.SchoolModel, error) {
	username := helper.GetUsernameFromLocals(c)
	if username == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return SchoolForUsername(c.UserContext(), db, username)
}
