package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/schools/dto"
	"sekolahku_backend/internals/features/school/schools/model"
	schoolService "sekolahku_backend/internals/features/school/schools/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
	helper "sekolahku_backend/internals/helpers"
	authz "sekolahku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

var validate = validator.New()

// POST /api/schools
// Creates the school together with its principal user in one transaction.
func (ctl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RoleSuperAdmin); err != nil {
		return err
	}

	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	var school *model.SchoolModel

	err := ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.SchoolModel{}).
			Where("school_code = ?", req.Code).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "School code already exists")
		}

		exists, err := userRepo.ExistsByUsername(ctx, tx, req.PrincipalUsername)
		if err != nil {
			return err
		}
		if exists {
			return fiber.NewError(fiber.StatusConflict, "Principal username already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.PrincipalPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		principal := &userModel.UserModel{
			UserName: req.PrincipalUsername,
			Password: string(hash),
			UserCode: "PRINCIPAL_" + req.Code,
			Role:     constants.RolePrincipal,
		}
		if err := tx.Create(principal).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Principal username already exists")
			}
			return err
		}

		school = &model.SchoolModel{
			SchoolCode:      req.Code,
			SchoolName:      req.Name,
			SchoolAddress:   req.Address,
			PrincipalUserID: principal.UserID,
		}
		if err := tx.Create(school).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "School code already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create school")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "School created",
		dto.NewSchoolResponse(school, req.PrincipalUsername))
}

// GET /api/schools
func (ctl *SchoolController) GetAllSchools(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RoleSuperAdmin); err != nil {
		return err
	}

	type row struct {
		model.SchoolModel
		PrincipalUsername string `gorm:"column:principal_username"`
	}
	var rows []row
	err := ctl.DB.WithContext(c.UserContext()).
		Table("schools").
		Select("schools.*, users.user_name AS principal_username").
		Joins("JOIN users ON users.user_id = schools.school_principal_user_id").
		Order("schools.school_id").
		Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load schools")
	}

	out := make([]*dto.SchoolResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewSchoolResponse(&rows[i].SchoolModel, rows[i].PrincipalUsername))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/schools/:id
func (ctl *SchoolController) GetSchoolByID(c *fiber.Ctx) error {
	return ctl.getSchoolBy(c, "school_id = ?", c.Params("id"))
}

// GET /api/schools/code/:code
func (ctl *SchoolController) GetSchoolByCode(c *fiber.Ctx) error {
	return ctl.getSchoolBy(c, "school_code = ?", c.Params("code"))
}

// Shared lookup for /:id and /code/:code. Super admins see every school; a
// principal only their own — a foreign school answers 404, never 403.
func (ctl *SchoolController) getSchoolBy(c *fiber.Ctx, query string, arg string) error {
	if err := authz.Require(c, constants.RoleSuperAdmin, constants.RolePrincipal); err != nil {
		return err
	}

	ctx := c.UserContext()
	var school model.SchoolModel
	if err := ctl.DB.WithContext(ctx).Where(query, arg).First(&school).Error; err != nil {
		if userRepo.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "School not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load school")
	}

	if helper.GetRoleFromLocals(c) == constants.RolePrincipal {
		own, err := schoolService.ResolveSchool(c, ctl.DB)
		if err != nil {
			return err
		}
		if own.SchoolID != school.SchoolID {
			return fiber.NewError(fiber.StatusNotFound, "School not found")
		}
	}

	return ctl.respondSchool(c, &school)
}

// GET /api/schools/my-school
func (ctl *SchoolController) GetMySchool(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal, constants.RoleTeacher); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}
	return ctl.respondSchool(c, school)
}

func (ctl *SchoolController) respondSchool(c *fiber.Ctx, school *model.SchoolModel) error {
	var principal userModel.UserModel
	principalUsername := ""
	err := ctl.DB.WithContext(c.UserContext()).
		First(&principal, "user_id = ?", school.PrincipalUserID).Error
	if err == nil {
		principalUsername = principal.UserName
	}
	return helper.Success(c, "OK", dto.NewSchoolResponse(school, principalUsername))
}
