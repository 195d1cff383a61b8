package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/departments/dto"
	"sekolahku_backend/internals/features/school/departments/model"
	schoolService "sekolahku_backend/internals/features/school/schools/service"
	"sekolahku_backend/internals/features/school/sequence"
	helper "sekolahku_backend/internals/helpers"
	authz "sekolahku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

var validate = validator.New()

// GET /api/departments/next-code
// Advisory: a concurrent caller may get the same value and lose at insert.
func (ctl *DepartmentController) GetNextCode(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var codes []string
	err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.DepartmentModel{}).Pluck("department_code", &codes).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load department codes")
	}

	return helper.Success(c, "OK", dto.NextCodeResponse{Code: sequence.Department.Next(codes)})
}

// POST /api/departments
func (ctl *DepartmentController) CreateDepartment(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	department := req.ToModel(school.SchoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(department).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Department code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create department")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Department created", department)
}

// GET /api/departments
func (ctl *DepartmentController) GetDepartments(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal, constants.RoleTeacher); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	var departments []model.DepartmentModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("department_school_id = ?", school.SchoolID).
		Order("department_id").
		Find(&departments).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load departments")
	}

	return helper.Success(c, "OK", departments)
}

// GET /api/departments/:id
func (ctl *DepartmentController) GetDepartmentByID(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal, constants.RoleTeacher); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.DepartmentInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	var department model.DepartmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&department, "department_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Department not found")
	}
	return helper.Success(c, "OK", department)
}

// DELETE /api/departments/:id
func (ctl *DepartmentController) DeleteDepartment(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.DepartmentInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.DepartmentModel{}, "department_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete department")
	}
	return helper.Success(c, "Department deleted", nil)
}
