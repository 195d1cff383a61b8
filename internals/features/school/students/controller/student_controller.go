package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	schoolService "sekolahku_backend/internals/features/school/schools/service"
	"sekolahku_backend/internals/features/school/sequence"
	"sekolahku_backend/internals/features/school/students/dto"
	"sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
	authz "sekolahku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

// GET /api/students/next-number
func (ctl *StudentController) GetNextNumber(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var numbers []string
	err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentModel{}).Pluck("student_number", &numbers).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student numbers")
	}
	return helper.Success(c, "OK", dto.NextNumberResponse{Number: sequence.Student.Next(numbers)})
}

// POST /api/students/classroom/:classroomId
func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var req dto.CreateStudentRequest
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

	classroomID := c.Params("classroomId")
	if err := authz.Ensure(c, ctl.DB, authz.ClassroomInSchool(classroomID, school.SchoolID)); err != nil {
		return err
	}

	student := req.ToModel(classroomID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Student number already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", student)
}

// GET /api/students/classroom/:classroomId
func (ctl *StudentController) GetStudentsByClassroom(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	classroomID := c.Params("classroomId")
	if err := authz.Ensure(c, ctl.DB, authz.ClassroomInSchool(classroomID, school.SchoolID)); err != nil {
		return err
	}

	var students []model.StudentModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("student_classroom_id = ?", classroomID).
		Order("student_id").
		Find(&students).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
	}
	return helper.Success(c, "OK", students)
}

// GET /api/students/:id
func (ctl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.StudentInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	var student model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&student, "student_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	return helper.Success(c, "OK", student)
}

// DELETE /api/students/:id
func (ctl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.StudentInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.StudentModel{}, "student_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.Success(c, "Student deleted", nil)
}
