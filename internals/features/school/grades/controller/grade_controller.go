package controller

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/grades/dto"
	"sekolahku_backend/internals/features/school/grades/model"
	"sekolahku_backend/internals/features/school/grades/service"
	schoolService "sekolahku_backend/internals/features/school/schools/service"
	helper "sekolahku_backend/internals/helpers"
	authz "sekolahku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

var validate = validator.New()

// POST /api/grades
// POST /api/grades/update
//
// Both routes are the same upsert: the second exists for clients that want
// an explicit update verb.
func (ctl *GradeController) UpsertGrade(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var req dto.UpsertGradeRequest
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
	if err := authz.Ensure(c, ctl.DB,
		authz.StudentInSchool(req.StudentID, school.SchoolID),
		authz.LessonInSchool(req.LessonID, school.SchoolID),
	); err != nil {
		return err
	}

	var grade *model.GradeModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var txErr error
		grade, txErr = service.Upsert(tx, req.StudentID, req.LessonID, req.ExamNumber, req.Score, req.Notes)
		return txErr
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Grade already exists for this exam")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save grade")
	}
	return helper.Success(c, "Grade saved", grade)
}

// GET /api/grades/student/:studentId
func (ctl *GradeController) GetGradesByStudent(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	studentID := c.Params("studentId")
	if err := authz.Ensure(c, ctl.DB, authz.StudentInSchool(studentID, school.SchoolID)); err != nil {
		return err
	}

	var grades []model.GradeModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("grade_student_id = ?", studentID).
		Order("grade_lesson_id, grade_exam_number").
		Find(&grades).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load grades")
	}
	return helper.Success(c, "OK", grades)
}

// GET /api/grades/student/:studentId/lesson/:lessonId
func (ctl *GradeController) GetGradesByStudentAndLesson(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	studentID := c.Params("studentId")
	lessonID := c.Params("lessonId")
	if err := authz.Ensure(c, ctl.DB,
		authz.StudentInSchool(studentID, school.SchoolID),
		authz.LessonInSchool(lessonID, school.SchoolID),
	); err != nil {
		return err
	}

	var grades []model.GradeModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("grade_student_id = ? AND grade_lesson_id = ?", studentID, lessonID).
		Order("grade_exam_number").
		Find(&grades).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load grades")
	}
	return helper.Success(c, "OK", grades)
}

// GET /api/grades/student/:studentId/averages
func (ctl *GradeController) GetStudentAverages(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	studentID := c.Params("studentId")
	if err := authz.Ensure(c, ctl.DB, authz.StudentInSchool(studentID, school.SchoolID)); err != nil {
		return err
	}

	var grades []model.GradeModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("grade_student_id = ?", studentID).
		Find(&grades).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load grades")
	}
	return helper.Success(c, "OK", service.AveragesByLesson(grades))
}
