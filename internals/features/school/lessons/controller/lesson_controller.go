package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/lessons/dto"
	"sekolahku_backend/internals/features/school/lessons/model"
	schoolService "sekolahku_backend/internals/features/school/schools/service"
	"sekolahku_backend/internals/features/school/sequence"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
	authz "sekolahku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

var validate = validator.New()

// GET /api/lessons/next-code
func (ctl *LessonController) GetNextCode(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var codes []string
	err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.LessonModel{}).Pluck("lesson_code", &codes).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load lesson codes")
	}
	return helper.Success(c, "OK", dto.NextCodeResponse{Code: sequence.Lesson.Next(codes)})
}

// POST /api/lessons
func (ctl *LessonController) CreateLesson(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var req dto.CreateLessonRequest
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

	ctx := c.UserContext()
	if req.TeacherID != nil {
		var teacher teacherModel.TeacherModel
		if err := ctl.DB.WithContext(ctx).
			First(&teacher, "teacher_id = ?", *req.TeacherID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		if teacher.SchoolID != school.SchoolID {
			return fiber.NewError(fiber.StatusBadRequest, "Teacher does not belong to this school")
		}
		if teacher.DepartmentCode != req.Department {
			return fiber.NewError(fiber.StatusBadRequest, "Teacher must be from the same department as the lesson")
		}
	}

	lesson := req.ToModel(school.SchoolID)
	if err := ctl.DB.WithContext(ctx).Create(lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Lesson code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create lesson")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Lesson created", lesson)
}

// GET /api/lessons
func (ctl *LessonController) GetLessons(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal, constants.RoleTeacher); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	var lessons []model.LessonModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("lesson_school_id = ?", school.SchoolID).
		Order("lesson_id").
		Find(&lessons).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load lessons")
	}
	return helper.Success(c, "OK", lessons)
}

// GET /api/lessons/:id
func (ctl *LessonController) GetLessonByID(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal, constants.RoleTeacher); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.LessonInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	var lesson model.LessonModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&lesson, "lesson_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Lesson not found")
	}
	return helper.Success(c, "OK", lesson)
}

// GET /api/lessons/teacher/:teacherId
func (ctl *LessonController) GetLessonsByTeacher(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal, constants.RoleTeacher); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	teacherID := c.Params("teacherId")
	if err := authz.Ensure(c, ctl.DB, authz.TeacherInSchool(teacherID, school.SchoolID)); err != nil {
		return err
	}

	var lessons []model.LessonModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("lesson_teacher_id = ?", teacherID).
		Order("lesson_id").
		Find(&lessons).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load lessons")
	}
	return helper.Success(c, "OK", lessons)
}

// DELETE /api/lessons/:id
func (ctl *LessonController) DeleteLesson(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.LessonInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.LessonModel{}, "lesson_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete lesson")
	}
	return helper.Success(c, "Lesson deleted", nil)
}

// PUT /api/lessons/:lessonId/teacher/:teacherId
// The teacher must come from the lesson's own department.
func (ctl *LessonController) AssignTeacher(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	lessonID := c.Params("lessonId")
	teacherID := c.Params("teacherId")
	if err := authz.Ensure(c, ctl.DB,
		authz.LessonInSchool(lessonID, school.SchoolID),
		authz.TeacherInSchool(teacherID, school.SchoolID),
	); err != nil {
		return err
	}

	ctx := c.UserContext()
	var lesson model.LessonModel
	if err := ctl.DB.WithContext(ctx).
		First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Lesson not found")
	}

	var teacher teacherModel.TeacherModel
	if err := ctl.DB.WithContext(ctx).
		First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}

	if teacher.DepartmentCode != lesson.DepartmentCode {
		return fiber.NewError(fiber.StatusBadRequest, "Teacher must be from the same department as the lesson")
	}

	if err := ctl.DB.WithContext(ctx).Model(&model.LessonModel{}).
		Where("lesson_id = ?", lessonID).
		Update("lesson_teacher_id", teacherID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign teacher")
	}

	lesson.TeacherID = &teacher.TeacherID
	return helper.Success(c, "Teacher assigned", lesson)
}

// DELETE /api/lessons/:id/teacher
func (ctl *LessonController) RemoveTeacher(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.LessonInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&model.LessonModel{}).
		Where("lesson_id = ?", id).
		Update("lesson_teacher_id", nil).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove teacher")
	}
	return helper.Success(c, "Teacher removed from lesson", nil)
}
