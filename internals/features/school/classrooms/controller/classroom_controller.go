package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/classrooms/dto"
	"sekolahku_backend/internals/features/school/classrooms/model"
	lessonModel "sekolahku_backend/internals/features/school/lessons/model"
	schoolService "sekolahku_backend/internals/features/school/schools/service"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
	authz "sekolahku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type ClassroomController struct {
	DB *gorm.DB
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db}
}

var validate = validator.New()

// POST /api/classrooms
func (ctl *ClassroomController) CreateClassroom(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var req dto.CreateClassroomRequest
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

	classroom := req.ToModel(school.SchoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(classroom).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create classroom")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Classroom created", classroom)
}

// GET /api/classrooms/my-school
func (ctl *ClassroomController) GetMySchoolClassrooms(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal, constants.RoleTeacher); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	var classrooms []model.ClassroomModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("classroom_school_id = ?", school.SchoolID).
		Order("classroom_id").
		Find(&classrooms).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load classrooms")
	}
	return helper.Success(c, "OK", classrooms)
}

// GET /api/classrooms/:id
func (ctl *ClassroomController) GetClassroomByID(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal, constants.RoleTeacher); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.ClassroomInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	var classroom model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&classroom, "classroom_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Classroom not found")
	}
	return helper.Success(c, "OK", classroom)
}

// DELETE /api/classrooms/:id
// Students and join rows go with the classroom (FK cascade).
func (ctl *ClassroomController) DeleteClassroom(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.ClassroomInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassroomModel{}, "classroom_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete classroom")
	}
	return helper.Success(c, "Classroom deleted", nil)
}

/* ================= Teacher links ================= */

// GET /api/classrooms/:id/teachers
func (ctl *ClassroomController) GetClassroomTeachers(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal, constants.RoleTeacher); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.ClassroomInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	var teachers []teacherModel.TeacherModel
	err = ctl.DB.WithContext(c.UserContext()).
		Joins("JOIN classroom_teachers ON classroom_teachers.teacher_id = teachers.teacher_id").
		Where("classroom_teachers.classroom_id = ?", id).
		Order("teachers.teacher_id").
		Find(&teachers).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load classroom teachers")
	}
	return helper.Success(c, "OK", teachers)
}

// PUT /api/classrooms/:classroomId/teachers/:teacherId
func (ctl *ClassroomController) AddTeacherToClassroom(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	classroomID := c.Params("classroomId")
	teacherID := c.Params("teacherId")
	if err := authz.Ensure(c, ctl.DB, authz.ClassroomInSchool(classroomID, school.SchoolID)); err != nil {
		return err
	}

	ctx := c.UserContext()
	var teacher teacherModel.TeacherModel
	if err := ctl.DB.WithContext(ctx).
		First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}
	if teacher.SchoolID != school.SchoolID {
		return fiber.NewError(fiber.StatusBadRequest, "Teacher must belong to the same school")
	}

	link := model.ClassroomTeacherModel{ClassroomID: classroomID, TeacherID: teacherID}
	err = ctl.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to link teacher")
	}
	return helper.Success(c, "Teacher added to classroom", link)
}

// DELETE /api/classrooms/:classroomId/teachers/:teacherId
func (ctl *ClassroomController) RemoveTeacherFromClassroom(c *fiber.Ctx) error {
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

	err = ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassroomTeacherModel{},
			"classroom_id = ? AND teacher_id = ?", classroomID, c.Params("teacherId")).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to unlink teacher")
	}
	return helper.Success(c, "Teacher removed from classroom", nil)
}

/* ================= Lesson links ================= */

// GET /api/classrooms/:id/lessons
func (ctl *ClassroomController) GetClassroomLessons(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal, constants.RoleTeacher); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.ClassroomInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	var lessons []lessonModel.LessonModel
	err = ctl.DB.WithContext(c.UserContext()).
		Joins("JOIN classroom_lessons ON classroom_lessons.lesson_id = lessons.lesson_id").
		Where("classroom_lessons.classroom_id = ?", id).
		Order("lessons.lesson_id").
		Find(&lessons).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load classroom lessons")
	}
	return helper.Success(c, "OK", lessons)
}

// PUT /api/classrooms/:classroomId/lessons/:lessonId
func (ctl *ClassroomController) AddLessonToClassroom(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	classroomID := c.Params("classroomId")
	lessonID := c.Params("lessonId")
	if err := authz.Ensure(c, ctl.DB, authz.ClassroomInSchool(classroomID, school.SchoolID)); err != nil {
		return err
	}

	ctx := c.UserContext()
	var lesson lessonModel.LessonModel
	if err := ctl.DB.WithContext(ctx).
		First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Lesson not found")
	}
	if lesson.SchoolID != school.SchoolID {
		return fiber.NewError(fiber.StatusBadRequest, "Lesson must belong to the same school")
	}

	link := model.ClassroomLessonModel{ClassroomID: classroomID, LessonID: lessonID}
	err = ctl.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to link lesson")
	}
	return helper.Success(c, "Lesson added to classroom", link)
}

// DELETE /api/classrooms/:classroomId/lessons/:lessonId
func (ctl *ClassroomController) RemoveLessonFromClassroom(c *fiber.Ctx) error {
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

	err = ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassroomLessonModel{},
			"classroom_id = ? AND lesson_id = ?", classroomID, c.Params("lessonId")).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to unlink lesson")
	}
	return helper.Success(c, "Lesson removed from classroom", nil)
}
