package controller

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/schedules/dto"
	"sekolahku_backend/internals/features/school/schedules/model"
	"sekolahku_backend/internals/features/school/schedules/service"
	schoolService "sekolahku_backend/internals/features/school/schools/service"
	helper "sekolahku_backend/internals/helpers"
	authz "sekolahku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

var validate = validator.New()

// POST /api/schedules/classroom/:classroomId
func (ctl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	cand, err := service.NewCandidate(req.DayOfWeek, req.StartTime, req.EndTime, req.LessonOrder)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	classroomID := c.Params("classroomId")
	if err := authz.Ensure(c, ctl.DB,
		authz.ClassroomInSchool(classroomID, school.SchoolID),
		authz.LessonInSchool(req.LessonID, school.SchoolID),
	); err != nil {
		return err
	}

	entry := model.ScheduleModel{
		ClassroomID: classroomID,
		LessonID:    req.LessonID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		LessonOrder: req.LessonOrder,
	}

	// Check and insert in one serializable transaction so two concurrent
	// requests cannot both pass the check and both commit.
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var existing []model.ScheduleModel
		if err := tx.
			Where("schedule_classroom_id = ?", classroomID).
			Find(&existing).Error; err != nil {
			return err
		}
		conflict, err := service.HasConflict(existing, cand)
		if err != nil {
			return err
		}
		if conflict {
			return fiber.NewError(fiber.StatusConflict, "Schedule conflict detected")
		}
		return tx.Create(&entry).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Schedule conflict detected")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create schedule")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Schedule created", entry)
}

// GET /api/schedules/classroom/:classroomId
func (ctl *ScheduleController) GetSchedulesByClassroom(c *fiber.Ctx) error {
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

	var entries []dto.ScheduleResponse
	err = ctl.DB.WithContext(c.UserContext()).
		Table("schedules").
		Select(`schedules.schedule_id,
			schedules.schedule_classroom_id AS classroom_id,
			schedules.schedule_lesson_id AS lesson_id,
			lessons.lesson_code,
			lessons.lesson_name,
			COALESCE(teachers.teacher_first_name || ' ' || teachers.teacher_last_name, '') AS teacher_name,
			schedules.schedule_day_of_week AS day_of_week,
			schedules.schedule_start_time AS start_time,
			schedules.schedule_end_time AS end_time,
			schedules.schedule_lesson_order AS lesson_order`).
		Joins("JOIN lessons ON lessons.lesson_id = schedules.schedule_lesson_id").
		Joins("LEFT JOIN teachers ON teachers.teacher_id = lessons.lesson_teacher_id").
		Where("schedules.schedule_classroom_id = ?", classroomID).
		Scan(&entries).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load schedules")
	}
	service.SortTimetable(entries)
	return helper.Success(c, "OK", entries)
}

// DELETE /api/schedules/:id
func (ctl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.ScheduleInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ScheduleModel{}, "schedule_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	return helper.Success(c, "Schedule deleted", nil)
}
