package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "sekolahku_backend/internals/helpers"
)

// The gate runs before every domain operation: first the role check, then
// zero or more ownership predicates asserting that named entities belong to
// the caller's school. A failed role check is 403; a failed predicate is 404,
// the same answer as a missing entity, so out-of-tenancy records are never
// revealed to exist. Predicates are plain reads and have no side effects.

// Predicate is one ownership assertion evaluated against the store.
type Predicate func(db *gorm.DB) (bool, error)

// Require checks the authenticated role against the allowed set.
func Require(c *fiber.Ctx, roles ...string) error {
	role := helper.GetRoleFromLocals(c)
	if role == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	for _, r := range roles {
		if role == r {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusForbidden, "Forbidden")
}

// Ensure evaluates ownership predicates in order. The first false predicate
// short-circuits with 404.
func Ensure(c *fiber.Ctx, db *gorm.DB, preds ...Predicate) error {
	tx := db.WithContext(c.UserContext())
	for _, pred := range preds {
		ok, err := pred(tx)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}
	}
	return nil
}

func exists(db *gorm.DB, table string, query string, args ...interface{}) (bool, error) {
	var n int64
	if err := db.Table(table).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

/* ================= Ownership predicates ================= */

func ClassroomInSchool(classroomID, schoolID string) Predicate {
	return func(db *gorm.DB) (bool, error) {
		return exists(db, "classrooms",
			"classroom_id = ? AND classroom_school_id = ?", classroomID, schoolID)
	}
}

func LessonInSchool(lessonID, schoolID string) Predicate {
	return func(db *gorm.DB) (bool, error) {
		return exists(db, "lessons",
			"lesson_id = ? AND lesson_school_id = ?", lessonID, schoolID)
	}
}

func TeacherInSchool(teacherID, schoolID string) Predicate {
	return func(db *gorm.DB) (bool, error) {
		return exists(db, "teachers",
			"teacher_id = ? AND teacher_school_id = ?", teacherID, schoolID)
	}
}

func DepartmentInSchool(departmentID, schoolID string) Predicate {
	return func(db *gorm.DB) (bool, error) {
		return exists(db, "departments",
			"department_id = ? AND department_school_id = ?", departmentID, schoolID)
	}
}

// StudentInSchool resolves the student's school through its classroom.
func StudentInSchool(studentID, schoolID string) Predicate {
	return func(db *gorm.DB) (bool, error) {
		var n int64
		err := db.Table("students").
			Joins("JOIN classrooms ON classrooms.classroom_id = students.student_classroom_id").
			Where("students.student_id = ? AND classrooms.classroom_school_id = ?", studentID, schoolID).
			Count(&n).Error
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

// ScheduleInSchool resolves the schedule's school through its classroom.
func ScheduleInSchool(scheduleID, schoolID string) Predicate {
	return func(db *gorm.DB) (bool, error) {
		var n int64
		err := db.Table("schedules").
			Joins("JOIN classrooms ON classrooms.classroom_id = schedules.schedule_classroom_id").
			Where("schedules.schedule_id = ? AND classrooms.classroom_school_id = ?", scheduleID, schoolID).
			Count(&n).Error
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

func StudentInClassroom(studentID, classroomID string) Predicate {
	return func(db *gorm.DB) (bool, error) {
		return exists(db, "students",
			"student_id = ? AND student_classroom_id = ?", studentID, classroomID)
	}
}
