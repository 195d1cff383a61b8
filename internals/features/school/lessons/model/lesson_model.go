package model

import (
	"time"

	"gorm.io/gorm"
)

// LessonModel represents the lessons table. A lesson may run without a
// teacher; when one is attached it must share the lesson's school and
// department.
type LessonModel struct {
	LessonID       string    `json:"lesson_id" gorm:"column:lesson_id;primaryKey"`
	Code           string    `json:"lesson_code" gorm:"column:lesson_code;size:20;unique;not null"`
	Name           string    `json:"lesson_name" gorm:"column:lesson_name;size:120;not null"`
	Duration       int       `json:"lesson_duration" gorm:"column:lesson_duration;not null"`
	DepartmentCode string    `json:"lesson_department_code" gorm:"column:lesson_department_code;size:20;not null"`
	TeacherID      *string   `json:"lesson_teacher_id,omitempty" gorm:"column:lesson_teacher_id;size:20"`
	SchoolID       string    `json:"lesson_school_id" gorm:"column:lesson_school_id;size:20;not null"`
	CreatedAt      time.Time `json:"lesson_created_at" gorm:"column:lesson_created_at;autoCreateTime"`
}

func (LessonModel) TableName() string {
	return "lessons"
}

func (m *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonID != "" {
		return nil
	}
	return tx.Raw(`SELECT 'L' || nextval('lesson_id_seq')`).Scan(&m.LessonID).Error
}
