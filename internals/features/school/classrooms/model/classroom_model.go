package model

import (
	"time"

	"gorm.io/gorm"
)

// ClassroomModel represents the classrooms table. Students belong to exactly
// one classroom and are removed with it (FK cascade).
type ClassroomModel struct {
	ClassroomID string    `json:"classroom_id" gorm:"column:classroom_id;primaryKey"`
	Name        string    `json:"classroom_name" gorm:"column:classroom_name;size:120;not null"`
	Grade       int       `json:"classroom_grade" gorm:"column:classroom_grade;not null"`
	Section     string    `json:"classroom_section" gorm:"column:classroom_section;size:10;not null"`
	Capacity    int       `json:"classroom_capacity" gorm:"column:classroom_capacity;not null"`
	SchoolID    string    `json:"classroom_school_id" gorm:"column:classroom_school_id;size:20;not null"`
	CreatedAt   time.Time `json:"classroom_created_at" gorm:"column:classroom_created_at;autoCreateTime"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}

func (m *ClassroomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassroomID != "" {
		return nil
	}
	return tx.Raw(`SELECT 'CL' || nextval('classroom_id_seq')`).Scan(&m.ClassroomID).Error
}

// Join rows are written explicitly; no association navigation.

type ClassroomTeacherModel struct {
	ClassroomID string `json:"classroom_id" gorm:"column:classroom_id;primaryKey"`
	TeacherID   string `json:"teacher_id" gorm:"column:teacher_id;primaryKey"`
}

func (ClassroomTeacherModel) TableName() string {
	return "classroom_teachers"
}

type ClassroomLessonModel struct {
	ClassroomID string `json:"classroom_id" gorm:"column:classroom_id;primaryKey"`
	LessonID    string `json:"lesson_id" gorm:"column:lesson_id;primaryKey"`
}

func (ClassroomLessonModel) TableName() string {
	return "classroom_lessons"
}
