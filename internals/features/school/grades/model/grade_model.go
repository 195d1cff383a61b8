package model

import (
	"time"

	"gorm.io/gorm"
)

// GradeModel represents the grades table. One row per exam taken by a
// student in a lesson; (student, lesson, exam number) is unique.
type GradeModel struct {
	GradeID    string    `json:"grade_id" gorm:"column:grade_id;primaryKey"`
	StudentID  string    `json:"grade_student_id" gorm:"column:grade_student_id;size:20;not null"`
	LessonID   string    `json:"grade_lesson_id" gorm:"column:grade_lesson_id;size:20;not null"`
	ExamNumber int       `json:"grade_exam_number" gorm:"column:grade_exam_number;not null"`
	Score      float64   `json:"grade_score" gorm:"column:grade_score;not null"`
	Notes      string    `json:"grade_notes" gorm:"column:grade_notes"`
	CreatedAt  time.Time `json:"grade_created_at" gorm:"column:grade_created_at;autoCreateTime"`
	UpdatedAt  time.Time `json:"grade_updated_at" gorm:"column:grade_updated_at;autoUpdateTime"`
}

func (GradeModel) TableName() string {
	return "grades"
}

func (m *GradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.GradeID != "" {
		return nil
	}
	return tx.Raw(`SELECT 'G' || nextval('grade_id_seq')`).Scan(&m.GradeID).Error
}
