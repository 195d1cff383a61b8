package model

import (
	"time"

	"gorm.io/gorm"
)

// StudentModel represents the students table. A student's school is derived
// through its classroom; the row disappears with the classroom (FK cascade).
type StudentModel struct {
	StudentID     string    `json:"student_id" gorm:"column:student_id;primaryKey"`
	FirstName     string    `json:"student_first_name" gorm:"column:student_first_name;size:60;not null"`
	LastName      string    `json:"student_last_name" gorm:"column:student_last_name;size:60;not null"`
	StudentNumber string    `json:"student_number" gorm:"column:student_number;size:20;unique;not null"`
	ClassroomID   string    `json:"student_classroom_id" gorm:"column:student_classroom_id;size:20;not null"`
	CreatedAt     time.Time `json:"student_created_at" gorm:"column:student_created_at;autoCreateTime"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID != "" {
		return nil
	}
	return tx.Raw(`SELECT 'ST' || nextval('student_id_seq')`).Scan(&m.StudentID).Error
}
