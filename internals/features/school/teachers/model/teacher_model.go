package model

import (
	"time"

	"gorm.io/gorm"
)

// TeacherModel represents the teachers table. The teacher number (T<n>) is
// globally unique and is also stored as the backing user's code; that
// convention is what the tenancy resolver follows for teacher logins.
type TeacherModel struct {
	TeacherID      string    `json:"teacher_id" gorm:"column:teacher_id;primaryKey"`
	FirstName      string    `json:"teacher_first_name" gorm:"column:teacher_first_name;size:60;not null"`
	LastName       string    `json:"teacher_last_name" gorm:"column:teacher_last_name;size:60;not null"`
	TeacherNumber  string    `json:"teacher_number" gorm:"column:teacher_number;size:20;unique;not null"`
	DepartmentCode string    `json:"teacher_department_code" gorm:"column:teacher_department_code;size:20;not null"`
	Status         string    `json:"teacher_status" gorm:"column:teacher_status;size:20;not null;default:'ACTIVE'"`
	SchoolID       string    `json:"teacher_school_id" gorm:"column:teacher_school_id;size:20;not null"`
	UserID         *int64    `json:"teacher_user_id,omitempty" gorm:"column:teacher_user_id;unique"`
	CreatedAt      time.Time `json:"teacher_created_at" gorm:"column:teacher_created_at;autoCreateTime"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID != "" {
		return nil
	}
	return tx.Raw(`SELECT 'T' || nextval('teacher_id_seq')`).Scan(&m.TeacherID).Error
}
