package model

import (
	"time"

	"gorm.io/gorm"
)

// DepartmentModel represents the departments table. The code (D<n>) is
// globally unique and doubles as the reference teachers and lessons carry.
type DepartmentModel struct {
	DepartmentID string    `json:"department_id" gorm:"column:department_id;primaryKey"`
	Code         string    `json:"department_code" gorm:"column:department_code;size:20;unique;not null"`
	Name         string    `json:"department_name" gorm:"column:department_name;size:120;not null"`
	Description  string    `json:"department_description" gorm:"column:department_description"`
	SchoolID     string    `json:"department_school_id" gorm:"column:department_school_id;size:20;not null"`
	CreatedAt    time.Time `json:"department_created_at" gorm:"column:department_created_at;autoCreateTime"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}

func (m *DepartmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.DepartmentID != "" {
		return nil
	}
	return tx.Raw(`SELECT 'D' || nextval('department_id_seq')`).Scan(&m.DepartmentID).Error
}
