package model

import (
	"time"

	"gorm.io/gorm"
)

// SchoolModel represents the schools table, the tenant root. Every other
// domain record hangs off exactly one school.
type SchoolModel struct {
	SchoolID        string    `json:"school_id" gorm:"column:school_id;primaryKey"`
	SchoolCode      string    `json:"school_code" gorm:"column:school_code;size:20;unique;not null"`
	SchoolName      string    `json:"school_name" gorm:"column:school_name;size:120;not null"`
	SchoolAddress   string    `json:"school_address" gorm:"column:school_address"`
	PrincipalUserID int64     `json:"school_principal_user_id" gorm:"column:school_principal_user_id;unique;not null"`
	CreatedAt       time.Time `json:"school_created_at" gorm:"column:school_created_at;autoCreateTime"`
}

func (SchoolModel) TableName() string {
	return "schools"
}

// BeforeCreate mints the prefixed ID from the database-backed sequence.
func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID != "" {
		return nil
	}
	return tx.Raw(`SELECT 'S' || nextval('school_id_seq')`).Scan(&m.SchoolID).Error
}
