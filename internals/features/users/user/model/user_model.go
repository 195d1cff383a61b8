package model

import (
	"time"
)

// UserModel represents the users table. Every login identity lives here:
// the super admin, one principal per school, and one user per teacher.
type UserModel struct {
	UserID    int64     `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	UserName  string    `json:"user_name" gorm:"column:user_name;size:50;unique;not null"`
	Password  string    `json:"-" gorm:"column:user_password;size:100;not null"`
	UserCode  string    `json:"user_code" gorm:"column:user_code;size:50;unique;not null"`
	Role      string    `json:"user_role" gorm:"column:user_role;size:20;not null"`
	CreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
