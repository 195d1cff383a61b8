package model

import (
	"time"

	"gorm.io/gorm"
)

// ScheduleModel represents the schedules table: one lesson slot in a
// classroom's week. Times are zero-padded "HH:MM" local clock values.
type ScheduleModel struct {
	ScheduleID  string    `json:"schedule_id" gorm:"column:schedule_id;primaryKey"`
	ClassroomID string    `json:"schedule_classroom_id" gorm:"column:schedule_classroom_id;size:20;not null"`
	LessonID    string    `json:"schedule_lesson_id" gorm:"column:schedule_lesson_id;size:20;not null"`
	DayOfWeek   string    `json:"schedule_day_of_week" gorm:"column:schedule_day_of_week;size:10;not null"`
	StartTime   string    `json:"schedule_start_time" gorm:"column:schedule_start_time;size:5;not null"`
	EndTime     string    `json:"schedule_end_time" gorm:"column:schedule_end_time;size:5;not null"`
	LessonOrder int       `json:"schedule_lesson_order" gorm:"column:schedule_lesson_order;not null"`
	CreatedAt   time.Time `json:"schedule_created_at" gorm:"column:schedule_created_at;autoCreateTime"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

func (m *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScheduleID != "" {
		return nil
	}
	return tx.Raw(`SELECT 'SCH' || nextval('schedule_id_seq')`).Scan(&m.ScheduleID).Error
}
