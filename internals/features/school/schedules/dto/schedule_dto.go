package dto

/* ========== REQUEST DTOs ========== */

type CreateScheduleRequest struct {
	LessonID    string `json:"lessonId" validate:"required"`
	DayOfWeek   string `json:"dayOfWeek" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime   string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime     string `json:"endTime" validate:"required,datetime=15:04"`
	LessonOrder int    `json:"lessonOrder" validate:"required,min=1"`
}

/* ========== RESPONSE DTO ========== */

// ScheduleResponse flattens the lesson and assigned teacher into the entry
// so clients can render a timetable without extra lookups.
type ScheduleResponse struct {
	ScheduleID  string `json:"schedule_id"`
	ClassroomID string `json:"classroom_id"`
	LessonID    string `json:"lesson_id"`
	LessonCode  string `json:"lesson_code"`
	LessonName  string `json:"lesson_name"`
	TeacherName string `json:"teacher_name"`
	DayOfWeek   string `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	LessonOrder int    `json:"lesson_order"`
}
