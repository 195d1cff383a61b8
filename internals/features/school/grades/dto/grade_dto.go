package dto

/* ========== REQUEST DTOs ========== */

type UpsertGradeRequest struct {
	StudentID  string  `json:"studentId" validate:"required"`
	LessonID   string  `json:"lessonId" validate:"required"`
	ExamNumber int     `json:"examNumber" validate:"required,min=1"`
	Score      float64 `json:"score" validate:"min=0,max=100"`
	Notes      string  `json:"notes" validate:"max=500"`
}
