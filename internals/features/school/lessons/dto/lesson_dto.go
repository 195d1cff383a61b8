package dto

import (
	"sekolahku_backend/internals/features/school/lessons/model"
)

/* ========== REQUEST DTOs ========== */

type CreateLessonRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=120"`
	Code       string  `json:"code" validate:"required,min=2,max=20"`
	Duration   int     `json:"duration" validate:"required,min=1"`
	Department string  `json:"department" validate:"required"`
	TeacherID  *string `json:"teacherId"`
}

/* ========== RESPONSE DTO ========== */

type NextCodeResponse struct {
	Code string `json:"code"`
}

func (r *CreateLessonRequest) ToModel(schoolID string) *model.LessonModel {
	return &model.LessonModel{
		Name:           r.Name,
		Code:           r.Code,
		Duration:       r.Duration,
		DepartmentCode: r.Department,
		TeacherID:      r.TeacherID,
		SchoolID:       schoolID,
	}
}
