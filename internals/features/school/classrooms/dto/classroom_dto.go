package dto

import (
	"sekolahku_backend/internals/features/school/classrooms/model"
)

/* ========== REQUEST DTOs ========== */

type CreateClassroomRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Grade    int    `json:"grade" validate:"required,min=1,max=12"`
	Section  string `json:"section" validate:"required,min=1,max=10"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

func (r *CreateClassroomRequest) ToModel(schoolID string) *model.ClassroomModel {
	return &model.ClassroomModel{
		Name:     r.Name,
		Grade:    r.Grade,
		Section:  r.Section,
		Capacity: r.Capacity,
		SchoolID: schoolID,
	}
}
