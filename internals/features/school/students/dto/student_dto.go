package dto

import (
	"sekolahku_backend/internals/features/school/students/model"
)

/* ========== REQUEST DTOs ========== */

type CreateStudentRequest struct {
	FirstName     string `json:"firstName" validate:"required,min=1,max=60"`
	LastName      string `json:"lastName" validate:"required,min=1,max=60"`
	StudentNumber string `json:"studentNumber" validate:"required,min=1,max=20"`
}

/* ========== RESPONSE DTO ========== */

type NextNumberResponse struct {
	Number string `json:"number"`
}

func (r *CreateStudentRequest) ToModel(classroomID string) *model.StudentModel {
	return &model.StudentModel{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		StudentNumber: r.StudentNumber,
		ClassroomID:   classroomID,
	}
}
