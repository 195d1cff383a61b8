package dto

import (
	"sekolahku_backend/internals/features/school/departments/model"
)

/* ========== REQUEST DTOs ========== */

type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Code        string `json:"code" validate:"required,min=2,max=20"`
	Description string `json:"description"`
}

/* ========== RESPONSE DTO ========== */

type NextCodeResponse struct {
	Code string `json:"code"`
}

func (r *CreateDepartmentRequest) ToModel(schoolID string) *model.DepartmentModel {
	return &model.DepartmentModel{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		SchoolID:    schoolID,
	}
}
