package dto

import (
	"time"

	"sekolahku_backend/internals/features/school/schools/model"
)

/* ========== REQUEST DTOs ========== */

type CreateSchoolRequest struct {
	Name              string `json:"name" validate:"required,min=2,max=120"`
	Code              string `json:"code" validate:"required,min=2,max=20"`
	Address           string `json:"address"`
	PrincipalUsername string `json:"principalUsername" validate:"required,min=3,max=50"`
	PrincipalPassword string `json:"principalPassword" validate:"required,min=2"`
}

/* ========== RESPONSE DTO ========== */

type SchoolResponse struct {
	SchoolID          string    `json:"school_id"`
	SchoolCode        string    `json:"school_code"`
	SchoolName        string    `json:"school_name"`
	SchoolAddress     string    `json:"school_address,omitempty"`
	PrincipalUsername string    `json:"principal_username"`
	CreatedAt         time.Time `json:"school_created_at"`
}

func NewSchoolResponse(m *model.SchoolModel, principalUsername string) *SchoolResponse {
	if m == nil {
		return nil
	}
	return &SchoolResponse{
		SchoolID:          m.SchoolID,
		SchoolCode:        m.SchoolCode,
		SchoolName:        m.SchoolName,
		SchoolAddress:     m.SchoolAddress,
		PrincipalUsername: principalUsername,
		CreatedAt:         m.CreatedAt,
	}
}
