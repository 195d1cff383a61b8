package dto

/* ========== REQUEST DTOs ========== */

type CreateTeacherRequest struct {
	FirstName     string `json:"firstName" validate:"required,min=1,max=60"`
	LastName      string `json:"lastName" validate:"required,min=1,max=60"`
	TeacherNumber string `json:"teacherNumber" validate:"required,min=2,max=20"`
	Department    string `json:"department" validate:"required"`
	Username      string `json:"username" validate:"required,min=3,max=50"`
	Password      string `json:"password" validate:"required,min=2"`
}

type UpdateTeacherStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE ON_LEAVE RESIGNED"`
}

/* ========== RESPONSE DTO ========== */

type NextNumberResponse struct {
	Number string `json:"number"`
}
