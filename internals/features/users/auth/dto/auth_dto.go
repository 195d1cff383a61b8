package dto

/* ========== REQUEST DTOs ========== */

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

/* ========== RESPONSE DTOs ========== */

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type CheckAuthResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
