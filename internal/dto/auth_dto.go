// FILE: internal/dto/auth_dto.go
package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6"`
}

type VerifyOtpResponse struct {
	Token string   `json:"token"`
	Admin AdminDTO `json:"admin"`
}

type AdminDTO struct {
	Email string `json:"email"`
}
