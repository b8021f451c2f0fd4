package dto

import (
	"time"

	"github.com/spec-kit/console-service/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued session token and landing route.
type LoginResponse struct {
	Token     string      `json:"token"`
	Role      domain.Role `json:"role"`
	Landing   string      `json:"landing"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// SessionResponse reports the process-wide session state.
type SessionResponse struct {
	Role     domain.Role     `json:"role"`
	Language domain.Language `json:"language"`
	Theme    domain.Theme    `json:"theme"`
	Busy     bool            `json:"busy"`
}

// SetLanguageRequest payload.
type SetLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en ar"`
}

// SetThemeRequest payload.
type SetThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}
