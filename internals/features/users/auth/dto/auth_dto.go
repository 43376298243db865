// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/users/auth/model"
)

/* ===============================
   REQUEST DTO
=================================*/

type RegisterRequest struct {
	UserEmail    string     `json:"user_email" validate:"required,email,max=120"`
	UserFullName string     `json:"user_full_name" validate:"required,min=2,max=120"`
	UserPassword string     `json:"user_password" validate:"required,min=8,max=72"`
	UserSchoolID *uuid.UUID `json:"user_school_id" validate:"omitempty"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

/* ===============================
   RESPONSE DTO
=================================*/

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserEmail     string     `json:"user_email"`
	UserFullName  string     `json:"user_full_name"`
	UserRole      string     `json:"user_role"`
	UserSchoolID  *uuid.UUID `json:"user_school_id,omitempty"`
	UserIsActive  bool       `json:"user_is_active"`
	UserCreatedAt time.Time  `json:"user_created_at"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"` // detik
	User         UserResponse `json:"user"`
}

func ToUserResponse(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserEmail:     m.UserEmail,
		UserFullName:  m.UserFullName,
		UserRole:      m.UserRole,
		UserSchoolID:  m.UserSchoolID,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
