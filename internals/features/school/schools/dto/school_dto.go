// file: internals/features/school/schools/dto/school_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"sekolahku_backend/internals/features/school/schools/model"
)

/* ===============================
   REQUEST DTO
=================================*/

type SchoolUpdateRequest struct {
	SchoolName        *string  `json:"school_name" validate:"omitempty,min=2,max=120"`
	SchoolAddress     *string  `json:"school_address" validate:"omitempty,max=2000"`
	SchoolPhone       *string  `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail       *string  `json:"school_email" validate:"omitempty,email,max=120"`
	SchoolGradeLabels []string `json:"school_grade_labels" validate:"omitempty,dive,min=1,max=40"`
	SchoolCurrency    *string  `json:"school_currency" validate:"omitempty,len=3,uppercase"`
}

func (r *SchoolUpdateRequest) Apply(m *model.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = strings.TrimSpace(*r.SchoolName)
	}
	if r.SchoolAddress != nil {
		m.SchoolAddress = r.SchoolAddress
	}
	if r.SchoolPhone != nil {
		m.SchoolPhone = r.SchoolPhone
	}
	if r.SchoolEmail != nil {
		m.SchoolEmail = r.SchoolEmail
	}
	if r.SchoolGradeLabels != nil {
		m.SchoolGradeLabels = pq.StringArray(r.SchoolGradeLabels)
	}
	if r.SchoolCurrency != nil {
		m.SchoolCurrency = *r.SchoolCurrency
	}
}

/* ===============================
   RESPONSE DTO
=================================*/

type SchoolResponse struct {
	SchoolID          uuid.UUID `json:"school_id"`
	SchoolName        string    `json:"school_name"`
	SchoolSlug        string    `json:"school_slug"`
	SchoolAddress     *string   `json:"school_address,omitempty"`
	SchoolPhone       *string   `json:"school_phone,omitempty"`
	SchoolEmail       *string   `json:"school_email,omitempty"`
	SchoolGradeLabels []string  `json:"school_grade_labels,omitempty"`
	SchoolCurrency    string    `json:"school_currency"`
	SchoolHasLogo     bool      `json:"school_has_logo"`
	SchoolIsActive    bool      `json:"school_is_active"`
	SchoolCreatedAt   time.Time `json:"school_created_at"`
	SchoolUpdatedAt   time.Time `json:"school_updated_at"`
}

func ToSchoolResponse(m model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolID:          m.SchoolID,
		SchoolName:        m.SchoolName,
		SchoolSlug:        m.SchoolSlug,
		SchoolAddress:     m.SchoolAddress,
		SchoolPhone:       m.SchoolPhone,
		SchoolEmail:       m.SchoolEmail,
		SchoolGradeLabels: []string(m.SchoolGradeLabels),
		SchoolCurrency:    m.SchoolCurrency,
		SchoolHasLogo:     len(m.SchoolLogoWebP) > 0,
		SchoolIsActive:    m.SchoolIsActive,
		SchoolCreatedAt:   m.SchoolCreatedAt,
		SchoolUpdatedAt:   m.SchoolUpdatedAt,
	}
}
