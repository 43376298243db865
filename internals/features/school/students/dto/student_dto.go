// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/students/model"
)

/* ===============================
   REQUEST DTO
=================================*/

type StudentCreateRequest struct {
	StudentNIS        string  `json:"student_nis" validate:"required,min=1,max=30"`
	StudentFullName   string  `json:"student_full_name" validate:"required,min=2,max=120"`
	StudentGradeLabel *string `json:"student_grade_label" validate:"omitempty,max=40"`
}

type StudentUpdateRequest struct {
	StudentNIS        *string `json:"student_nis" validate:"omitempty,min=1,max=30"`
	StudentFullName   *string `json:"student_full_name" validate:"omitempty,min=2,max=120"`
	StudentGradeLabel *string `json:"student_grade_label" validate:"omitempty,max=40"`
	StudentIsActive   *bool   `json:"student_is_active"`
}

func (r *StudentUpdateRequest) Apply(m *model.StudentModel) {
	if r.StudentNIS != nil {
		m.StudentNIS = strings.TrimSpace(*r.StudentNIS)
	}
	if r.StudentFullName != nil {
		m.StudentFullName = strings.TrimSpace(*r.StudentFullName)
	}
	if r.StudentGradeLabel != nil {
		m.StudentGradeLabel = r.StudentGradeLabel
	}
	if r.StudentIsActive != nil {
		m.StudentIsActive = *r.StudentIsActive
	}
}

/* ===============================
   RESPONSE DTO
=================================*/

type StudentResponse struct {
	StudentID         uuid.UUID `json:"student_id"`
	StudentNIS        string    `json:"student_nis"`
	StudentFullName   string    `json:"student_full_name"`
	StudentGradeLabel *string   `json:"student_grade_label,omitempty"`
	StudentIsActive   bool      `json:"student_is_active"`
	StudentCreatedAt  time.Time `json:"student_created_at"`
	StudentUpdatedAt  time.Time `json:"student_updated_at"`
}

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:         m.StudentID,
		StudentNIS:        m.StudentNIS,
		StudentFullName:   m.StudentFullName,
		StudentGradeLabel: m.StudentGradeLabel,
		StudentIsActive:   m.StudentIsActive,
		StudentCreatedAt:  m.StudentCreatedAt,
		StudentUpdatedAt:  m.StudentUpdatedAt,
	}
}

func ToStudentResponses(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentResponse(m))
	}
	return out
}
