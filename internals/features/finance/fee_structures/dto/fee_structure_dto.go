// file: internals/features/finance/fee_structures/dto/fee_structure_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/finance/fee_structures/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ===============================
   REQUEST DTO
=================================*/

type FeeStructureCreateRequest struct {
	FeeStructureName         string            `json:"fee_structure_name" validate:"required,min=2,max=120"`
	FeeStructureDescription  *string           `json:"fee_structure_description" validate:"omitempty,max=2000"`
	FeeStructureAmount       decimal.Decimal   `json:"fee_structure_amount" validate:"required"`
	FeeStructureAcademicYear string            `json:"fee_structure_academic_year" validate:"required,len=9"`
	FeeStructureTerm         *string           `json:"fee_structure_term" validate:"omitempty,oneof=FIRST_TERM SECOND_TERM THIRD_TERM"`
	FeeStructureFrequency    string            `json:"fee_structure_frequency" validate:"omitempty,oneof=monthly term annual one_time"`
	FeeStructureMetadata     datatypes.JSONMap `json:"fee_structure_metadata" validate:"omitempty"`
}

// Partial update: hanya field non-nil yang diterapkan.
type FeeStructureUpdateRequest struct {
	FeeStructureName         *string            `json:"fee_structure_name" validate:"omitempty,min=2,max=120"`
	FeeStructureDescription  *string            `json:"fee_structure_description" validate:"omitempty,max=2000"`
	FeeStructureAmount       *decimal.Decimal   `json:"fee_structure_amount" validate:"omitempty"`
	FeeStructureAcademicYear *string            `json:"fee_structure_academic_year" validate:"omitempty,len=9"`
	FeeStructureTerm         *string            `json:"fee_structure_term" validate:"omitempty,oneof=FIRST_TERM SECOND_TERM THIRD_TERM"`
	FeeStructureFrequency    *string            `json:"fee_structure_frequency" validate:"omitempty,oneof=monthly term annual one_time"`
	FeeStructureMetadata     *datatypes.JSONMap `json:"fee_structure_metadata" validate:"omitempty"`
}

func (r *FeeStructureUpdateRequest) Apply(m *model.FeeStructureModel) {
	if r.FeeStructureName != nil {
		m.FeeStructureName = *r.FeeStructureName
	}
	if r.FeeStructureDescription != nil {
		m.FeeStructureDescription = r.FeeStructureDescription
	}
	if r.FeeStructureAmount != nil {
		m.FeeStructureAmount = helper.FixedAmount(*r.FeeStructureAmount)
	}
	if r.FeeStructureAcademicYear != nil {
		m.FeeStructureAcademicYear = *r.FeeStructureAcademicYear
	}
	if r.FeeStructureTerm != nil {
		m.FeeStructureTerm = r.FeeStructureTerm
	}
	if r.FeeStructureFrequency != nil {
		m.FeeStructureFrequency = *r.FeeStructureFrequency
	}
	if r.FeeStructureMetadata != nil {
		m.FeeStructureMetadata = *r.FeeStructureMetadata
	}
}

/* ===============================
   RESPONSE DTO
=================================*/

type FeeStructureResponse struct {
	FeeStructureID           uuid.UUID         `json:"fee_structure_id"`
	FeeStructureName         string            `json:"fee_structure_name"`
	FeeStructureDescription  *string           `json:"fee_structure_description,omitempty"`
	FeeStructureAmount       string            `json:"fee_structure_amount"`
	FeeStructureAcademicYear string            `json:"fee_structure_academic_year"`
	FeeStructureTerm         *string           `json:"fee_structure_term,omitempty"`
	FeeStructureFrequency    string            `json:"fee_structure_frequency"`
	FeeStructureMetadata     datatypes.JSONMap `json:"fee_structure_metadata,omitempty"`
	FeeStructureCreatedAt    time.Time         `json:"fee_structure_created_at"`
	FeeStructureUpdatedAt    time.Time         `json:"fee_structure_updated_at"`
}

func ToFeeStructureResponse(m model.FeeStructureModel) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID:           m.FeeStructureID,
		FeeStructureName:         m.FeeStructureName,
		FeeStructureDescription:  m.FeeStructureDescription,
		FeeStructureAmount:       helper.FormatAmount(m.FeeStructureAmount),
		FeeStructureAcademicYear: m.FeeStructureAcademicYear,
		FeeStructureTerm:         m.FeeStructureTerm,
		FeeStructureFrequency:    m.FeeStructureFrequency,
		FeeStructureMetadata:     m.FeeStructureMetadata,
		FeeStructureCreatedAt:    m.FeeStructureCreatedAt,
		FeeStructureUpdatedAt:    m.FeeStructureUpdatedAt,
	}
}

func ToFeeStructureResponses(list []model.FeeStructureModel) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFeeStructureResponse(m))
	}
	return out
}
