// file: internals/features/finance/fee_structures/model/fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — definisi biaya reusable (tenant-scoped)
   Di-refer line item secara lemah (SET NULL saat fee dihapus):
   histori line item tidak boleh ikut hilang.
============================================== */

type FeeStructureModel struct {
	// PK
	FeeStructureID uuid.UUID `gorm:"column:fee_structure_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_structure_id"`

	// Tenant
	FeeStructureSchoolID uuid.UUID `gorm:"column:fee_structure_school_id;type:uuid;not null;index" json:"fee_structure_school_id"`

	FeeStructureName        string  `gorm:"column:fee_structure_name;type:varchar(120);not null" json:"fee_structure_name"`
	FeeStructureDescription *string `gorm:"column:fee_structure_description;type:text" json:"fee_structure_description,omitempty"`

	// Nominal fixed-point 2 digit, harus positif
	FeeStructureAmount decimal.Decimal `gorm:"column:fee_structure_amount;type:numeric(12,2);not null" json:"fee_structure_amount"`

	FeeStructureAcademicYear string  `gorm:"column:fee_structure_academic_year;type:varchar(9);not null;index" json:"fee_structure_academic_year"`
	FeeStructureTerm         *string `gorm:"column:fee_structure_term;type:varchar(20)" json:"fee_structure_term,omitempty"`
	FeeStructureFrequency    string  `gorm:"column:fee_structure_frequency;type:varchar(40);not null;default:'monthly'" json:"fee_structure_frequency"`

	// Metadata bebas (mis. keterangan potongan, kode akun)
	FeeStructureMetadata datatypes.JSONMap `gorm:"column:fee_structure_metadata;type:jsonb" json:"fee_structure_metadata,omitempty"`

	// Audit
	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;type:timestamptz;not null;default:now()" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;type:timestamptz;not null;default:now()" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;type:timestamptz;index" json:"-"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }

func (m *FeeStructureModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeStructureCreatedAt.IsZero() {
		m.FeeStructureCreatedAt = now
	}
	m.FeeStructureUpdatedAt = now
	return nil
}

func (m *FeeStructureModel) BeforeUpdate(tx *gorm.DB) error {
	m.FeeStructureUpdatedAt = time.Now()
	return nil
}
