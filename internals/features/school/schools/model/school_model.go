// file: internals/features/school/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — tenant (satu sekolah = satu tenant)
============================================== */

type SchoolModel struct {
	// PK
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"school_id"`

	SchoolName string `gorm:"column:school_name;type:varchar(120);not null" json:"school_name"`
	SchoolSlug string `gorm:"column:school_slug;type:varchar(80);not null;uniqueIndex" json:"school_slug"`

	SchoolAddress *string `gorm:"column:school_address;type:text" json:"school_address,omitempty"`
	SchoolPhone   *string `gorm:"column:school_phone;type:varchar(30)" json:"school_phone,omitempty"`
	SchoolEmail   *string `gorm:"column:school_email;type:varchar(120)" json:"school_email,omitempty"`

	// Label tingkatan kelas (mis. ["Kelas 1", ..., "Kelas 6"])
	SchoolGradeLabels pq.StringArray `gorm:"column:school_grade_labels;type:text[]" json:"school_grade_labels,omitempty"`

	// Mata uang untuk tampilan nominal invoice
	SchoolCurrency string `gorm:"column:school_currency;type:varchar(3);not null;default:'IDR'" json:"school_currency"`

	// Logo hasil normalisasi (webp)
	SchoolLogoWebP []byte `gorm:"column:school_logo_webp;type:bytea" json:"-"`

	SchoolIsActive bool `gorm:"column:school_is_active;not null;default:true" json:"school_is_active"`

	// Audit
	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;type:timestamptz;not null;default:now()" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;type:timestamptz;not null;default:now()" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;type:timestamptz;index" json:"-"`
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.SchoolCreatedAt.IsZero() {
		m.SchoolCreatedAt = now
	}
	m.SchoolUpdatedAt = now
	return nil
}

func (m *SchoolModel) BeforeUpdate(tx *gorm.DB) error {
	m.SchoolUpdatedAt = time.Now()
	return nil
}
