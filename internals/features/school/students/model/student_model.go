// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — siswa (subjek tagihan, tenant-scoped)
============================================== */

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// Tenant
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index;uniqueIndex:uniq_school_student_nis,priority:1" json:"student_school_id"`

	// NIS = nomor induk siswa (external id, unik per sekolah)
	StudentNIS      string `gorm:"column:student_nis;type:varchar(30);not null;uniqueIndex:uniq_school_student_nis,priority:2" json:"student_nis"`
	StudentFullName string `gorm:"column:student_full_name;type:varchar(120);not null" json:"student_full_name"`

	StudentGradeLabel *string `gorm:"column:student_grade_label;type:varchar(40)" json:"student_grade_label,omitempty"`
	StudentIsActive   bool    `gorm:"column:student_is_active;not null;default:true;index" json:"student_is_active"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;type:timestamptz;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *StudentModel) BeforeUpdate(tx *gorm.DB) error {
	m.StudentUpdatedAt = time.Now()
	return nil
}
