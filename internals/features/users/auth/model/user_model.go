// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — akun admin (owner / school_admin)
============================================== */

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	UserEmail    string `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex" json:"user_email"`
	UserFullName string `gorm:"column:user_full_name;type:varchar(120);not null" json:"user_full_name"`

	// bcrypt hash; kosong untuk akun google-only
	UserPasswordHash *string `gorm:"column:user_password_hash;type:varchar(100)" json:"-"`
	UserGoogleSub    *string `gorm:"column:user_google_sub;type:varchar(64);uniqueIndex" json:"-"`

	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'school_admin'" json:"user_role"`

	// Tenant link; NULL = belum terasosiasi sekolah (NotAssociated)
	UserSchoolID *uuid.UUID `gorm:"column:user_school_id;type:uuid;index" json:"user_school_id,omitempty"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	// Audit
	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;not null;default:now()" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;not null;default:now()" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;type:timestamptz;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = now
	}
	m.UserUpdatedAt = now
	return nil
}

func (m *UserModel) BeforeUpdate(tx *gorm.DB) error {
	m.UserUpdatedAt = time.Now()
	return nil
}
