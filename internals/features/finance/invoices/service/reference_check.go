// file: internals/features/finance/invoices/service/reference_check.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feeModel "sekolahku_backend/internals/features/finance/fee_structures/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

/* =======================================================
   CEK INTEGRITAS REFERENSI — semua referensi diverifikasi
   SEBELUM write: (a) ada, (b) milik tenant yang sama.
   Lebih baik error ber-field yang actionable daripada
   constraint violation mentah dari storage.
======================================================= */

// RefNotFoundError menyebut field + id yang bermasalah.
type RefNotFoundError struct {
	Field string
	ID    uuid.UUID
}

func (e *RefNotFoundError) Error() string {
	return fmt.Sprintf("%s: referensi %s tidak ditemukan untuk sekolah ini", e.Field, e.ID)
}

// CheckReferences: siswa + tiap fee structure yang di-refer line item.
// Jalan sampai tuntas sebelum write apapun.
func CheckReferences(tx *gorm.DB, schoolID, studentID uuid.UUID, feeStructureIDs []uuid.UUID) error {
	var count int64
	if err := tx.Model(&studentModel.StudentModel{}).
		Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &RefNotFoundError{Field: "student_id", ID: studentID}
	}

	if len(feeStructureIDs) == 0 {
		return nil
	}

	// dedup dulu, lalu cek keberadaan per tenant sekali query
	uniq := make([]uuid.UUID, 0, len(feeStructureIDs))
	seen := map[uuid.UUID]struct{}{}
	for _, id := range feeStructureIDs {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			uniq = append(uniq, id)
		}
	}

	var found []uuid.UUID
	if err := tx.Model(&feeModel.FeeStructureModel{}).
		Where("fee_structure_id IN ? AND fee_structure_school_id = ?", uniq, schoolID).
		Pluck("fee_structure_id", &found).Error; err != nil {
		return err
	}

	foundSet := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		foundSet[id] = struct{}{}
	}
	for _, id := range uniq {
		if _, ok := foundSet[id]; !ok {
			return &RefNotFoundError{Field: "fee_structure_id", ID: id}
		}
	}
	return nil
}
