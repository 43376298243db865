// file: internals/features/finance/invoices/service/writer.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	invoiceModel "sekolahku_backend/internals/features/finance/invoices/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   PERSISTENCE WRITER — header + line items satu transaksi:
   semua baris commit atau tidak sama sekali.
   paid_amount=0 & status=PENDING selalu dipaksa dari server
   (bukan dari caller).
======================================================= */

// maxNumberRetries: penomoran bisa kalah race walau sudah FOR UPDATE
// (mis. lewat pgbouncer transaction pooling); unique index jadi penjaga
// terakhir — tabrakan di-retry terbatas, bukan langsung 409.
const maxNumberRetries = 2

func CreateInvoice(db *gorm.DB, schoolID uuid.UUID, in *CreateInput, now time.Time) (*invoiceModel.InvoiceModel, error) {
	lineInputs := make([]LineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lineInputs = append(lineInputs, LineInput{Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	totals, grandTotal := ComputeLineTotals(lineInputs)

	var created *invoiceModel.InvoiceModel
	var lastErr error

	for attempt := 0; attempt <= maxNumberRetries; attempt++ {
		lastErr = db.Transaction(func(tx *gorm.DB) error {
			// 1) Referensi dicek ulang DI DALAM transaksi (tenant-scoped)
			feeIDs := make([]uuid.UUID, 0, len(in.Lines))
			for _, l := range in.Lines {
				if l.FeeStructureID != nil {
					feeIDs = append(feeIDs, *l.FeeStructureID)
				}
			}
			if err := CheckReferences(tx, schoolID, in.StudentID, feeIDs); err != nil {
				return err
			}

			// 2) Nomor: baca-terakhir + increment, serialized via row lock
			number, err := GenerateInvoiceNumber(tx, schoolID, now)
			if err != nil {
				return err
			}

			// 3) Rakit header + items; initial state dipaksa server-side
			inv := invoiceModel.InvoiceModel{
				InvoiceSchoolID:     schoolID,
				InvoiceStudentID:    in.StudentID,
				InvoiceNumber:       number,
				InvoiceAcademicYear: in.AcademicYear,
				InvoiceTerm:         invoiceModel.InvoiceTerm(in.Term),
				InvoiceIssueDate:    datatypes.Date(in.IssueDate),
				InvoiceDueDate:      datatypes.Date(in.DueDate),
				InvoiceTotalAmount:  grandTotal,
				InvoiceStatus:       invoiceModel.InvoiceStatusPending,
				InvoiceNotes:        in.Notes,
			}

			items := make([]invoiceModel.InvoiceLineItemModel, 0, len(in.Lines))
			for i, l := range in.Lines {
				items = append(items, invoiceModel.InvoiceLineItemModel{
					InvoiceLineItemFeeStructureID: l.FeeStructureID,
					InvoiceLineItemDescription:    l.Description,
					InvoiceLineItemQuantity:       totals[i].Quantity,
					InvoiceLineItemUnitPrice:      totals[i].UnitPrice,
					InvoiceLineItemAmount:         totals[i].Amount,
				})
			}
			inv.InvoiceLineItems = items

			// 4) Satu Create: gorm insert header + asosiasi dalam tx yang sama
			if err := tx.Create(&inv).Error; err != nil {
				return err
			}

			created = &inv
			return nil
		})

		if lastErr == nil {
			return created, nil
		}
		// hanya tabrakan nomor yang di-retry; error lain langsung naik
		if !helper.IsUniqueViolation(lastErr) {
			return nil, lastErr
		}
	}
	return nil, lastErr
}
