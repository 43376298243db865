// file: internals/features/finance/invoices/service/invoice_number.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	invoiceModel "sekolahku_backend/internals/features/finance/invoices/model"
)

/* =======================================================
   PENOMORAN INVOICE — "INV-{YYYY}{MM}-{NNNN}"
   Sequence per (sekolah, tahun-bulan); mulai 0001,
   reset saat bulan berganti.
======================================================= */

// InvoiceNumberPrefix: "INV-202409-" untuk September 2024.
func InvoiceNumberPrefix(t time.Time) string {
	return fmt.Sprintf("INV-%s-", t.Format("200601"))
}

// NextInvoiceNumber: hitung nomor berikut dari nomor terakhir bulan ini.
// last == "" berarti belum ada invoice untuk (sekolah, bulan) tsb.
// Suffix zero-padded 4 digit; lewat 9999 melebar ke 5 digit (lihat
// ordering di GenerateInvoiceNumber).
func NextInvoiceNumber(last string, now time.Time) (string, error) {
	prefix := InvoiceNumberPrefix(now)
	if last == "" {
		return prefix + "0001", nil
	}
	if !strings.HasPrefix(last, prefix) {
		// nomor terakhir dari bulan lain → sequence mulai ulang
		return prefix + "0001", nil
	}
	seqStr := strings.TrimPrefix(last, prefix)
	seq, err := strconv.Atoi(seqStr)
	if err != nil {
		return "", fmt.Errorf("nomor invoice terakhir tidak valid: %q", last)
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1), nil
}

// GenerateInvoiceNumber: baca nomor tertinggi (sekolah, prefix bulan ini)
// lalu +1. Baris terakhir dikunci FOR UPDATE supaya dua request konkuren
// dalam satu tenant-bulan terserialisasi (bukan cuma ketangkap unique index).
// Order length dulu: suffix bisa tumbuh ke 5 digit setelah 9999, dan
// sort leksikografis murni akan salah pilih ("9999" > "10000").
func GenerateInvoiceNumber(tx *gorm.DB, schoolID uuid.UUID, now time.Time) (string, error) {
	prefix := InvoiceNumberPrefix(now)

	var lastInv invoiceModel.InvoiceModel
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("invoice_school_id = ? AND invoice_number LIKE ?", schoolID, prefix+"%").
		Order("length(invoice_number) DESC, invoice_number DESC").
		Limit(1).
		First(&lastInv).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		return NextInvoiceNumber("", now)
	}
	return NextInvoiceNumber(lastInv.InvoiceNumber, now)
}
