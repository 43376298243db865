// file: internals/features/finance/invoices/dto/invoice_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	invoiceModel "sekolahku_backend/internals/features/finance/invoices/model"
)

func sampleInvoice() invoiceModel.InvoiceModel {
	return invoiceModel.InvoiceModel{
		InvoiceID:           uuid.New(),
		InvoiceSchoolID:     uuid.New(),
		InvoiceStudentID:    uuid.New(),
		InvoiceNumber:       "INV-202409-0001",
		InvoiceAcademicYear: "2024-2025",
		InvoiceTerm:         invoiceModel.TermFirst,
		InvoiceIssueDate:    datatypes.Date(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)),
		InvoiceDueDate:      datatypes.Date(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)),
		InvoiceTotalAmount:  decimal.RequireFromString("551"),
		InvoicePaidAmount:   decimal.Zero,
		InvoiceStatus:       invoiceModel.InvoiceStatusPending,
		InvoiceLineItems: []invoiceModel.InvoiceLineItemModel{
			{
				InvoiceLineItemID:          uuid.New(),
				InvoiceLineItemDescription: "SPP September",
				InvoiceLineItemQuantity:    2,
				InvoiceLineItemUnitPrice:   decimal.RequireFromString("100.25"),
				InvoiceLineItemAmount:      decimal.RequireFromString("200.5"),
			},
		},
		InvoiceCreatedAt: time.Now(),
	}
}

func TestToInvoiceResponseFormatsAmounts(t *testing.T) {
	m := sampleInvoice()
	resp := ToInvoiceResponse(m, nil, "IDR")

	assert.Equal(t, "INV-202409-0001", resp.InvoiceNumber)
	assert.Equal(t, "551.00", resp.TotalAmount, "selalu dua digit desimal")
	assert.Equal(t, "0.00", resp.PaidAmount)
	assert.Equal(t, "Rp 551.00", resp.TotalAmountDisplay)
	assert.Equal(t, "2024-09-01", resp.IssueDate)
	assert.Equal(t, "2024-09-30", resp.DueDate)

	require.Len(t, resp.LineItems, 1)
	assert.Equal(t, "100.25", resp.LineItems[0].UnitPrice)
	assert.Equal(t, "200.50", resp.LineItems[0].Amount)
}

func TestToInvoiceResponseStudentProjection(t *testing.T) {
	m := sampleInvoice()
	sp := &StudentProjection{
		StudentID:       m.InvoiceStudentID,
		StudentNIS:      "2024001",
		StudentFullName: "Budi Santoso",
	}
	resp := ToInvoiceResponse(m, sp, "IDR")
	require.NotNil(t, resp.Student)
	assert.Equal(t, "Budi Santoso", resp.Student.StudentFullName)

	// tanpa projection: field student nil, bukan struct kosong
	resp = ToInvoiceResponse(m, nil, "IDR")
	assert.Nil(t, resp.Student)
}

func TestDeriveDisplayStatus(t *testing.T) {
	now := time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)
	past := datatypes.Date(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC))
	future := datatypes.Date(time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name   string
		status invoiceModel.InvoiceStatus
		due    datatypes.Date
		want   invoiceModel.InvoiceStatus
	}{
		{"pending lewat due jadi OVERDUE", invoiceModel.InvoiceStatusPending, past, invoiceModel.InvoiceStatusOverdue},
		{"partially paid lewat due jadi OVERDUE", invoiceModel.InvoiceStatusPartiallyPaid, past, invoiceModel.InvoiceStatusOverdue},
		{"pending belum due tetap PENDING", invoiceModel.InvoiceStatusPending, future, invoiceModel.InvoiceStatusPending},
		{"paid tidak pernah OVERDUE", invoiceModel.InvoiceStatusPaid, past, invoiceModel.InvoiceStatusPaid},
		{"cancelled tidak pernah OVERDUE", invoiceModel.InvoiceStatusCancelled, past, invoiceModel.InvoiceStatusCancelled},
		{"refunded tidak pernah OVERDUE", invoiceModel.InvoiceStatusRefunded, past, invoiceModel.InvoiceStatusRefunded},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := sampleInvoice()
			m.InvoiceStatus = tc.status
			m.InvoiceDueDate = tc.due
			assert.Equal(t, tc.want, DeriveDisplayStatus(m, now))
		})
	}
}

// "Hari ini" mengikuti zona server, bukan UTC: jam 3 pagi WIB tanggal 1
// masih jam 8 malam UTC tanggal 30 — invoice due tanggal 30 sudah telat.
func TestDeriveDisplayStatusLocalDay(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	now := time.Date(2024, 10, 1, 3, 0, 0, 0, wib) // = 2024-09-30 20:00 UTC

	m := sampleInvoice()
	m.InvoiceStatus = invoiceModel.InvoiceStatusPending

	m.InvoiceDueDate = datatypes.Date(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, invoiceModel.InvoiceStatusOverdue, DeriveDisplayStatus(m, now))

	// due hari ini (tanggal lokal) belum telat
	m.InvoiceDueDate = datatypes.Date(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, invoiceModel.InvoiceStatusPending, DeriveDisplayStatus(m, now))
}

func TestBadgeForStatus(t *testing.T) {
	assert.Equal(t, "Lunas", BadgeForStatus(invoiceModel.InvoiceStatusPaid).Label)
	assert.Equal(t, "Terlambat", BadgeForStatus(invoiceModel.InvoiceStatusOverdue).Label)

	// status tak dikenal → "N/A", bukan panic/error
	badge := BadgeForStatus(invoiceModel.InvoiceStatus("GARBAGE"))
	assert.Equal(t, "N/A", badge.Label)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-09-01", FormatDate(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "N/A", FormatDate(time.Time{}))
}
