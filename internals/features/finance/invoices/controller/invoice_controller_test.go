// file: internals/features/finance/invoices/controller/invoice_controller_test.go
package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceModel "sekolahku_backend/internals/features/finance/invoices/model"
)

func TestStatusFilterClauseStoredStatus(t *testing.T) {
	for _, st := range []string{"PENDING", "PARTIALLY_PAID", "PAID", "CANCELLED", "REFUNDED"} {
		cond, args := statusFilterClause(st, time.Now())
		assert.Equal(t, "invoice_status = ?", cond)
		require.Len(t, args, 1)
		assert.Equal(t, st, args[0])
	}
}

// OVERDUE tidak pernah disimpan — filternya harus diterjemahkan ke
// (PENDING|PARTIALLY_PAID) + due date lewat, bukan equality kosong.
func TestStatusFilterClauseOverdue(t *testing.T) {
	now := time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC)
	cond, args := statusFilterClause("OVERDUE", now)

	assert.Equal(t, "invoice_status IN ? AND invoice_due_date < ?", cond)
	require.Len(t, args, 2)
	assert.ElementsMatch(t, []invoiceModel.InvoiceStatus{
		invoiceModel.InvoiceStatusPending,
		invoiceModel.InvoiceStatusPartiallyPaid,
	}, args[0])
	assert.Equal(t, "2024-10-15", args[1])
}
