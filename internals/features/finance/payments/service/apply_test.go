// file: internals/features/finance/payments/service/apply_test.go
package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceModel "sekolahku_backend/internals/features/finance/invoices/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func pendingInvoice(total string) *invoiceModel.InvoiceModel {
	return &invoiceModel.InvoiceModel{
		InvoiceTotalAmount: d(total),
		InvoicePaidAmount:  decimal.Zero,
		InvoiceStatus:      invoiceModel.InvoiceStatusPending,
	}
}

func TestApplyPaymentFull(t *testing.T) {
	inv := pendingInvoice("150000.00")
	require.NoError(t, ApplyPayment(inv, d("150000.00")))

	assert.Equal(t, invoiceModel.InvoiceStatusPaid, inv.InvoiceStatus)
	assert.True(t, inv.InvoicePaidAmount.Equal(d("150000.00")))
}

func TestApplyPaymentPartialThenFull(t *testing.T) {
	inv := pendingInvoice("150000.00")

	require.NoError(t, ApplyPayment(inv, d("50000.00")))
	assert.Equal(t, invoiceModel.InvoiceStatusPartiallyPaid, inv.InvoiceStatus)
	assert.True(t, inv.InvoicePaidAmount.Equal(d("50000.00")))

	require.NoError(t, ApplyPayment(inv, d("100000.00")))
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, inv.InvoiceStatus)
	assert.True(t, inv.InvoicePaidAmount.Equal(d("150000.00")))
}

func TestApplyPaymentOverpaymentRejected(t *testing.T) {
	inv := pendingInvoice("150000.00")
	err := ApplyPayment(inv, d("150000.01"))
	require.ErrorIs(t, err, ErrOverpayment)
	// invoice tidak berubah saat ditolak
	assert.Equal(t, invoiceModel.InvoiceStatusPending, inv.InvoiceStatus)
	assert.True(t, inv.InvoicePaidAmount.IsZero())
}

func TestApplyPaymentOverpaymentOnRemainder(t *testing.T) {
	inv := pendingInvoice("150000.00")
	require.NoError(t, ApplyPayment(inv, d("100000.00")))

	// sisa 50000, bayar 60000 → tolak
	err := ApplyPayment(inv, d("60000.00"))
	require.ErrorIs(t, err, ErrOverpayment)
	assert.True(t, inv.InvoicePaidAmount.Equal(d("100000.00")))
}

func TestApplyPaymentAmountMustBePositive(t *testing.T) {
	inv := pendingInvoice("150000.00")
	require.ErrorIs(t, ApplyPayment(inv, decimal.Zero), ErrAmountNotPositive)
	require.ErrorIs(t, ApplyPayment(inv, d("-5")), ErrAmountNotPositive)
}

func TestApplyPaymentStatusGuard(t *testing.T) {
	for _, st := range []invoiceModel.InvoiceStatus{
		invoiceModel.InvoiceStatusPaid,
		invoiceModel.InvoiceStatusCancelled,
		invoiceModel.InvoiceStatusRefunded,
	} {
		inv := pendingInvoice("1000.00")
		inv.InvoiceStatus = st
		err := ApplyPayment(inv, d("100.00"))
		assert.ErrorIs(t, err, ErrInvoiceNotPayable, "status %s", st)
	}
}

func TestCancelInvoice(t *testing.T) {
	inv := pendingInvoice("1000.00")
	require.NoError(t, CancelInvoice(inv))
	assert.Equal(t, invoiceModel.InvoiceStatusCancelled, inv.InvoiceStatus)
}

func TestCancelInvoiceRejectedAfterPayment(t *testing.T) {
	inv := pendingInvoice("1000.00")
	require.NoError(t, ApplyPayment(inv, d("100.00")))
	require.ErrorIs(t, CancelInvoice(inv), ErrCancelNotAllowed)
}

func TestRefundInvoice(t *testing.T) {
	inv := pendingInvoice("1000.00")
	require.NoError(t, ApplyPayment(inv, d("1000.00")))
	require.NoError(t, RefundInvoice(inv))
	assert.Equal(t, invoiceModel.InvoiceStatusRefunded, inv.InvoiceStatus)

	// refund hanya dari PAID
	other := pendingInvoice("1000.00")
	require.ErrorIs(t, RefundInvoice(other), ErrRefundNotAllowed)
}
