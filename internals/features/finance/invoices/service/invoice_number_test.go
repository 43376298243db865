// file: internals/features/finance/invoices/service/invoice_number_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceNumberPrefix(t *testing.T) {
	sep := time.Date(2024, 9, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-202409-", InvoiceNumberPrefix(sep))

	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-202501-", InvoiceNumberPrefix(jan))
}

func TestNextInvoiceNumber(t *testing.T) {
	sep := time.Date(2024, 9, 15, 10, 0, 0, 0, time.UTC)
	okt := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last string
		now  time.Time
		want string
	}{
		{
			name: "bulan baru tanpa invoice mulai dari 0001",
			last: "",
			now:  sep,
			want: "INV-202409-0001",
		},
		{
			name: "nomor kedua increment dari yang pertama",
			last: "INV-202409-0001",
			now:  sep,
			want: "INV-202409-0002",
		},
		{
			name: "padding tetap 4 digit",
			last: "INV-202409-0042",
			now:  sep,
			want: "INV-202409-0043",
		},
		{
			name: "lewat 9999 lanjut 5 digit",
			last: "INV-202409-9999",
			now:  sep,
			want: "INV-202409-10000",
		},
		{
			// setelah melebar ke 5 digit, increment harus lanjut dari
			// nomor 5 digit itu — bukan balik menghasilkan 10000 lagi
			name: "suffix 5 digit tetap increment",
			last: "INV-202409-10000",
			now:  sep,
			want: "INV-202409-10001",
		},
		{
			name: "ganti bulan reset ke 0001",
			last: "INV-202409-0017",
			now:  okt,
			want: "INV-202410-0001",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextInvoiceNumber(tc.last, tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextInvoiceNumberInvalidSuffix(t *testing.T) {
	sep := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)
	_, err := NextInvoiceNumber("INV-202409-ABCD", sep)
	require.Error(t, err)
}
