// file: internals/features/finance/payments/service/midtrans_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	snapClient  snap.Client
	snapEnabled bool
)

// InitMidtrans dipanggil sekali dari main. Server key kosong berarti
// checkout online dimatikan (pembayaran manual tetap jalan).
func InitMidtrans(serverKey string, useProd bool) {
	serverKey = strings.TrimSpace(serverKey)
	if serverKey == "" {
		snapEnabled = false
		return
	}

	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	snapClient.New(serverKey, env)
	snapEnabled = true
	log.Printf("✅ Midtrans snap siap (production=%v)", useProd)
}

func MidtransEnabled() bool { return snapEnabled }

type SnapCheckout struct {
	OrderID       string
	GrossAmount   int64 // rupiah utuh; midtrans tidak menerima pecahan
	CustomerName  string
	CustomerEmail string
}

// CreateSnapTransaction membuat snap token untuk satu checkout invoice.
func CreateSnapTransaction(in SnapCheckout) (token, redirectURL string, err error) {
	if !snapEnabled {
		return "", "", errors.New("midtrans belum dikonfigurasi")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: in.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: in.CustomerName,
			Email: in.CustomerEmail,
		},
	}

	resp, mErr := snapClient.CreateTransaction(req)
	if mErr != nil {
		return "", "", fmt.Errorf("midtrans create transaction: %w", mErr)
	}
	return resp.Token, resp.RedirectURL, nil
}
