package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"tourstravels_backend/internals/configs"
)

var SnapClient snap.Client

// InitMidtrans initializes the Midtrans Snap client with the server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// SnapGateway creates a hosted checkout token for a charge.
type SnapGateway interface {
	SnapToken(orderID string, amount float64, name, email string) (string, error)
}

type midtransGateway struct{}

// NewSnapGateway returns the Midtrans gateway, or nil when no server key
// is configured; a nil gateway means payments are settled immediately.
func NewSnapGateway() SnapGateway {
	if configs.MidtransServerKey == "" {
		return nil
	}
	return midtransGateway{}
}

func (midtransGateway) SnapToken(orderID string, amount float64, name, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
