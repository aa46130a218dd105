package services

import (
	"errors"
	"math"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var ErrGatewayDisabled = errors.New("payment gateway is not configured")

// PaymentGateway wraps the Midtrans Snap client used for ONLINE payments.
// Disabled (nil-safe) when no server key is configured.
type PaymentGateway struct {
	client  snap.Client
	enabled bool
}

func NewPaymentGateway(serverKey string, production bool) *PaymentGateway {
	g := &PaymentGateway{}
	if serverKey == "" {
		return g
	}
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	g.client.New(serverKey, env)
	g.enabled = true
	return g
}

func (g *PaymentGateway) Enabled() bool {
	return g != nil && g.enabled
}

// Checkout creates a Snap transaction for the given order and returns the
// token and redirect URL the client completes the payment with.
func (g *PaymentGateway) Checkout(orderID string, amount float64, description, customerName, customerEmail string) (string, string, error) {
	if !g.Enabled() {
		return "", "", ErrGatewayDisabled
	}

	gross := int64(math.Round(amount))
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    orderID,
				Price: gross,
				Qty:   1,
				Name:  description,
			},
		},
	}

	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
