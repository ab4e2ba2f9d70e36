package config

import (
	"os"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// PaymentEnabled reports whether a payment gateway key is configured.
// Checkout works without one, the payment link is advisory.
func PaymentEnabled() bool {
	return os.Getenv("MIDTRANS.SERVERKEY") != ""
}

func GenerateSnapURL(orderData snap.Request) (string, error) {
	var client snap.Client
	envi := midtrans.Sandbox
	if os.Getenv("MIDTRANS.ENV") == "production" {
		envi = midtrans.Production
	}
	client.New(os.Getenv("MIDTRANS.SERVERKEY"), envi)

	snapResp, err := client.CreateTransaction(&orderData)
	if err != nil {
		return "", err
	}

	return snapResp.RedirectURL, nil
}
