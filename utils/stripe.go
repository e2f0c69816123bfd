package utils

import (
	"os"

	"mealmate/logger"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// StripeGateway is the live payment gateway. It satisfies
// services.PaymentGateway.
type StripeGateway struct{}

// InitStripe loads the server-held secret key. The key must be set before
// any intent is created.
func InitStripe() {
	key := os.Getenv("PAYMENT_GATEWAY_KEY")
	if key == "" {
		logger.Fatal("PAYMENT_GATEWAY_KEY not set")
	}
	stripe.Key = key
}

// CreateIntent creates a card payment intent in USD and returns the client
// secret used to confirm it from the browser.
func (StripeGateway) CreateIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
