package payments

import (
	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// Provider wraps the payment gateway. Card data never reaches this process;
// the browser tokenizes the card with the gateway's script and only the
// resulting payment method id crosses our wire.
type Provider struct {
	apiKey string
}

func NewProvider(apiKey string) *Provider {
	stripe.Key = apiKey
	return &Provider{apiKey: apiKey}
}

// ConfirmCardPayment creates and immediately confirms a payment intent for
// an already-tokenized payment method. Amount is in the currency's minor
// unit (poisha for BDT).
func (p *Provider) ConfirmCardPayment(amount int64, currency, paymentMethodID string, metadata map[string]string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(paymentMethodID),
		Confirm:       stripe.Bool(true),
		Metadata:      metadata,
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", errors.Wrap(err, "confirm payment intent")
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return pi.ID, errors.Errorf("payment intent %s not settled: %s", pi.ID, pi.Status)
	}
	return pi.ID, nil
}

// GetPaymentStatus retrieves the current status of a payment intent.
func (p *Provider) GetPaymentStatus(paymentIntentID string) (string, error) {
	pi, err := paymentintent.Get(paymentIntentID, nil)
	if err != nil {
		return "", errors.Wrap(err, "get payment intent")
	}
	return string(pi.Status), nil
}
