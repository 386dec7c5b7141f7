package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var ErrPaymentsDisabled = errors.New("payment processor is not configured")

// PaymentProcessor creates payment intents with an external processor.
type PaymentProcessor interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}

// AmountInCents converts a price in dollars to the smallest currency unit.
func AmountInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

type StripeProcessor struct {
	api *client.API
}

// NewStripeProcessor returns nil when no secret key is configured.
func NewStripeProcessor(secretKey string) *StripeProcessor {
	if secretKey == "" {
		return nil
	}
	return &StripeProcessor{api: client.New(secretKey, nil)}
}

func (p *StripeProcessor) CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error) {
	if p == nil {
		return "", ErrPaymentsDisabled
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
