package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

func TestAmountInCents(t *testing.T) {
	cases := map[float64]int64{50: 5000, 19.99: 1999, 0.1 + 0.2: 30}
	for price, want := range cases {
		if got := AmountInCents(price); got != want {
			t.Errorf("AmountInCents(%v) = %d, want %d", price, got, want)
		}
	}
}

func TestStripeProcessorCreatesCardIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.Form.Get("amount") != "5000" || r.Form.Get("currency") != "usd" || r.Form.Get("payment_method_types[0]") != "card" {
			t.Errorf("unexpected params %v", r.Form)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":5000,"currency":"usd","client_secret":"pi_123_secret_abc"}`))
	}))
	defer srv.Close()

	backends := &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL:               stripe.String(srv.URL),
			HTTPClient:        srv.Client(),
			MaxNetworkRetries: stripe.Int64(0),
		}),
	}
	p := &StripeProcessor{api: client.New("sk_test_123", backends)}

	secret, err := p.CreatePaymentIntent(context.Background(), AmountInCents(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "pi_123_secret_abc" {
		t.Fatalf("got client secret %q", secret)
	}
}

func TestStripeProcessorDisabledWithoutKey(t *testing.T) {
	var p PaymentProcessor = NewStripeProcessor("")
	if _, err := p.CreatePaymentIntent(context.Background(), 100); !errors.Is(err, ErrPaymentsDisabled) {
		t.Fatalf("expected ErrPaymentsDisabled, got %v", err)
	}
}
