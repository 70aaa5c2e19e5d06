package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// StripeClient talks to the payment processor's payment-intent API. The
// base URL is configurable so tests can point it at a local server.
type StripeClient struct {
	http      *resty.Client
	secretKey string
}

// PaymentIntent is the subset of the processor response the API exposes.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`

	// Raw keeps the full processor response for the payment record.
	Raw []byte `json:"-"`
}

func NewStripeClient(apiURL, secretKey string, timeout time.Duration) *StripeClient {
	client := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(timeout)

	return &StripeClient{
		http:      client,
		secretKey: secretKey,
	}
}

// ToMinorUnits converts a decimal major-unit amount to the processor's
// integer minor units (cents): multiply by 100, truncate.
func ToMinorUnits(amount float64) int64 {
	return int64(amount * 100)
}

// CreatePaymentIntent registers an intent for the given amount and
// returns the confirmable client secret.
func (s *StripeClient) CreatePaymentIntent(ctx context.Context, amount float64, currency string) (*PaymentIntent, error) {
	if currency == "" {
		currency = "usd"
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(s.secretKey).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(ToMinorUnits(amount), 10),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		Post("/v1/payment_intents")
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("payment intent API error: %s", resp.String())
	}

	var intent PaymentIntent
	if err := json.Unmarshal(resp.Body(), &intent); err != nil {
		return nil, fmt.Errorf("failed to parse payment intent response: %v", err)
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("payment intent response missing client secret")
	}
	intent.Raw = resp.Body()

	return &intent, nil
}
