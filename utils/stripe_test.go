package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{3, 300},
		{10.5, 1050},
		{12.25, 1225},
		{10.999, 1099}, // truncation, not rounding
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToMinorUnits(tc.amount), "amount %v", tc.amount)
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	var gotAmount, gotCurrency, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotAmount = r.FormValue("amount")
		gotCurrency = r.FormValue("currency")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc","status":"requires_payment_method"}`))
	}))
	defer server.Close()

	client := NewStripeClient(server.URL, "sk_test_key", 5*time.Second)
	intent, err := client.CreatePaymentIntent(context.Background(), 10.5, "usd")
	require.NoError(t, err)

	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, "1050", gotAmount)
	assert.Equal(t, "usd", gotCurrency)
	assert.Equal(t, "Bearer sk_test_key", gotAuth)
	assert.NotEmpty(t, intent.Raw)
}

func TestCreatePaymentIntentDefaultCurrency(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "usd", r.FormValue("currency"))
		w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret","status":"requires_payment_method"}`))
	}))
	defer server.Close()

	client := NewStripeClient(server.URL, "sk_test_key", 5*time.Second)
	_, err := client.CreatePaymentIntent(context.Background(), 3, "")
	require.NoError(t, err)
}

func TestCreatePaymentIntentAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer server.Close()

	client := NewStripeClient(server.URL, "sk_test_key", 5*time.Second)
	_, err := client.CreatePaymentIntent(context.Background(), 3, "usd")
	assert.Error(t, err)
}

func TestCreatePaymentIntentMissingClientSecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"pi_1","status":"requires_payment_method"}`))
	}))
	defer server.Close()

	client := NewStripeClient(server.URL, "sk_test_key", 5*time.Second)
	_, err := client.CreatePaymentIntent(context.Background(), 3, "usd")
	assert.Error(t, err)
}
