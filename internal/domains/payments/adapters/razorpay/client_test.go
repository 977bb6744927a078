package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lemono/storefront-api/internal/domains/payments/ports"
)

func TestNewClient_RequiresBothCredentials(t *testing.T) {
	_, err := NewClient("", "secret")
	require.ErrorIs(t, err, ports.ErrGatewayNotConfigured)

	_, err = NewClient("rzp_test_key", " ")
	require.ErrorIs(t, err, ports.ErrGatewayNotConfigured)
}

func TestCreateOrder_Success(t *testing.T) {
	var captured createOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "rzp_test_key", user)
		require.Equal(t, "s3cret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       "order_Nxq1a",
			"amount":   captured.Amount,
			"currency": captured.Currency,
			"receipt":  captured.Receipt,
		})
	}))
	defer server.Close()

	client, err := NewClient("rzp_test_key", "s3cret", WithBaseURL(server.URL))
	require.NoError(t, err)

	order, err := client.CreateOrder(context.Background(), ports.CreateOrderInput{
		Amount:   259800,
		Currency: "INR",
		Receipt:  "LO-ABC123-XY12",
	})
	require.NoError(t, err)
	require.Equal(t, "order_Nxq1a", order.ID)
	require.Equal(t, int64(259800), order.Amount)
	require.Equal(t, "INR", order.Currency)
	require.Equal(t, "LO-ABC123-XY12", order.Receipt)
	require.Equal(t, map[string]string{"store": "lemono"}, captured.Notes)
}

func TestCreateOrder_APIErrorSurfacesDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount must be at least INR 1.00"}}`))
	}))
	defer server.Close()

	client, err := NewClient("rzp_test_key", "s3cret", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.CreateOrder(context.Background(), ports.CreateOrderInput{Amount: -100, Currency: "INR"})
	require.ErrorIs(t, err, ports.ErrGatewayRequest)
	require.Contains(t, err.Error(), "amount must be at least INR 1.00")
}

func TestCreateOrder_OpaqueErrorFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client, err := NewClient("rzp_test_key", "s3cret", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.CreateOrder(context.Background(), ports.CreateOrderInput{Amount: 100, Currency: "INR"})
	require.ErrorIs(t, err, ports.ErrGatewayRequest)
	require.Contains(t, err.Error(), "502")
}

func TestCreateOrder_MissingOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient("rzp_test_key", "s3cret", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.CreateOrder(context.Background(), ports.CreateOrderInput{Amount: 100, Currency: "INR"})
	require.ErrorIs(t, err, ports.ErrGatewayRequest)
	require.Contains(t, err.Error(), "missing order id")
}

func TestCreateOrder_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client, err := NewClient("rzp_test_key", "s3cret", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.CreateOrder(context.Background(), ports.CreateOrderInput{Amount: 100, Currency: "INR"})
	require.ErrorIs(t, err, ports.ErrGatewayRequest)
}
