package application

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lemono/storefront-api/internal/domains/payments/domain"
	"github.com/lemono/storefront-api/internal/domains/payments/ports"
)

type recordingClient struct {
	last ports.CreateOrderInput
	err  error
}

func (c *recordingClient) CreateOrder(_ context.Context, input ports.CreateOrderInput) (*ports.RemoteOrder, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.last = input
	return &ports.RemoteOrder{
		ID:       "order_test001",
		Amount:   input.Amount,
		Currency: input.Currency,
		Receipt:  input.Receipt,
	}, nil
}

func testCredentials() Credentials {
	return Credentials{KeyID: "rzp_test_key", KeySecret: "s3cret"}
}

func TestCreateOrder_DefaultsCurrencyAndReceipt(t *testing.T) {
	client := &recordingClient{}
	svc := NewService(client, testCredentials())
	svc.now = func() time.Time { return time.UnixMilli(1717243200000) }

	remote, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{Amount: 259800})
	require.NoError(t, err)
	require.Equal(t, "INR", remote.Currency)
	require.Equal(t, "receipt_1717243200000", remote.Receipt)
	require.Equal(t, int64(259800), remote.Amount)
}

func TestCreateOrder_KeepsExplicitReceiptAndCurrency(t *testing.T) {
	client := &recordingClient{}
	svc := NewService(client, testCredentials())

	remote, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		Amount:   59900,
		Currency: "USD",
		Receipt:  "LO-ABC123-XY12",
	})
	require.NoError(t, err)
	require.Equal(t, "USD", remote.Currency)
	require.Equal(t, "LO-ABC123-XY12", remote.Receipt)
}

func TestCreateOrder_NotConfigured(t *testing.T) {
	svc := NewService(&recordingClient{}, Credentials{KeyID: "rzp_test_key"})

	_, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{Amount: 100})
	require.ErrorIs(t, err, ports.ErrGatewayNotConfigured)
}

func TestCreateOrder_NilClient(t *testing.T) {
	svc := NewService(nil, testCredentials())

	_, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{Amount: 100})
	require.ErrorIs(t, err, ports.ErrGatewayNotConfigured)
}

func TestCreateDecimalOrder_RoundsToMinorUnits(t *testing.T) {
	client := &recordingClient{}
	svc := NewService(client, testCredentials())

	remote, err := svc.CreateDecimalOrder(context.Background(), 12.99, "INR", "receipt_x")
	require.NoError(t, err)
	require.Equal(t, int64(1299), remote.Amount)
	require.Equal(t, domain.ToMinorUnits(12.99), client.last.Amount)
}

func TestVerifyPayment_RoundTripsGatewaySignature(t *testing.T) {
	svc := NewService(&recordingClient{}, testCredentials())

	signature := signFor(t, "order_test001", "pay_test001", "s3cret")
	require.True(t, svc.VerifyPayment("order_test001", "pay_test001", signature))
	require.False(t, svc.VerifyPayment("order_test001", "pay_forged", signature))
}

func TestVerifyPayment_UnconfiguredSecretNeverVerifies(t *testing.T) {
	svc := NewService(&recordingClient{}, Credentials{})

	signature := signFor(t, "order_test001", "pay_test001", "s3cret")
	require.False(t, svc.VerifyPayment("order_test001", "pay_test001", signature))
}

func TestKeyID(t *testing.T) {
	svc := NewService(&recordingClient{}, testCredentials())
	require.Equal(t, "rzp_test_key", svc.KeyID())
}

func TestCredentials_Configured(t *testing.T) {
	require.True(t, testCredentials().Configured())
	require.False(t, Credentials{KeyID: "rzp_test_key"}.Configured())
	require.False(t, Credentials{KeyID: " ", KeySecret: "s3cret"}.Configured())
}

func signFor(t *testing.T, orderID, paymentID, secret string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
