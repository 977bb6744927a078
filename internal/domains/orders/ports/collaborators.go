package ports

import (
	"context"

	"github.com/lemono/storefront-api/internal/domains/orders/domain"
)

// ProductFinder is the read-only catalog view the pricing step consumes.
type ProductFinder interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.CatalogProduct, error)
}

// RemoteOrder is the gateway's representation of a created payment order.
type RemoteOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// PaymentGateway creates remote payment orders and verifies callbacks.
// VerifyCallback never reports an error; a malformed signature is simply
// not authentic.
type PaymentGateway interface {
	CreateRemoteOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*RemoteOrder, error)
	VerifyCallback(gatewayOrderID, paymentID, signature string) bool
	KeyID() string
}
