package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lemono/storefront-api/internal/domains/orders/adapters/memory"
	"github.com/lemono/storefront-api/internal/domains/orders/domain"
	"github.com/lemono/storefront-api/internal/domains/orders/ports"
)

type stubFinder struct {
	products []domain.CatalogProduct
	err      error
}

func (f *stubFinder) FindByIDs(_ context.Context, _ []string) ([]domain.CatalogProduct, error) {
	return f.products, f.err
}

type stubGateway struct {
	created   []ports.RemoteOrder
	createErr error
	authentic bool
}

func (g *stubGateway) CreateRemoteOrder(_ context.Context, amount int64, currency, receipt string) (*ports.RemoteOrder, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	remote := ports.RemoteOrder{ID: "order_stub001", Amount: amount, Currency: currency, Receipt: receipt}
	g.created = append(g.created, remote)
	return &remote, nil
}

func (g *stubGateway) VerifyCallback(_, _, _ string) bool { return g.authentic }

func (g *stubGateway) KeyID() string { return "rzp_test_key" }

// flakyRepo wraps the memory repository and fails Create with a
// duplicate-number conflict a fixed number of times before succeeding.
type flakyRepo struct {
	ports.Repository
	conflicts int
	attempts  int
}

func (r *flakyRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	r.attempts++
	if r.attempts <= r.conflicts {
		return nil, ports.ErrDuplicateOrderNumber
	}
	return r.Repository.Create(ctx, order)
}

func storeCatalog() []domain.CatalogProduct {
	return []domain.CatalogProduct{
		{ID: "p-tee", Name: "Citrus Tee", Price: 1299, Sizes: []string{"S", "M", "L"}, InStock: true},
		{ID: "p-cap", Name: "Lemon Cap", Price: 500, Sizes: []string{"M"}, InStock: true},
	}
}

func checkoutInput() ports.CheckoutInput {
	return ports.CheckoutInput{
		Items: []domain.CartItem{{ProductID: "p-tee", Quantity: 2, Size: "M"}},
		ShippingAddress: domain.ShippingAddress{
			Name:    "Asha Rao",
			Phone:   "9876543210",
			Line1:   "14 Lake View Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
		},
		GuestEmail: "asha@example.com",
	}
}

func TestSubmitCheckout_PricesFromCatalogOnly(t *testing.T) {
	svc := NewService(memory.NewRepository(), &stubFinder{products: storeCatalog()}, nil)

	order, err := svc.SubmitCheckout(context.Background(), checkoutInput())
	require.NoError(t, err)
	require.Equal(t, int64(2598), order.Subtotal)
	require.Equal(t, int64(0), order.ShippingCost)
	require.Equal(t, int64(2598), order.Total)
	require.Equal(t, domain.StatusPending, order.Status)
	require.True(t, domain.IsOrderNumber(order.OrderNumber))
	require.NotEmpty(t, order.ID)
	require.Equal(t, int64(1299), order.Items[0].Price)
}

func TestSubmitCheckout_FlatShippingBelowThreshold(t *testing.T) {
	svc := NewService(memory.NewRepository(), &stubFinder{products: storeCatalog()}, nil)

	input := checkoutInput()
	input.Items = []domain.CartItem{{ProductID: "p-cap", Quantity: 1, Size: "M"}}

	order, err := svc.SubmitCheckout(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, domain.FlatShippingFee, order.ShippingCost)
	require.Equal(t, int64(599), order.Total)
}

func TestSubmitCheckout_UnknownProductAborts(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, &stubFinder{products: nil}, nil)

	_, err := svc.SubmitCheckout(context.Background(), checkoutInput())
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	// Nothing persisted on a pricing failure.
	orders, total, err := repo.List(context.Background(), ports.ListFilter{}, ports.Page{})
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, orders)
}

func TestSubmitCheckout_EmptyCart(t *testing.T) {
	svc := NewService(memory.NewRepository(), &stubFinder{products: storeCatalog()}, nil)

	_, err := svc.SubmitCheckout(context.Background(), ports.CheckoutInput{})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyItems)
}

func TestSubmitCheckout_RetriesOrderNumberConflict(t *testing.T) {
	repo := &flakyRepo{Repository: memory.NewRepository(), conflicts: 2}
	svc := NewService(repo, &stubFinder{products: storeCatalog()}, nil)

	order, err := svc.SubmitCheckout(context.Background(), checkoutInput())
	require.NoError(t, err)
	require.Equal(t, 3, repo.attempts)
	require.True(t, domain.IsOrderNumber(order.OrderNumber))
}

func TestSubmitCheckout_GivesUpAfterRepeatedConflicts(t *testing.T) {
	repo := &flakyRepo{Repository: memory.NewRepository(), conflicts: 3}
	svc := NewService(repo, &stubFinder{products: storeCatalog()}, nil)

	_, err := svc.SubmitCheckout(context.Background(), checkoutInput())
	require.ErrorIs(t, err, ErrOrderNumberExhausted)
	require.Equal(t, 3, repo.attempts)
}

func TestUpdateOrderStatus_LegalTransition(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, &stubFinder{products: storeCatalog()}, nil)

	order, err := svc.SubmitCheckout(context.Background(), checkoutInput())
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(context.Background(), order.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, domain.StatusConfirmed, updated.Status)
}

func TestUpdateOrderStatus_IllegalTransitionLeavesRow(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, &stubFinder{products: storeCatalog()}, nil)

	order, err := svc.SubmitCheckout(context.Background(), checkoutInput())
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(context.Background(), order.ID, domain.StatusDelivered)
	require.ErrorIs(t, err, domain.ErrIllegalTransition)

	stored, err := svc.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, stored.Status)
}

func TestListOrders_RejectsUnknownStatusFilter(t *testing.T) {
	svc := NewService(memory.NewRepository(), &stubFinder{products: storeCatalog()}, nil)

	_, _, err := svc.ListOrders(context.Background(), ports.ListFilter{Status: "MISPLACED"}, ports.Page{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestInitiatePayment_ChargesStoredTotalInMinorUnits(t *testing.T) {
	repo := memory.NewRepository()
	gateway := &stubGateway{}
	svc := NewService(repo, &stubFinder{products: storeCatalog()}, gateway)

	order, err := svc.SubmitCheckout(context.Background(), checkoutInput())
	require.NoError(t, err)

	payment, err := svc.InitiatePayment(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, order.Total*100, payment.Amount)
	require.Equal(t, "INR", payment.Currency)
	require.Equal(t, order.OrderNumber, payment.Receipt)
	require.Equal(t, "rzp_test_key", payment.KeyID)
	require.Len(t, gateway.created, 1)
}

func TestConfirmPayment_TransitionsPendingToConfirmed(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, &stubFinder{products: storeCatalog()}, &stubGateway{authentic: true})

	order, err := svc.SubmitCheckout(context.Background(), checkoutInput())
	require.NoError(t, err)

	confirmed, err := svc.ConfirmPayment(context.Background(), ports.PaymentConfirmation{
		OrderNumber:      order.OrderNumber,
		GatewayOrderID:   "order_stub001",
		GatewayPaymentID: "pay_stub001",
		Signature:        "deadbeef",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusConfirmed, confirmed.Status)
}

func TestConfirmPayment_ReplayedCallbackIsNoOp(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, &stubFinder{products: storeCatalog()}, &stubGateway{authentic: true})

	order, err := svc.SubmitCheckout(context.Background(), checkoutInput())
	require.NoError(t, err)

	confirmation := ports.PaymentConfirmation{
		OrderNumber:      order.OrderNumber,
		GatewayOrderID:   "order_stub001",
		GatewayPaymentID: "pay_stub001",
		Signature:        "deadbeef",
	}
	_, err = svc.ConfirmPayment(context.Background(), confirmation)
	require.NoError(t, err)

	again, err := svc.ConfirmPayment(context.Background(), confirmation)
	require.NoError(t, err)
	require.Equal(t, domain.StatusConfirmed, again.Status)
}

func TestConfirmPayment_SignatureMismatchLeavesOrderUntouched(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, &stubFinder{products: storeCatalog()}, &stubGateway{authentic: false})

	order, err := svc.SubmitCheckout(context.Background(), checkoutInput())
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(context.Background(), ports.PaymentConfirmation{
		OrderNumber:      order.OrderNumber,
		GatewayOrderID:   "order_stub001",
		GatewayPaymentID: "pay_stub001",
		Signature:        "forged",
	})
	require.ErrorIs(t, err, ErrSignatureMismatch)

	stored, err := svc.GetOrderByNumber(context.Background(), order.OrderNumber)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, stored.Status)
}

func TestConfirmPayment_UnknownOrderNumber(t *testing.T) {
	svc := NewService(memory.NewRepository(), &stubFinder{products: storeCatalog()}, &stubGateway{authentic: true})

	_, err := svc.ConfirmPayment(context.Background(), ports.PaymentConfirmation{
		OrderNumber:      "LO-MISSING1-AA11",
		GatewayOrderID:   "order_stub001",
		GatewayPaymentID: "pay_stub001",
		Signature:        "deadbeef",
	})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestConfirmPayment_FinderErrorPropagates(t *testing.T) {
	finderErr := errors.New("catalog unavailable")
	svc := NewService(memory.NewRepository(), &stubFinder{err: finderErr}, nil)

	_, err := svc.SubmitCheckout(context.Background(), checkoutInput())
	require.ErrorIs(t, err, finderErr)
}
