package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/lemono/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"
	orderactivities "github.com/lemono/storefront-api/internal/platform/temporal/activities/orders"
)

// RunOrderPlacementSequence executes the ordered set of activities
// needed to price and persist a checkout submission. Pricing failures
// are deterministic, so the retry policy only papers over transient
// storage errors.
func RunOrderPlacementSequence(ctx workflow.Context, input ordersports.CheckoutInput) (*ordersdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order placement sequence started", "items", len(input.Items))
	placeOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}

	var order ordersdomain.Order
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, placeOptions), orderactivities.PlaceOrderActivityName, input).Get(ctx, &order)
	if err != nil {
		logger.Error("order placement sequence failed", "error", err)
		return nil, err
	}
	logger.Info("order placement sequence persisted", "orderNumber", order.OrderNumber)
	return &order, nil
}
