package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersdomain "github.com/lemono/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"
)

const tracerName = "github.com/lemono/storefront-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) SubmitCheckout(ctx context.Context, input ordersports.CheckoutInput) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.SubmitCheckout",
		trace.WithAttributes(attribute.Int("cart.items", len(input.Items))))
	defer span.End()

	s.logInfo(ctx, "submitting checkout", slog.Int("cart.items", len(input.Items)))
	result, err := s.inner.SubmitCheckout(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to submit checkout")
	}
	s.metrics.recordCreated(ctx)
	span.SetAttributes(attribute.String("order.number", result.OrderNumber))
	s.logInfo(ctx, "order created",
		slog.String("order.number", result.OrderNumber), slog.Int64("order.total", result.Total))
	return result, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrderByID", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrderByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id))
	}
	return result, nil
}

func (s *Service) GetOrderByNumber(ctx context.Context, orderNumber string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrderByNumber",
		trace.WithAttributes(attribute.String("order.number", orderNumber)))
	defer span.End()

	result, err := s.inner.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.number", orderNumber))
	}
	return result, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status ordersdomain.Status) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.UpdateOrderStatus",
		trace.WithAttributes(attribute.String("order.id", id), attribute.String("order.status", string(status))))
	defer span.End()

	s.logInfo(ctx, "updating order status", slog.String("order.id", id), slog.String("order.status", string(status)))
	result, err := s.inner.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order status",
			slog.String("order.id", id), slog.String("order.status", string(status)))
	}
	s.metrics.recordStatusChange(ctx, result.Status)
	s.logInfo(ctx, "order status updated",
		slog.String("order.number", result.OrderNumber), slog.String("order.status", string(result.Status)))
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context, filter ordersports.ListFilter, page ordersports.Page) ([]*ordersdomain.Order, int64, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	results, total, err := s.inner.ListOrders(ctx, filter, page)
	if err != nil {
		return nil, 0, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(results)), attribute.Int64("orders.total", total))
	return results, total, nil
}

func (s *Service) InitiatePayment(ctx context.Context, orderID string) (*ordersports.PaymentOrder, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.InitiatePayment",
		trace.WithAttributes(attribute.String("order.id", orderID)))
	defer span.End()

	s.logInfo(ctx, "initiating payment", slog.String("order.id", orderID))
	result, err := s.inner.InitiatePayment(ctx, orderID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to initiate payment", slog.String("order.id", orderID))
	}
	span.SetAttributes(attribute.String("payment.gateway_order_id", result.GatewayOrderID))
	s.logInfo(ctx, "payment initiated",
		slog.String("order.id", orderID), slog.String("payment.gateway_order_id", result.GatewayOrderID))
	return result, nil
}

func (s *Service) ConfirmPayment(ctx context.Context, confirmation ordersports.PaymentConfirmation) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ConfirmPayment",
		trace.WithAttributes(attribute.String("order.number", confirmation.OrderNumber)))
	defer span.End()

	s.logInfo(ctx, "confirming payment", slog.String("order.number", confirmation.OrderNumber))
	result, err := s.inner.ConfirmPayment(ctx, confirmation)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to confirm payment",
			slog.String("order.number", confirmation.OrderNumber))
	}
	s.metrics.recordConfirmed(ctx)
	s.logInfo(ctx, "payment confirmed",
		slog.String("order.number", result.OrderNumber), slog.String("order.status", string(result.Status)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersCreated     metric.Int64Counter
	paymentsConfirmed metric.Int64Counter
	statusChanges     metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersCreated, _ := m.Int64Counter("orders.service.orders_created", metric.WithDescription("Number of orders created"))
	paymentsConfirmed, _ := m.Int64Counter("orders.service.payments_confirmed", metric.WithDescription("Number of payments confirmed"))
	statusChanges, _ := m.Int64Counter("orders.service.status_changes", metric.WithDescription("Number of order status transitions"))
	return serviceMetrics{ordersCreated: ordersCreated, paymentsConfirmed: paymentsConfirmed, statusChanges: statusChanges}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordConfirmed(ctx context.Context) {
	if m.paymentsConfirmed != nil {
		m.paymentsConfirmed.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordStatusChange(ctx context.Context, status ordersdomain.Status) {
	if m.statusChanges != nil {
		m.statusChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

var _ ordersports.Service = (*Service)(nil)
