package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"gorm.io/gorm"

	catalogmemory "github.com/lemono/storefront-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/lemono/storefront-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/lemono/storefront-api/internal/domains/catalog/application"
	catalogports "github.com/lemono/storefront-api/internal/domains/catalog/ports"
	orderscatalog "github.com/lemono/storefront-api/internal/domains/orders/adapters/catalog"
	ordersmemory "github.com/lemono/storefront-api/internal/domains/orders/adapters/memory"
	orderspayment "github.com/lemono/storefront-api/internal/domains/orders/adapters/payment"
	orderspostgres "github.com/lemono/storefront-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/lemono/storefront-api/internal/domains/orders/application"
	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"
	"github.com/lemono/storefront-api/internal/domains/payments/adapters/razorpay"
	paymentsapp "github.com/lemono/storefront-api/internal/domains/payments/application"
	paymentsports "github.com/lemono/storefront-api/internal/domains/payments/ports"
	platformobservability "github.com/lemono/storefront-api/internal/platform/observability"
	platformpostgres "github.com/lemono/storefront-api/internal/platform/postgres"
	orderactivities "github.com/lemono/storefront-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/lemono/storefront-api/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "storefront-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()

	ordersService := ordersapp.NewService(
		buildOrderRepository(db),
		orderscatalog.NewFinder(buildCatalogService(db)),
		orderspayment.NewGateway(buildPaymentsService(logger)),
	)
	orderActivities := orderactivities.NewActivities(ordersService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderPlacementTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderPlacementWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderPlacementWorkflowName})
	w.RegisterActivityWithOptions(orderActivities.PlaceOrder, activity.RegisterOptions{Name: orderactivities.PlaceOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderPlacementTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildOrderRepository(db *gorm.DB) ordersports.Repository {
	if db != nil {
		return orderspostgres.NewRepository(db)
	}
	return ordersmemory.NewRepository()
}

func buildCatalogService(db *gorm.DB) catalogports.Service {
	var repo catalogports.Repository = catalogmemory.NewRepository()
	if db != nil {
		repo = catalogpostgres.NewRepository(db)
	}
	return catalogapp.NewService(repo)
}

func buildPaymentsService(logger *slog.Logger) *paymentsapp.Service {
	creds := paymentsapp.Credentials{
		KeyID:     strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID")),
		KeySecret: strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET")),
	}
	if !creds.Configured() {
		logger.Warn("razorpay credentials not set, payment operations disabled")
		return paymentsapp.NewService(nil, creds)
	}
	var gatewayClient paymentsports.GatewayClient
	if c, err := razorpay.NewClient(creds.KeyID, creds.KeySecret); err != nil {
		logger.Warn("failed to configure razorpay client, payment operations disabled", slog.String("error", err.Error()))
	} else {
		gatewayClient = c
	}
	return paymentsapp.NewService(gatewayClient, creds)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
