package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	catalogmemory "github.com/lemono/storefront-api/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/lemono/storefront-api/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/lemono/storefront-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/lemono/storefront-api/internal/domains/catalog/application"
	catalogports "github.com/lemono/storefront-api/internal/domains/catalog/ports"

	contactmemory "github.com/lemono/storefront-api/internal/domains/contact/adapters/memory"
	contactpostgres "github.com/lemono/storefront-api/internal/domains/contact/adapters/persistence/postgres"
	contactapp "github.com/lemono/storefront-api/internal/domains/contact/application"
	contactports "github.com/lemono/storefront-api/internal/domains/contact/ports"

	orderscatalog "github.com/lemono/storefront-api/internal/domains/orders/adapters/catalog"
	ordersmemory "github.com/lemono/storefront-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/lemono/storefront-api/internal/domains/orders/adapters/observability"
	orderspayment "github.com/lemono/storefront-api/internal/domains/orders/adapters/payment"
	orderspostgres "github.com/lemono/storefront-api/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/lemono/storefront-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/lemono/storefront-api/internal/domains/orders/application"
	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"

	"github.com/lemono/storefront-api/internal/domains/payments/adapters/razorpay"
	paymentsapp "github.com/lemono/storefront-api/internal/domains/payments/application"
	paymentsports "github.com/lemono/storefront-api/internal/domains/payments/ports"

	usersmemory "github.com/lemono/storefront-api/internal/domains/users/adapters/memory"
	userspostgres "github.com/lemono/storefront-api/internal/domains/users/adapters/persistence/postgres"
	usersapp "github.com/lemono/storefront-api/internal/domains/users/application"

	platformmigrations "github.com/lemono/storefront-api/internal/platform/migrations"
	platformobservability "github.com/lemono/storefront-api/internal/platform/observability"
	platformpostgres "github.com/lemono/storefront-api/internal/platform/postgres"
	"github.com/lemono/storefront-api/internal/server"
)

// Run boots the storefront HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := connectDatabase(ctx, cfg, logger)
	defer cleanupDB()

	paymentsService := buildPaymentsService(cfg, logger)

	catalogService := catalogobs.New(
		catalogapp.NewService(buildCatalogRepository(db)),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)

	ordersService := ordersobs.New(
		ordersapp.NewService(
			buildOrderRepository(db),
			orderscatalog.NewFinder(catalogService),
			orderspayment.NewGateway(paymentsService),
		),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var checkout ordersports.CheckoutOrchestrator = ordersworkflows.NewInlineCheckout(ordersService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		checkout = ordersworkflows.NewTemporalCheckout(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	usersService := buildUsersService(db, cfg)
	contactService := contactapp.NewService(buildContactRepository(db))

	handlers := server.ApiHandleFunctions{
		ProductAPI: server.NewProductAPI(catalogService),
		OrderAPI:   server.NewOrderAPI(ordersService, checkout),
		PaymentAPI: server.NewPaymentAPI(paymentsService, ordersService),
		AuthAPI:    server.NewAuthAPI(usersService, ordersService, catalogService),
		ContactAPI: server.NewContactAPI(contactService),
	}

	router := server.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func connectDatabase(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return nil, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("repositories configured with postgres")
	return db, func() { _ = sqlDB.Close() }
}

func buildCatalogRepository(db *gorm.DB) catalogports.Repository {
	if db != nil {
		return catalogpostgres.NewRepository(db)
	}
	return catalogmemory.NewRepository()
}

func buildOrderRepository(db *gorm.DB) ordersports.Repository {
	if db != nil {
		return orderspostgres.NewRepository(db)
	}
	return ordersmemory.NewRepository()
}

func buildContactRepository(db *gorm.DB) contactports.Repository {
	if db != nil {
		return contactpostgres.NewRepository(db)
	}
	return contactmemory.NewRepository()
}

func buildUsersService(db *gorm.DB, cfg Config) *usersapp.Service {
	if db != nil {
		return usersapp.NewService(
			userspostgres.NewRepository(db),
			userspostgres.NewSessionStore(db, cfg.SessionTTL),
			userspostgres.NewFavoriteStore(db),
		)
	}
	return usersapp.NewService(
		usersmemory.NewRepository(),
		usersmemory.NewSessionStore(),
		usersmemory.NewFavoriteStore(),
	)
}

func buildPaymentsService(cfg Config, logger *slog.Logger) *paymentsapp.Service {
	creds := paymentsapp.Credentials{KeyID: cfg.RazorpayKeyID, KeySecret: cfg.RazorpayKeySecret}
	if !cfg.PaymentsConfigured() {
		logger.Warn("razorpay credentials not set, payment operations disabled")
		return paymentsapp.NewService(nil, creds)
	}
	var gatewayClient paymentsports.GatewayClient
	if c, err := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret); err != nil {
		logger.Warn("failed to configure razorpay client, payment operations disabled", slog.String("error", err.Error()))
	} else {
		gatewayClient = c
	}
	return paymentsapp.NewService(gatewayClient, creds)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
