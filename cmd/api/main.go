package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/daouest/factureme/docs/swagger"
	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/auth"
	"github.com/daouest/factureme/pkg/cache"
	"github.com/daouest/factureme/pkg/config"
	"github.com/daouest/factureme/pkg/database"
	"github.com/daouest/factureme/pkg/errhttp"
	"github.com/daouest/factureme/pkg/events"
	"github.com/daouest/factureme/pkg/freshness"
	"github.com/daouest/factureme/pkg/httpx"
	"github.com/daouest/factureme/pkg/logger"
	"github.com/daouest/factureme/pkg/telemetry"
	"github.com/daouest/factureme/pkg/workflows"
	accountApi "github.com/daouest/factureme/services/account/application/api"
	accountsvcs "github.com/daouest/factureme/services/account/application/services"
	catalogApi "github.com/daouest/factureme/services/catalog/application/api"
	catalogsvcs "github.com/daouest/factureme/services/catalog/application/services"
	invoiceApi "github.com/daouest/factureme/services/invoice/application/api"
	invoicesvcs "github.com/daouest/factureme/services/invoice/application/services"
)

// @title						FactureMe API
// @version					1.0
// @description				Invoicing for Canadian freelancers: catalogue, clients, tax-aware invoices and PDF export.
// @contact.name				FactureMe Support
// @license.name				MIT
// @license.url				https://opensource.org/licenses/MIT
// @host						localhost:8080
// @BasePath					/api
// @schemes					http https
// @securityDefinitions.apikey	SessionCookie
// @in							cookie
// @name						factureme_session
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting is optional; log and continue on failure.
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(pool.DB(), events.Options{
		ConsumerGroup: cfg.EventsConsumerGroup,
		Forwarder:     true,
	}, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	var temporalClient *workflows.TemporalClient
	if cfg.TemporalEnabled() {
		temporalClient, err = workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, cfg.TemporalTaskQueue, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer temporalClient.Close()
	}

	sessionStore := auth.NewSessionStore(redisClient.Client(), auth.SessionConfig{
		AuthKey:       []byte(cfg.SessionAuthKey),
		EncryptionKey: []byte(cfg.SessionEncryptionKey),
		Secure:        cfg.IsProduction(),
	})
	log.Info("session store initialized", "backend", "redis")

	recorder, err := freshness.NewRecorder(telemetry.Meter("freshness"))
	if err != nil {
		log.Error("failed to create freshness metrics", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
		SessionStore:   sessionStore,
		Errors:         errhttp.NewResponder(log, cfg.IsProduction()),
		Freshness:      recorder,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RequestsPerMinute:  cfg.RequestsPerMinute,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	checks := []httpx.HealthCheck{
		{Name: "database", Checker: pool},
		{Name: "redis", Checker: redisClient},
		{Name: "events", Checker: eventBus},
	}
	if temporalClient != nil {
		checks = append(checks, httpx.HealthCheck{Name: "temporal", Checker: temporalClient})
	}
	r.Get("/health", httpx.HealthHandler(checks...))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts every bounded context under /api. Only the auth
// endpoints are reachable without a session.
func registerRoutes(r chi.Router, a *app.Application) {
	accounts := accountsvcs.New(a)
	catalog := catalogsvcs.New(a)
	invoices := invoicesvcs.New(a, catalog.Resolver, accounts.Business)

	accountApi.AuthRoutes(r, accounts, a)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		accountApi.AccountRoutes(r, accounts, a)
		catalogApi.Mount(r, catalog, a)
		invoiceApi.InvoiceRoutes(r, invoices, a)
	})
}
