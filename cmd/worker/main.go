package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.temporal.io/sdk/worker"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/cache"
	"github.com/daouest/factureme/pkg/config"
	"github.com/daouest/factureme/pkg/database"
	"github.com/daouest/factureme/pkg/events"
	"github.com/daouest/factureme/pkg/logger"
	"github.com/daouest/factureme/pkg/telemetry"
	"github.com/daouest/factureme/pkg/workflows"
	accountsvcs "github.com/daouest/factureme/services/account/application/services"
	catalogsvcs "github.com/daouest/factureme/services/catalog/application/services"
	invoicesvcs "github.com/daouest/factureme/services/invoice/application/services"
	invoiceflows "github.com/daouest/factureme/services/invoice/application/workflows"
	invoiceEvents "github.com/daouest/factureme/services/invoice/domain/events"
)

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

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(pool.DB(), events.Options{ConsumerGroup: cfg.EventsConsumerGroup}, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL, cache.WithPool(4, 1))
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	var temporalClient *workflows.TemporalClient
	if cfg.TemporalEnabled() {
		temporalClient, err = workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, cfg.TemporalTaskQueue, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
	} else {
		log.Info("temporal disabled, PDFs are rendered on demand only")
	}

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	catalog := catalogsvcs.New(appConfig)
	accounts := accountsvcs.New(appConfig)
	invoices := invoicesvcs.New(appConfig, catalog.Resolver, accounts.Business)

	var pdfWorker worker.Worker
	if temporalClient != nil {
		pdfWorker = temporalClient.NewWorker()
		invoiceflows.Register(pdfWorker, invoiceflows.NewActivities(invoices.PDF))
		if err := pdfWorker.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("temporal worker started", "task_queue", temporalClient.TaskQueue)
	}

	if err := registerSubscribers(ctx, appConfig, invoices); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	if pdfWorker != nil {
		pdfWorker.Stop()
	}

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
func registerSubscribers(ctx context.Context, a *app.Application, invoices *invoicesvcs.Services) error {
	errCh, err := a.EventBus.Subscribe(ctx, invoiceEvents.TopicInvoiceCreated, handleInvoiceCreated(a, invoices.Invoice))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", invoiceEvents.TopicInvoiceCreated,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{invoiceEvents.TopicInvoiceCreated})
	return nil
}

// invoiceWarmer is the part of the invoice service the subscriber needs.
type invoiceWarmer interface {
	Warm(ctx context.Context, ownerID, invoiceID uuid.UUID) error
}

// handleInvoiceCreated warms the invoice cache and, when Temporal is
// configured, starts the PDF pre-render workflow. Both steps are best-effort:
// a failure is logged and the message is still acked, since GET /invoices/{id}
// and GET /invoices/{id}/pdf fall back to the database.
func handleInvoiceCreated(a *app.Application, invoices invoiceWarmer) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[invoiceEvents.InvoiceCreatedEvent](msg)
		if err != nil {
			return err
		}

		if err := invoices.Warm(ctx, evt.OwnerID, evt.InvoiceID); err != nil {
			a.Logger.WarnContext(ctx, "cache warm failed for invoice.created",
				"invoice_id", evt.InvoiceID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "invoice cache warmed",
				"invoice_id", evt.InvoiceID, "number", evt.Number)
		}

		if a.TemporalClient == nil {
			return nil
		}
		in := invoiceflows.RenderPDFInput{OwnerID: evt.OwnerID, InvoiceID: evt.InvoiceID}
		if err := invoiceflows.StartRenderPDF(ctx, a.TemporalClient.Client, a.TemporalClient.TaskQueue, in); err != nil {
			a.Logger.WarnContext(ctx, "could not start pdf workflow",
				"invoice_id", evt.InvoiceID, "error", err)
		}
		return nil
	}
}
