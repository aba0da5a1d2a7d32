package app

import (
	"github.com/gorilla/sessions"

	"github.com/daouest/factureme/pkg/cache"
	"github.com/daouest/factureme/pkg/config"
	"github.com/daouest/factureme/pkg/database"
	"github.com/daouest/factureme/pkg/errhttp"
	"github.com/daouest/factureme/pkg/events"
	"github.com/daouest/factureme/pkg/freshness"
	"github.com/daouest/factureme/pkg/logger"
	"github.com/daouest/factureme/pkg/workflows"
)

// Application holds the shared infrastructure handed to every bounded
// context's Routes function and to the worker subscribers.
//
// Logger is trace-aware; prefer the context methods inside requests so
// trace_id, request_id and user_id are attached:
//
//	a.Logger.InfoContext(ctx, "invoice created", "invoice_id", id)
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
	// TemporalClient is nil when TEMPORAL_HOST_PORT is empty.
	TemporalClient *workflows.TemporalClient
	// SessionStore is nil in the worker process.
	SessionStore sessions.Store
	Errors       *errhttp.Responder
	// Freshness counts list responses by outcome; nil disables recording.
	Freshness *freshness.Recorder
}
