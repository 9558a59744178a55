package kernel

import (
	"context"
	"log/slog"
	"time"

	"github.com/tunepath-askeva/eram/api/admin"
	"github.com/tunepath-askeva/eram/api/recruiter"
	"github.com/tunepath-askeva/eram/metal/env"
	"github.com/tunepath-askeva/eram/pkg/cache"
	"github.com/tunepath-askeva/eram/pkg/endpoint"
	"github.com/tunepath-askeva/eram/pkg/metrics"
	"github.com/tunepath-askeva/eram/search"
	"github.com/tunepath-askeva/eram/whatsapp"
)

// Close flushes telemetry and closes the log file.
func (a *App) Close() {
	if a == nil {
		return
	}

	if a.hub != nil {
		a.hub.Flush(2 * time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.tracing.Shutdown(ctx); err != nil {
		slog.Warn("close", "error", err)
	}

	if a.logs != nil {
		a.logs.Close()
	}
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) Admin() *admin.Api {
	return a.admin
}

func (a *App) Recruiter() *recruiter.Api {
	return a.recruiter
}

func (a *App) WhatsApp() *whatsapp.Provider {
	return a.whatsapp
}

func (a *App) Reporter() *endpoint.Reporter {
	return a.reporter
}

func (a *App) Metrics() *metrics.Collector {
	return a.metrics
}

func (a *App) Cache() *cache.QueryCache {
	return a.cache
}

// NewSearchSession starts a sourcing search for jobID using the configured
// page size and metrics.
func (a *App) NewSearchSession(jobID string, pageSize int) *search.Session {
	return search.NewSession(jobID, pageSize, a.metrics)
}

func (a *App) NewDebouncer() *search.Debouncer[search.Result] {
	return search.NewDebouncer[search.Result](a.env.Search.GetDebounce())
}
