package kernel

import (
	"fmt"

	"github.com/getsentry/sentry-go"

	"github.com/tunepath-askeva/eram/api/admin"
	"github.com/tunepath-askeva/eram/api/recruiter"
	"github.com/tunepath-askeva/eram/metal/env"
	"github.com/tunepath-askeva/eram/pkg/cache"
	"github.com/tunepath-askeva/eram/pkg/endpoint"
	"github.com/tunepath-askeva/eram/pkg/llogs"
	"github.com/tunepath-askeva/eram/pkg/metrics"
	"github.com/tunepath-askeva/eram/pkg/portal"
	"github.com/tunepath-askeva/eram/pkg/query"
	"github.com/tunepath-askeva/eram/whatsapp"
)

const SessionCookieName = "token"

// App owns the shared services: one client, one query cache and the slices
// built on them.
type App struct {
	env       *env.Environment
	validator *portal.Validator
	logs      llogs.Driver
	hub       *sentry.Hub
	tracing   *portal.TracerProvider
	metrics   *metrics.Collector
	cache     *cache.QueryCache
	client    *portal.Client
	reporter  *endpoint.Reporter
	admin     *admin.Api
	recruiter *recruiter.Api
	whatsapp  *whatsapp.Provider
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	hub, err := MakeSentry(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not start sentry: %w", err)
	}

	tracing, err := portal.NewTracerProvider(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not start tracing: %w", err)
	}

	client, err := MakeClient(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create the api client: %w", err)
	}

	logs := MakeLogs(env)

	app, err := assemble(env, validator, client, hub)
	if err != nil {
		return nil, err
	}

	app.logs = logs
	app.tracing = tracing
	app.reporter = endpoint.NewReporter(logs.Logger(), hub)

	return app, nil
}

// assemble wires the slices around an existing client. Tests use it with a
// client pointed at a fake backend.
func assemble(env *env.Environment, validator *portal.Validator, client *portal.Client, hub *sentry.Hub) (*App, error) {
	collector := metrics.NewCollector()
	queryCache := cache.NewQueryCache()

	adminApi, err := admin.New(query.NewSlice(query.SliceConfig{
		BasePath:  admin.BasePath,
		Client:    client,
		Cache:     queryCache,
		Metrics:   collector,
		Validator: validator,
	}))

	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > %w", err)
	}

	recruiterApi, err := recruiter.New(query.NewSlice(query.SliceConfig{
		BasePath:  recruiter.BasePath,
		Client:    client,
		Cache:     queryCache,
		Metrics:   collector,
		Validator: validator,
	}))

	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > %w", err)
	}

	return &App{
		env:       env,
		validator: validator,
		hub:       hub,
		metrics:   collector,
		cache:     queryCache,
		client:    client,
		reporter:  endpoint.NewReporter(nil, hub),
		admin:     adminApi,
		recruiter: recruiterApi,
		whatsapp:  whatsapp.NewProvider(client, env.WhatsApp),
	}, nil
}
