package clitest

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/tunepath-askeva/eram/api/admin"
	"github.com/tunepath-askeva/eram/api/recruiter"
	"github.com/tunepath-askeva/eram/metal/env"
	"github.com/tunepath-askeva/eram/pkg/cache"
	"github.com/tunepath-askeva/eram/pkg/cli"
	"github.com/tunepath-askeva/eram/pkg/metrics"
	"github.com/tunepath-askeva/eram/pkg/portal"
	"github.com/tunepath-askeva/eram/pkg/query"
	"github.com/tunepath-askeva/eram/whatsapp"
)

// Backend is a fake API server. Routes are keyed by "METHOD /path".
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []*http.Request
}

func MakeBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{routes: make(map[string]http.HandlerFunc)}

	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r)
		handler, ok := b.routes[r.Method+" "+r.URL.Path]
		b.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"no route for ` + r.Method + " " + r.URL.Path + `"}`))

			return
		}

		handler(w, r)
	}))

	t.Cleanup(b.Close)

	return b
}

// Handle registers fn for the route.
func (b *Backend) Handle(route string, fn http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.routes[route] = fn
}

// JSON answers the route with a fixed status and body.
func (b *Backend) JSON(route string, status int, body string) {
	b.Handle(route, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Requests returns the "METHOD /path" of every request served so far.
func (b *Backend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, 0, len(b.requests))
	for _, r := range b.requests {
		out = append(out, r.Method+" "+r.URL.Path)
	}

	return out
}

// Count reports how many requests hit route.
func (b *Backend) Count(route string) int {
	n := 0

	for _, r := range b.Requests() {
		if r == route {
			n++
		}
	}

	return n
}

// Apis is the set of services the console handlers work with, all pointed
// at one Backend and sharing one cache.
type Apis struct {
	Admin     *admin.Api
	Recruiter *recruiter.Api
	WhatsApp  *whatsapp.Provider
	Metrics   *metrics.Collector
	Cache     *cache.QueryCache
}

func MakeApis(t *testing.T, b *Backend) Apis {
	t.Helper()

	client := portal.NewClient(b.URL, nil, 2*time.Second)
	collector := metrics.NewCollector()
	queryCache := cache.NewQueryCache()

	config := func(base string) query.SliceConfig {
		return query.SliceConfig{
			BasePath: base,
			Client:   client,
			Cache:    queryCache,
			Metrics:  collector,
		}
	}

	adminApi, err := admin.New(query.NewSlice(config(admin.BasePath)))
	if err != nil {
		t.Fatalf("admin api: %v", err)
	}

	recruiterApi, err := recruiter.New(query.NewSlice(config(recruiter.BasePath)))
	if err != nil {
		t.Fatalf("recruiter api: %v", err)
	}

	return Apis{
		Admin:     adminApi,
		Recruiter: recruiterApi,
		WhatsApp:  whatsapp.NewProvider(client, env.WhatsAppEnvironment{BaseURL: b.URL, ApiKey: "test-api-key"}),
		Metrics:   collector,
		Cache:     queryCache,
	}
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.buf.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.buf.String()
}

// CaptureOutput returns everything printed through pkg/cli while fn runs.
// Writes from background goroutines are safe.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	buf := &lockedBuffer{}
	old := cli.Output
	cli.Output = buf
	t.Cleanup(func() { cli.Output = old })

	fn()

	return buf.String()
}
