package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eram"

// Collector holds the client-side metrics. A nil *Collector records nothing.
type Collector struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	cache           *prometheus.CounterVec
	skippedSearches prometheus.Counter
	bulkUpdates     *prometheus.CounterVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "API calls by endpoint and response status (0 for network failures).",
		}, []string{"endpoint", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API call latency by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_cache_events_total",
			Help:      "Query cache hits, misses and invalidated keys.",
		}, []string{"event"}),
		skippedSearches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_skipped_total",
			Help:      "Searches not sent because every filter held its default.",
		}),
		bulkUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_updates_total",
			Help:      "Per-item bulk mutations by outcome.",
		}, []string{"outcome"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		c.requests,
		c.duration,
		c.cache,
		c.skippedSearches,
		c.bulkUpdates,
	)

	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}

	return c.registry
}

func (c *Collector) ObserveRequest(endpoint string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}

	c.requests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (c *Collector) CacheHit() {
	if c != nil {
		c.cache.WithLabelValues("hit").Inc()
	}
}

func (c *Collector) CacheMiss() {
	if c != nil {
		c.cache.WithLabelValues("miss").Inc()
	}
}

func (c *Collector) CacheInvalidated(keys int) {
	if c != nil && keys > 0 {
		c.cache.WithLabelValues("invalidated").Add(float64(keys))
	}
}

func (c *Collector) SearchSkipped() {
	if c != nil {
		c.skippedSearches.Inc()
	}
}

func (c *Collector) BulkOutcome(succeeded, failed int) {
	if c == nil {
		return
	}

	c.bulkUpdates.WithLabelValues("succeeded").Add(float64(succeeded))
	c.bulkUpdates.WithLabelValues("failed").Add(float64(failed))
}

func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Serve exposes /metrics on addr until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("metrics server shutdown", "error", err)
		}
	}()

	slog.Info("metrics server listening", "addr", addr)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
