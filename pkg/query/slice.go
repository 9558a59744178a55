package query

import (
	"context"
	"log/slog"
	"net/url"
	"reflect"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tunepath-askeva/eram/pkg/cache"
	"github.com/tunepath-askeva/eram/pkg/endpoint"
	"github.com/tunepath-askeva/eram/pkg/metrics"
	"github.com/tunepath-askeva/eram/pkg/portal"
)

// Slice binds the endpoints of one backend domain to a client, a base path
// and the shared query cache.
type Slice struct {
	BasePath  string
	client    *portal.Client
	cache     *cache.QueryCache
	metrics   *metrics.Collector
	validator *portal.Validator
	tracer    trace.Tracer
	registry  *Registry
}

type SliceConfig struct {
	BasePath  string
	Client    *portal.Client
	Cache     *cache.QueryCache
	Metrics   *metrics.Collector
	Validator *portal.Validator
}

func NewSlice(config SliceConfig) *Slice {
	queryCache := config.Cache
	if queryCache == nil {
		queryCache = cache.NewQueryCache()
	}

	validator := config.Validator
	if validator == nil {
		validator = portal.GetDefaultValidator()
	}

	return &Slice{
		BasePath:  config.BasePath,
		client:    config.Client,
		cache:     queryCache,
		metrics:   config.Metrics,
		validator: validator,
		tracer:    portal.Tracer("eram/query"),
		registry:  NewRegistry(),
	}
}

// Register records the slice's endpoints, rejecting duplicate names.
func (s *Slice) Register(definitions ...Definition) error {
	return s.registry.Register(definitions...)
}

func (s *Slice) Registry() *Registry {
	return s.registry
}

func (s *Slice) Cache() *cache.QueryCache {
	return s.cache
}

// Invalidate marks the tags stale and refetches their active queries.
// Refetch failures are logged; the invalidation itself cannot fail.
func (s *Slice) Invalidate(ctx context.Context, tags ...cache.Tag) []string {
	if len(tags) == 0 {
		return nil
	}

	keys, err := s.cache.Invalidate(ctx, tags...)
	s.metrics.CacheInvalidated(len(keys))

	if err != nil {
		slog.WarnContext(ctx, "refetch after invalidation failed", "tags", tags, "error", err)
	}

	return keys
}

// Query serves params from the cache when fresh, fetching otherwise.
// Results with a Clone method, such as pages, are copied so callers cannot
// change what the cache holds; treat other results as read-only.
func Query[P any, R any](ctx context.Context, s *Slice, e Endpoint[P, R], params P) (R, error) {
	if err := e.check(params); err != nil {
		var zero R

		return zero, err
	}

	key := CacheKey(s, e, params)

	if entry, fresh := s.cache.Lookup(key); fresh {
		if data, ok := entry.Data.(R); ok {
			s.metrics.CacheHit()

			return clone(data), nil
		}
	}

	s.metrics.CacheMiss()

	return fetch(ctx, s, e, params, key)
}

// Refetch bypasses the cache and stores the new result.
func Refetch[P any, R any](ctx context.Context, s *Slice, e Endpoint[P, R], params P) (R, error) {
	return fetch(ctx, s, e, params, CacheKey(s, e, params))
}

// Watch runs the query and keeps it active: every invalidation of its tags
// refetches it and hands the result to onUpdate. Call the returned func to
// stop watching.
func Watch[P any, R any](ctx context.Context, s *Slice, e Endpoint[P, R], params P, onUpdate func(R, error)) (func(), error) {
	if err := e.check(params); err != nil {
		return func() {}, err
	}

	key := CacheKey(s, e, params)

	cancel := s.cache.Subscribe(key, func(ctx context.Context) error {
		data, err := fetch(ctx, s, e, params, key)

		if onUpdate != nil {
			onUpdate(data, err)
		}

		return err
	})

	data, err := Query(ctx, s, e, params)

	if onUpdate != nil {
		onUpdate(data, err)
	}

	return cancel, err
}

// Mutate validates the body, sends it and invalidates the endpoint's tags
// on success. Nothing is invalidated when the call fails.
func Mutate[P any, R any](ctx context.Context, s *Slice, e Endpoint[P, R], params P) (R, error) {
	var zero R

	if err := e.check(params); err != nil {
		return zero, err
	}

	body := e.body(params)

	if isStruct(body) {
		violations, err := s.validator.Violations(body)

		if len(violations) > 0 {
			return zero, &endpoint.ValidationError{Endpoint: string(e.Name), Fields: violations}
		}

		if err != nil {
			return zero, err
		}
	}

	resp, err := execute(ctx, s, e.Name, e.HTTPMethod(), e.path(params), e.query(params), body)
	if err != nil {
		return zero, err
	}

	data, err := e.transform(resp.Body)
	if err != nil {
		return zero, endpoint.DecodeError(string(e.Name), resp.Status, err)
	}

	s.Invalidate(ctx, e.invalidates(params)...)

	return data, nil
}

// CacheKey serialises the endpoint and its arguments. Equal arguments give
// equal keys regardless of query parameter order.
func CacheKey[P any, R any](s *Slice, e Endpoint[P, R], params P) string {
	key := string(e.Name) + " " + portal.JoinURL(s.BasePath, e.path(params))

	if encoded := portal.SortedValues(e.query(params)); encoded != "" {
		key += "?" + encoded
	}

	return key
}

func fetch[P any, R any](ctx context.Context, s *Slice, e Endpoint[P, R], params P, key string) (R, error) {
	var zero R

	if err := e.check(params); err != nil {
		return zero, err
	}

	tags := e.provides(params)

	resp, err := execute(ctx, s, e.Name, e.HTTPMethod(), e.path(params), e.query(params), e.body(params))
	if err != nil {
		s.cache.Store(key, nil, err, tags)

		return zero, err
	}

	data, err := e.transform(resp.Body)
	if err != nil {
		decodeErr := endpoint.DecodeError(string(e.Name), resp.Status, err)
		s.cache.Store(key, nil, decodeErr, tags)

		return zero, decodeErr
	}

	s.cache.Store(key, data, nil, tags)

	return clone(data), nil
}

func clone[R any](data R) R {
	if c, ok := any(data).(interface{ Clone() R }); ok {
		return c.Clone()
	}

	return data
}

func execute(ctx context.Context, s *Slice, name Name, method, path string, query url.Values, body any) (*portal.Response, error) {
	ctx, span := s.tracer.Start(ctx, string(name), trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("eram.endpoint", string(name)),
	)

	started := time.Now()

	resp, err := s.client.Do(ctx, portal.Request{
		Method: method,
		Path:   portal.JoinURL(s.BasePath, path),
		Query:  query,
		Body:   body,
	})

	if err != nil {
		s.metrics.ObserveRequest(string(name), 0, time.Since(started))
		span.RecordError(err)
		span.SetStatus(codes.Error, "network error")

		return nil, endpoint.NetworkError(string(name), err)
	}

	s.metrics.ObserveRequest(string(name), resp.Status, time.Since(started))
	span.SetAttributes(attribute.Int("http.status_code", resp.Status))

	if !resp.IsSuccessful() {
		apiErr := endpoint.FromResponse(string(name), resp.Status, resp.Body, resp.RequestID)
		span.SetStatus(codes.Error, apiErr.Message)

		return nil, apiErr
	}

	return resp, nil
}

func isStruct(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}

		rv = rv.Elem()
	}

	return rv.Kind() == reflect.Struct
}
