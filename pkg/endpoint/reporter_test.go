package endpoint

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/getsentry/sentry-go"
)

func newTestHub(t *testing.T, events *[]*sentry.Event) *sentry.Hub {
	t.Helper()

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn: "https://public@sentry.example.com/1",
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			*events = append(*events, event)
			return nil
		},
	})

	if err != nil {
		t.Fatalf("sentry client: %v", err)
	}

	return sentry.NewHub(client, sentry.NewScope())
}

func TestReporterCapturesOnce(t *testing.T) {
	var events []*sentry.Event
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewReporter(logger, newTestHub(t, &events))

	err := FromResponse("deleteClient", http.StatusInternalServerError, []byte(`{"message":"db down"}`), "req-9")
	msg := r.Report(context.Background(), "delete client", err)

	if msg != "db down" {
		t.Fatalf("message %q", msg)
	}

	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}

	event := events[0]
	if event.Level != sentry.LevelError {
		t.Fatalf("level %s", event.Level)
	}

	if event.Tags["api.endpoint"] != "deleteClient" || event.Tags["http.request_id"] != "req-9" {
		t.Fatalf("tags %#v", event.Tags)
	}

	if strings.Count(buf.String(), "action failed") != 1 || !strings.Contains(buf.String(), "level=ERROR") {
		t.Fatalf("log %q", buf.String())
	}
}

func TestReporterLevels(t *testing.T) {
	cases := map[int]sentry.Level{
		0:   sentry.LevelError,
		503: sentry.LevelError,
		401: sentry.LevelInfo,
		404: sentry.LevelInfo,
		429: sentry.LevelInfo,
		422: sentry.LevelWarning,
	}

	for status, want := range cases {
		if got := getSentryLevel(status); got != want {
			t.Fatalf("status %d: got %s want %s", status, got, want)
		}
	}

	if logLevelFor(422) != slog.LevelWarn || logLevelFor(404) != slog.LevelInfo {
		t.Fatalf("log levels wrong")
	}
}

func TestReporterValidationSkipsSentry(t *testing.T) {
	var events []*sentry.Event
	r := NewReporter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), newTestHub(t, &events))

	msg := r.Report(context.Background(), "create staff", &ValidationError{Endpoint: "createStaff", Fields: map[string]any{"email": "email"}})

	if msg != "createStaff: invalid fields [email]" {
		t.Fatalf("message %q", msg)
	}

	if len(events) != 0 {
		t.Fatalf("validation errors are not captured")
	}
}

func TestReporterPlainError(t *testing.T) {
	var events []*sentry.Event
	r := NewReporter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), newTestHub(t, &events))

	if msg := r.Report(context.Background(), "export", errors.New("disk full")); msg != "disk full" {
		t.Fatalf("message %q", msg)
	}

	if len(events) != 1 {
		t.Fatalf("expected one event")
	}

	if r.Report(context.Background(), "noop", nil) != "" {
		t.Fatalf("nil error should report nothing")
	}

	var nilReporter *Reporter
	if nilReporter.Report(context.Background(), "x", errors.New("y")) != "y" {
		t.Fatalf("nil reporter should still produce a message")
	}
}

func TestScopeApiErrorNilSafe(t *testing.T) {
	NewScopeApiError(nil, "x", &ApiError{}).Enrich()
	NewScopeApiError(sentry.NewScope(), "x", nil).Enrich()

	var s *ScopeApiError
	s.Enrich()
}

func TestBuildErrorChain(t *testing.T) {
	root := errors.New("root")
	wrapped := errors.Join(root)

	chain := (&ScopeApiError{}).buildErrorChain(FromResponse("x", 500, nil, "").Err)
	if len(chain) != 1 {
		t.Fatalf("chain %v", chain)
	}

	if got := (&ScopeApiError{}).buildErrorChain(wrapped); len(got) != 1 {
		t.Fatalf("joined errors do not unwrap singly: %v", got)
	}
}

type summaryError struct{ causes error }

func (e summaryError) Error() string   { return "2 of 3 updates failed (1 succeeded)" }
func (e summaryError) Summary() string { return e.Error() }
func (e summaryError) Unwrap() error   { return e.causes }

func TestReporterPrefersAggregateSummary(t *testing.T) {
	var events []*sentry.Event

	r := NewReporter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), newTestHub(t, &events))

	causes := errors.Join(
		FromResponse("moveCandidate", http.StatusConflict, []byte(`{"message":"stage locked"}`), ""),
		FromResponse("moveCandidate", http.StatusConflict, []byte(`{"message":"stage locked"}`), ""),
	)

	msg := r.Report(context.Background(), "move candidates", summaryError{causes: causes})

	if msg != "2 of 3 updates failed (1 succeeded)" {
		t.Fatalf("message %q", msg)
	}

	if len(events) != 1 || events[0].Tags["api.endpoint"] != "moveCandidate" {
		t.Fatalf("events %#v", events)
	}
}
