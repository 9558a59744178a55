package endpoint

import (
	"context"
	"errors"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// Reporter surfaces a failed user action exactly once: one log line, one
// Sentry event and one message for the operator.
type Reporter struct {
	logger *slog.Logger
	hub    *sentry.Hub
}

func NewReporter(logger *slog.Logger, hub *sentry.Hub) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}

	if hub == nil {
		hub = sentry.CurrentHub()
	}

	return &Reporter{logger: logger, hub: hub}
}

// Report returns the text to show for err. A nil err reports nothing.
func (r *Reporter) Report(ctx context.Context, action string, err error) string {
	if err == nil {
		return ""
	}

	if r == nil {
		return messageFor(err)
	}

	if validationErr, ok := AsValidationError(err); ok {
		r.logger.WarnContext(ctx, "validation failed", "action", action, "fields", validationErr.Fields)

		return validationErr.Error()
	}

	apiErr, ok := AsApiError(err)
	if !ok {
		apiErr = &ApiError{Message: messageFor(err), Err: err}
	}

	r.logger.Log(ctx, logLevelFor(apiErr.Status), "action failed",
		"action", action,
		"endpoint", apiErr.Endpoint,
		"status", apiErr.Status,
		"message", apiErr.Message,
		"request_id", apiErr.RequestID,
		"error", err,
	)

	hub := r.hub
	if fromCtx := sentry.GetHubFromContext(ctx); fromCtx != nil {
		hub = fromCtx
	}

	hub.WithScope(func(scope *sentry.Scope) {
		NewScopeApiError(scope, action, apiErr).Enrich()
		hub.CaptureException(err)
	})

	return messageFor(err)
}

// Summarizer is implemented by errors that aggregate several failures and
// carry their own user-facing summary.
type Summarizer interface {
	Summary() string
}

func messageFor(err error) string {
	var summarizer Summarizer
	if errors.As(err, &summarizer) {
		return summarizer.Summary()
	}

	var apiErr *ApiError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	if err.Error() != "" {
		return err.Error()
	}

	return FallbackMessage
}

func logLevelFor(status int) slog.Level {
	switch getSentryLevel(status) {
	case sentry.LevelError:
		return slog.LevelError
	case sentry.LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}
