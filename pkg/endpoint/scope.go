package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
)

type ScopeApiError struct {
	scope  *sentry.Scope
	action string
	apiErr *ApiError
}

func NewScopeApiError(scope *sentry.Scope, action string, apiErr *ApiError) *ScopeApiError {
	return &ScopeApiError{scope: scope, action: action, apiErr: apiErr}
}

func (s *ScopeApiError) Enrich() {
	if s == nil || s.scope == nil || s.apiErr == nil {
		return
	}

	s.scope.SetLevel(getSentryLevel(s.apiErr.Status))
	s.scope.SetTag("api.endpoint", s.apiErr.Endpoint)
	s.scope.SetTag("api.status_code", strconv.Itoa(s.apiErr.Status))

	if s.action != "" {
		s.scope.SetTag("ui.action", s.action)
	}

	s.scope.SetExtra("api_error_status_text", http.StatusText(s.apiErr.Status))
	s.scope.SetExtra("api_error_message", s.apiErr.Message)

	if s.apiErr.RequestID != "" {
		s.scope.SetTag("http.request_id", s.apiErr.RequestID)
	}

	if s.apiErr.Data != nil {
		s.scope.SetExtra("api_error_data", s.apiErr.Data)
	}

	if s.apiErr.Err != nil {
		s.scope.SetExtra("api_error_cause", s.apiErr.Err.Error())
		s.scope.SetTag("api.error.cause_type", fmt.Sprintf("%T", s.apiErr.Err))
		s.scope.SetExtra("api_error_cause_chain", s.buildErrorChain(s.apiErr.Err))
	}
}

func (s *ScopeApiError) buildErrorChain(err error) []string {
	chain := make([]string, 0, 4)

	for current := err; current != nil; current = errors.Unwrap(current) {
		chain = append(chain, current.Error())
	}

	return chain
}

func getSentryLevel(status int) sentry.Level {
	switch {
	case status == 0 || status >= http.StatusInternalServerError:
		return sentry.LevelError
	case status == http.StatusUnauthorized,
		status == http.StatusForbidden,
		status == http.StatusNotFound,
		status == http.StatusTooManyRequests:
		return sentry.LevelInfo
	default:
		return sentry.LevelWarning
	}
}
