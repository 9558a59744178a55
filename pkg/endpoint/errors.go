package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// FallbackMessage is shown when the server does not explain a failure.
const FallbackMessage = "Something went wrong. Please try again."

// ApiError mirrors the fetch layer's {status, data} error shape. Status is 0
// when the request never produced a response.
type ApiError struct {
	Endpoint  string `json:"endpoint"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Data      any    `json:"data,omitempty"`
	RequestID string `json:"requestId,omitempty"`
	Err       error  `json:"-"`
}

func (e *ApiError) Error() string {
	if e == nil {
		return FallbackMessage
	}

	return e.Message
}

func (e *ApiError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

func (e *ApiError) IsNetwork() bool {
	return e != nil && e.Status == 0
}

// FromResponse builds the error for a non-2xx response, preferring the
// server's own message.
func FromResponse(name string, status int, body []byte, requestID string) *ApiError {
	var data any
	message := FallbackMessage

	if len(body) > 0 && json.Unmarshal(body, &data) == nil {
		if envelope, ok := data.(map[string]any); ok {
			for _, key := range []string{"message", "error", "msg"} {
				if text, ok := envelope[key].(string); ok && strings.TrimSpace(text) != "" {
					message = strings.TrimSpace(text)
					break
				}
			}
		}
	} else if text := strings.TrimSpace(string(body)); text != "" {
		data = text
	}

	return &ApiError{
		Endpoint:  name,
		Message:   message,
		Status:    status,
		Data:      data,
		RequestID: requestID,
		Err:       fmt.Errorf("%s: %s", name, http.StatusText(status)),
	}
}

func NetworkError(name string, err error) *ApiError {
	return &ApiError{
		Endpoint: name,
		Message:  FallbackMessage,
		Status:   0,
		Err:      err,
	}
}

// DecodeError marks a 2xx response whose body could not be normalised.
func DecodeError(name string, status int, err error) *ApiError {
	return &ApiError{
		Endpoint: name,
		Message:  FallbackMessage,
		Status:   status,
		Err:      fmt.Errorf("%s: decode response: %w", name, err),
	}
}

// ValidationError blocks a submission before any request is made.
type ValidationError struct {
	Endpoint string
	Fields   map[string]any
	Err      error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "validation failed"
	}

	if len(e.Fields) == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
		}

		return "validation failed"
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return fmt.Sprintf("%s: invalid fields [%s]", e.Endpoint, strings.Join(keys, ", "))
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

func AsApiError(err error) (*ApiError, bool) {
	var apiErr *ApiError
	ok := errors.As(err, &apiErr)

	return apiErr, ok
}

func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	ok := errors.As(err, &validationErr)

	return validationErr, ok
}
