package env

import (
	"strconv"
	"strings"
)

const defaultTracingEndpoint = "http://localhost:4318"

// TracingEnvironment configures OTLP export of API request spans.
type TracingEnvironment struct {
	Enabled     bool
	Endpoint    string  `validate:"required_if=Enabled true,omitempty,url"`
	SampleRatio float64 `validate:"gte=0,lte=1"`
}

// NewTracingEnvironment reads ENV_TRACING_*. An enabled exporter without an
// endpoint talks to a local collector; a missing or unreadable ratio samples
// every request.
func NewTracingEnvironment() TracingEnvironment {
	enabled := strings.EqualFold(GetEnvVar("ENV_TRACING_ENABLED"), "true")
	endpoint := GetEnvVar("ENV_TRACING_OTLP_ENDPOINT")

	if enabled && endpoint == "" {
		endpoint = defaultTracingEndpoint
	}

	ratio := 1.0
	if raw := GetEnvVar("ENV_TRACING_SAMPLE_RATIO"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			ratio = parsed
		}
	}

	return TracingEnvironment{
		Enabled:     enabled,
		Endpoint:    endpoint,
		SampleRatio: ratio,
	}
}
