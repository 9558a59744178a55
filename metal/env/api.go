package env

import (
	"strings"
	"time"
)

const defaultApiTimeout = 15 * time.Second

type ApiEnvironment struct {
	// Host overrides the origin derived from the app environment.
	Host          string `validate:"omitempty,url"`
	TimeoutSecs   int    `validate:"gte=0,lte=120"`
	SessionCookie string `validate:"omitempty,min=8"`
}

func (e ApiEnvironment) GetTimeout() time.Duration {
	if e.TimeoutSecs <= 0 {
		return defaultApiTimeout
	}

	return time.Duration(e.TimeoutSecs) * time.Second
}

// ResolveHost returns the configured host, falling back to the app's origin.
func (e ApiEnvironment) ResolveHost(app AppEnvironment) string {
	if host := strings.TrimRight(strings.TrimSpace(e.Host), "/"); host != "" {
		return host
	}

	return app.ApiHost()
}
