package kernel

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"

	"github.com/tunepath-askeva/eram/metal/env"
	"github.com/tunepath-askeva/eram/pkg/llogs"
	"github.com/tunepath-askeva/eram/pkg/portal"
)

func MakeSentry(env *env.Environment) (*sentry.Hub, error) {
	options := sentry.ClientOptions{
		Dsn:              env.Sentry.DSN,
		Environment:      env.App.Type,
		ServerName:       env.App.Name,
		AttachStacktrace: true,
		Debug:            env.App.IsLocal(),
	}

	if err := sentry.Init(options); err != nil {
		return nil, fmt.Errorf("sentry.Init: %w", err)
	}

	return sentry.CurrentHub(), nil
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

// MakeClient builds the API client for the resolved backend host, seeded with
// the configured session cookie.
func MakeClient(env *env.Environment) (*portal.Client, error) {
	client := portal.NewClient(
		env.Api.ResolveHost(env.App),
		portal.GetDefaultTransport(),
		env.Api.GetTimeout(),
	)

	if env.Api.SessionCookie != "" {
		cookie := &http.Cookie{
			Name:     SessionCookieName,
			Value:    env.Api.SessionCookie,
			Path:     "/",
			HttpOnly: true,
		}

		if err := client.SetCookie(cookie); err != nil {
			return nil, fmt.Errorf("seed session cookie: %w", err)
		}
	}

	return client, nil
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	app := env.AppEnvironment{
		Name: env.GetEnvVar("ENV_APP_NAME"),
		URL:  env.GetEnvVar("ENV_APP_URL"),
		Type: env.GetEnvVar("ENV_APP_ENV_TYPE"),
	}

	api := env.ApiEnvironment{
		Host:          env.GetEnvVar("ENV_API_HOST"),
		TimeoutSecs:   intVar(errorSuffix, "ENV_API_TIMEOUT"),
		SessionCookie: env.GetSecretOrEnv("api_session_cookie", "ENV_API_SESSION_COOKIE"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
	}

	whatsAppEnv := env.WhatsAppEnvironment{
		BaseURL: env.GetEnvVar("ENV_WHATSAPP_BASE_URL"),
		ApiKey:  env.GetSecretOrEnv("whatsapp_api_key", "ENV_WHATSAPP_API_KEY"),
	}

	searchEnv := env.SearchEnvironment{
		DebounceMS: intVar(errorSuffix, "ENV_SEARCH_DEBOUNCE_MS"),
	}

	metricsEnv := env.MetricsEnvironment{
		Addr: env.GetEnvVar("ENV_METRICS_ADDR"),
	}

	tracingEnv := env.NewTracingEnvironment()

	if _, err := validate.Rejects(app); err != nil {
		panic(errorSuffix + "invalid [APP] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(api); err != nil {
		panic(errorSuffix + "invalid [API] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(logsEnv); err != nil {
		panic(errorSuffix + "invalid [logs Credentials] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(sentryEnv); err != nil {
		panic(errorSuffix + "invalid [SENTRY] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(whatsAppEnv); err != nil {
		panic(errorSuffix + "invalid [WHATSAPP] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(searchEnv); err != nil {
		panic(errorSuffix + "invalid [SEARCH] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(metricsEnv); err != nil {
		panic(errorSuffix + "invalid [METRICS] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(tracingEnv); err != nil {
		panic(errorSuffix + "invalid [TRACING] model: " + validate.GetErrorsAsJson())
	}

	eram := &env.Environment{
		App:      app,
		Api:      api,
		Logs:     logsEnv,
		Sentry:   sentryEnv,
		Tracing:  tracingEnv,
		WhatsApp: whatsAppEnv,
		Search:   searchEnv,
		Metrics:  metricsEnv,
	}

	if _, err := validate.Rejects(eram); err != nil {
		panic(errorSuffix + "invalid [eram] model: " + validate.GetErrorsAsJson())
	}

	return eram
}

// intVar reads an optional integer variable; empty means zero.
func intVar(errorSuffix, key string) int {
	raw := env.GetEnvVar(key)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		panic(errorSuffix + "invalid value for " + key + ": " + err.Error())
	}

	return value
}
