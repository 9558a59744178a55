package env

import (
	"os"
	"path/filepath"
	"strings"
)

type Environment struct {
	App  AppEnvironment  `validate:"required"`
	Logs LogsEnvironment `validate:"required"`

	// Optional sections validate their own fields and may be empty.
	Api      ApiEnvironment
	Sentry   SentryEnvironment
	Tracing  TracingEnvironment
	WhatsApp WhatsAppEnvironment
	Search   SearchEnvironment
	Metrics  MetricsEnvironment
}

// SecretsDir defines where secret files are read from. It can be overridden in
// tests.
var SecretsDir = "/run/secrets"

func GetEnvVar(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func GetSecretOrEnv(secretName string, envVarName string) string {
	secretPath := filepath.Join(SecretsDir, secretName)

	content, err := os.ReadFile(secretPath)
	if err == nil {
		return strings.TrimSpace(string(content))
	}

	return GetEnvVar(envVarName)
}
