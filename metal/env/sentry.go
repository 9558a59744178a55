package env

type SentryEnvironment struct {
	// DSN may be empty, in which case events are dropped by the SDK.
	DSN string `validate:"omitempty,min=3"`
}
