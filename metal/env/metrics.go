package env

type MetricsEnvironment struct {
	// Addr is where the console exposes Prometheus metrics; empty disables it.
	Addr string `validate:"omitempty,hostname_port"`
}

func (e MetricsEnvironment) IsEnabled() bool {
	return e.Addr != ""
}
