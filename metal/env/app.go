package env

import "strings"

const local = "local"
const staging = "staging"
const production = "production"

const localApiHost = "http://localhost:5000"

type AppEnvironment struct {
	Name string `validate:"required,min=4"`
	URL  string `validate:"required,url"`
	Type string `validate:"required,lowercase,oneof=local production staging"`
}

func (e AppEnvironment) IsProduction() bool {
	return e.Type == production
}

func (e AppEnvironment) IsStaging() bool {
	return e.Type == staging
}

func (e AppEnvironment) IsLocal() bool {
	return e.Type == local
}

// ApiHost resolves the backend origin: the local API server in development,
// the application's own origin everywhere else.
func (e AppEnvironment) ApiHost() string {
	if e.IsLocal() {
		return localApiHost
	}

	return strings.TrimRight(strings.TrimSpace(e.URL), "/")
}
