package env

import "strings"

const defaultWhatsAppBaseURL = "https://backend.askeva.io"

type WhatsAppEnvironment struct {
	BaseURL string `validate:"omitempty,url"`
	ApiKey  string `validate:"omitempty,min=8"`
}

func (e WhatsAppEnvironment) GetBaseURL() string {
	if url := strings.TrimRight(strings.TrimSpace(e.BaseURL), "/"); url != "" {
		return url
	}

	return defaultWhatsAppBaseURL
}

func (e WhatsAppEnvironment) HasApiKey() bool {
	return strings.TrimSpace(e.ApiKey) != ""
}
