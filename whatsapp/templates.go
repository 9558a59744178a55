package whatsapp

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/metal/env"
	"github.com/tunepath-askeva/eram/pkg/endpoint"
	"github.com/tunepath-askeva/eram/pkg/portal"
)

const (
	StatusApproved = "APPROVED"
	templatesName  = "getWhatsAppTemplates"
	templatesPath  = "/v1/templates"
)

var ErrMissingApiKey = errors.New("whatsapp api key is not configured")

var templatesAdapter = payload.Items("templates").WithLegacy("data")

// Provider reads message templates from the external WhatsApp provider.
type Provider struct {
	client *portal.Client
	apiKey string
}

func NewProvider(client *portal.Client, environment env.WhatsAppEnvironment) *Provider {
	return &Provider{
		client: client.WithBaseURL(environment.GetBaseURL()),
		apiKey: strings.TrimSpace(environment.ApiKey),
	}
}

// ApprovedTemplates returns only the templates the provider has approved.
func (p *Provider) ApprovedTemplates(ctx context.Context) ([]payload.WhatsAppTemplate, error) {
	if p.apiKey == "" {
		return nil, ErrMissingApiKey
	}

	// The transport skips requests carrying the token, so the span records
	// the path alone.
	ctx, span := portal.Tracer("eram/whatsapp").Start(ctx, templatesName, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.String("http.method", http.MethodGet),
		attribute.String("url.path", templatesPath),
	)

	resp, err := p.client.Do(ctx, portal.Request{
		Method: http.MethodGet,
		Path:   templatesPath,
		Query:  url.Values{"token": {p.apiKey}},
	})

	if err != nil {
		span.SetStatus(codes.Error, "network error")

		return nil, endpoint.NetworkError(templatesName, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.Status))

	if !resp.IsSuccessful() {
		apiErr := endpoint.FromResponse(templatesName, resp.Status, resp.Body, resp.RequestID)
		span.SetStatus(codes.Error, apiErr.Message)

		return nil, apiErr
	}

	page, err := payload.DecodeList[payload.WhatsAppTemplate](templatesAdapter)(resp.Body)
	if err != nil {
		return nil, endpoint.DecodeError(templatesName, resp.Status, err)
	}

	return Approved(page.Items), nil
}

func Approved(templates []payload.WhatsAppTemplate) []payload.WhatsAppTemplate {
	approved := make([]payload.WhatsAppTemplate, 0, len(templates))

	for _, template := range templates {
		if template.Status == StatusApproved {
			approved = append(approved, template)
		}
	}

	return approved
}
