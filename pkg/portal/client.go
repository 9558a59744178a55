package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Client struct {
	UserAgent      string
	BaseURL        string
	client         *http.Client
	transport      http.RoundTripper
	OnHeaders      func(req *http.Request)
	AbortOnNone2xx bool
	MaxBodySize    int64
}

// Request describes one call against BaseURL. Path is joined to BaseURL unless
// it is already absolute.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers http.Header
}

type Response struct {
	Status    int
	Header    http.Header
	Body      []byte
	RequestID string
}

func (r *Response) IsSuccessful() bool {
	return r != nil && r.Status >= 200 && r.Status < 300
}

func GetDefaultTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
}

// NewDefaultClient builds a client that keeps cookies between calls, the
// equivalent of sending credentials with every request.
func NewDefaultClient(transport http.RoundTripper) *Client {
	return NewClient("", transport, 15*time.Second)
}

func NewClient(baseURL string, transport http.RoundTripper, timeout time.Duration) *Client {
	if transport == nil {
		transport = GetDefaultTransport()
	}

	jar, _ := cookiejar.New(nil)

	client := &http.Client{
		Transport: otelhttp.NewTransport(transport, otelhttp.WithFilter(Traceable)),
		Timeout:   timeout,
		Jar:       jar,
	}

	return &Client{
		client:         client,
		transport:      transport,
		BaseURL:        strings.TrimRight(baseURL, "/"),
		UserAgent:      "eram-admin",
		OnHeaders:      nil,
		AbortOnNone2xx: false,
	}
}

// credentialKeys are query parameters that carry secrets. Client spans record
// the full URL, so requests using them are left out of tracing.
var credentialKeys = []string{"token", "access_token", "api_key", "apikey"}

// Traceable reports whether the request may be recorded on a client span.
func Traceable(r *http.Request) bool {
	if r == nil || r.URL == nil || r.URL.RawQuery == "" {
		return true
	}

	query := r.URL.Query()

	for _, key := range credentialKeys {
		if query.Has(key) {
			return false
		}
	}

	return true
}

// WithBaseURL returns a shallow copy bound to another origin. The cookie jar
// and transport are shared.
func (f *Client) WithBaseURL(baseURL string) *Client {
	if f == nil {
		return nil
	}

	clone := *f
	clone.BaseURL = strings.TrimRight(baseURL, "/")

	return &clone
}

// SetCookie seeds the jar with a session cookie for BaseURL.
func (f *Client) SetCookie(cookie *http.Cookie) error {
	if f == nil || f.client == nil || f.client.Jar == nil {
		return fmt.Errorf("client is nil")
	}

	u, err := url.Parse(f.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid base url %q", f.BaseURL)
	}

	f.client.Jar.SetCookies(u, []*http.Cookie{cookie})

	return nil
}

func (f *Client) Get(ctx context.Context, url string) (string, error) {
	resp, err := f.Do(ctx, Request{Method: http.MethodGet, Path: url})
	if err != nil {
		return "", err
	}

	return string(resp.Body), nil
}

// Do executes the request. Non-2xx responses are returned with a nil error
// unless AbortOnNone2xx is set; callers decide how to surface them.
func (f *Client) Do(ctx context.Context, r Request) (*Response, error) {
	if f == nil || f.client == nil {
		return nil, fmt.Errorf("client is nil")
	}

	req, err := f.newRequest(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := req.Header.Get(RequestIDHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	reader, _, err := wrapHTTPBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	defer CloseWithLog(reader)

	if f.AbortOnNone2xx && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return nil, fmt.Errorf("received non-2xx status code: %d", resp.StatusCode)
	}

	body, err := ReadWithSizeLimit(reader, f.MaxBodySize)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		Status:    resp.StatusCode,
		Header:    resp.Header,
		Body:      body,
		RequestID: requestID,
	}, nil
}

func (f *Client) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := strings.ToUpper(strings.TrimSpace(r.Method))
	if method == "" {
		method = http.MethodGet
	}

	target := r.Path
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = JoinURL(f.BaseURL, target)
	}

	if encoded := SortedValues(r.Query); encoded != "" {
		separator := "?"
		if strings.Contains(target, "?") {
			separator = "&"
		}

		target += separator + encoded
	}

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}

		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	for key, values := range r.Headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	req.Header.Set(ContentTypeHeader, JsonContentType)
	req.Header.Set(AcceptHeader, JsonContentType)
	req.Header.Set(AcceptEncodingHeader, SupportedEncodings)

	requestID := uuid.NewString()
	if v, ok := ctx.Value(RequestIDKey).(string); ok && strings.TrimSpace(v) != "" {
		requestID = strings.TrimSpace(v)
	}

	req.Header.Set(RequestIDHeader, requestID)

	if f.OnHeaders != nil {
		f.OnHeaders(req)
	}

	req.Header.Set(UserAgentHeader, f.UserAgent)

	return req, nil
}
