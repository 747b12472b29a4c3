package newsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Adda-Baaj/quicknews/pkg/httpclient"
)

const (
	// DefaultUserAgent is sent on the async path.
	DefaultUserAgent = "quicknews"

	defaultTimeout = 15 * time.Second
)

// Client fetches headlines from NewsAPI. Configure it with the fluent setters
// before issuing a request; it must not be mutated concurrently.
type Client struct {
	apiKey    string
	endpoint  Endpoint
	country   Country
	baseURL   string
	userAgent string
	http      httpclient.Client
	log       Logger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the API root (tests, proxies).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base = strings.TrimSpace(base); base != "" {
			c.baseURL = base
		}
	}
}

// WithHTTPClient injects the byte-transfer mechanism.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent sent by FetchAsync.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New builds a client for apiKey defaulting to top headlines for India.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		endpoint:  TopHeadlines,
		country:   CountryIN,
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		log:       noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(defaultTimeout)
	}
	return c
}

// Endpoint sets the endpoint for subsequent requests.
func (c *Client) Endpoint(e Endpoint) *Client {
	c.endpoint = e
	return c
}

// Country sets the country for subsequent requests.
func (c *Client) Country(cc Country) *Client {
	c.country = cc
	return c
}

// Result is delivered by FetchAsync.
type Result struct {
	Response *Response
	Err      error
}

// Fetch performs the request and blocks until it completes.
func (c *Client) Fetch(ctx context.Context) (*Response, error) {
	req, err := c.prepare(false)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, req)
}

// FetchAsync starts the request and returns immediately. The channel yields
// exactly one Result and is then closed.
func (c *Client) FetchAsync(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)

	req, err := c.prepare(true)
	if err != nil {
		out <- Result{Err: err}
		close(out)
		return out
	}

	go func() {
		defer close(out)
		resp, err := c.execute(ctx, req)
		out <- Result{Response: resp, Err: err}
	}()
	return out
}

// request is a snapshot of everything needed to issue one call.
type request struct {
	url      string
	headers  map[string]string
	endpoint Endpoint
	country  Country
}

func (c *Client) prepare(async bool) (request, error) {
	u, err := buildURL(c.baseURL, c.endpoint, c.country)
	if err != nil {
		return request{}, err
	}

	headers := map[string]string{"Authorization": c.apiKey}
	if async {
		headers["User-Agent"] = c.userAgent
	}
	return request{url: u, headers: headers, endpoint: c.endpoint, country: c.country}, nil
}

func (c *Client) execute(ctx context.Context, req request) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	c.log.DebugObj("newsapi request", "newsapi_request", map[string]any{
		"url":      req.url,
		"endpoint": req.endpoint.String(),
		"country":  req.country.String(),
	})

	resp, err := c.http.Get(ctx, req.url, req.headers)
	if err != nil {
		var readErr *httpclient.ReadError
		if errors.As(err, &readErr) {
			return nil, c.fail(req, newError(KindResponseRead, err))
		}
		return nil, c.fail(req, newError(KindTransport, err))
	}

	out, err := interpretHTTP(resp.StatusCode(), resp.Body())
	if err != nil {
		return nil, c.fail(req, err)
	}
	out.endpoint, out.country = req.endpoint, req.country

	c.log.DebugObj("newsapi response", "newsapi_response", map[string]any{
		"url":           req.url,
		"articles":      len(out.articles),
		"total_results": out.totalResults,
		"elapsed_ms":    time.Since(start).Milliseconds(),
	})
	return out, nil
}

// interpretHTTP applies status handling on top of envelope parsing. A non-2xx
// reply carrying an error envelope is mapped like any other; anything else
// outside 2xx is a transport failure.
func interpretHTTP(status int, body []byte) (*Response, error) {
	env, err := decodeEnvelope(body)
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		if err != nil || *env.Status == statusOK {
			return nil, newError(KindTransport, fmt.Errorf("unexpected status %d body: %s", status, responseSnippet(body)))
		}
	}
	if err != nil {
		return nil, err
	}
	return interpret(env)
}

func (c *Client) fail(req request, err error) error {
	fields := map[string]any{
		"url":   req.url,
		"error": err.Error(),
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		fields["kind"] = apiErr.Kind.String()
		if apiErr.Code != "" {
			fields["code"] = apiErr.Code
		}
	}
	c.log.WarnObj("newsapi request failed", "newsapi_error", fields)
	return err
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
