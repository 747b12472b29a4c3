package publishers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Adda-Baaj/quicknews/internal/logger"
	"github.com/Adda-Baaj/quicknews/pkg/httpclient"
)

// httpSink posts each headline event as JSON to a webhook.
type httpSink struct {
	id      string
	method  string
	url     string
	headers map[string]string
	client  *resty.Client
	log     logger.Logger
}

func newHTTPSink(id string, cfg *HTTPPublisherConfig, log logger.Logger) *httpSink {
	return &httpSink{
		id:      id,
		method:  cfg.Method,
		url:     cfg.URL,
		headers: cfg.Headers,
		client:  httpclient.NewRestyHTTPClient(time.Duration(cfg.TimeoutSeconds) * time.Second),
		log:     log,
	}
}

func (h *httpSink) Name() string { return TypeHTTP + ":" + h.id }

// Deliver treats any non-2xx reply as a failure.
func (h *httpSink) Deliver(ctx context.Context, evt Event) error {
	req := h.client.R().
		SetContext(ctx).
		SetHeaders(h.headers).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Headline-Position", fmt.Sprint(evt.Position)).
		SetBody(evt)

	resp, err := req.Execute(h.method, h.url)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("webhook status %d: %s", resp.StatusCode(), bodySnippet(resp.Body()))
	}

	h.log.DebugObj("headline delivered to webhook", "sink_http_delivery", map[string]any{
		"sink":     h.Name(),
		"position": evt.Position,
		"url":      evt.Article.URL,
		"status":   resp.StatusCode(),
	})
	return nil
}

func bodySnippet(body []byte) string {
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
