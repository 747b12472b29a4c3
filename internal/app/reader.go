package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Adda-Baaj/quicknews/internal/config"
	"github.com/Adda-Baaj/quicknews/internal/logger"
	"github.com/Adda-Baaj/quicknews/internal/render"
	"github.com/Adda-Baaj/quicknews/pkg/newsapi"
	"github.com/Adda-Baaj/quicknews/pkg/publishers"
)

// HeadlineClient is the subset of newsapi.Client the reader drives.
type HeadlineClient interface {
	Fetch(ctx context.Context) (*newsapi.Response, error)
	FetchAsync(ctx context.Context) <-chan newsapi.Result
}

// Reader wires the news client, the terminal renderer and optional forwarding.
type Reader struct {
	client    HeadlineClient
	renderer  *render.Renderer
	forwarder *publishers.Forwarder
	mode      string
	out       io.Writer
	log       logger.Logger
}

// NewReader builds a reader runtime from config.
func NewReader(ctx context.Context, cfg *config.Config, log logger.Logger) (*Reader, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := newsapi.New(cfg.APIKey,
		newsapi.WithBaseURL(cfg.BaseURL),
		newsapi.WithUserAgent(cfg.UserAgent),
		newsapi.WithLogger(log),
	).Endpoint(newsapi.TopHeadlines).Country(newsapi.CountryIN)

	var forwarder *publishers.Forwarder
	if cfg.PublishersFile != "" {
		pubCfgs, err := publishers.LoadConfigs(cfg.PublishersFile)
		if err != nil {
			return nil, fmt.Errorf("load publishers: %w", err)
		}
		sinks, err := publishers.Open(ctx, pubCfgs, log)
		if err != nil {
			return nil, fmt.Errorf("open publishers: %w", err)
		}
		forwarder = publishers.NewForwarder(sinks, log)

		names := make([]string, 0, len(sinks))
		for _, s := range sinks {
			names = append(names, s.Name())
		}
		log.InfoObj("publishers loaded", "publishers_meta", map[string]any{
			"count": len(names),
			"sinks": names,
		})
	}

	return &Reader{
		client:    client,
		renderer:  render.New(),
		forwarder: forwarder,
		mode:      cfg.FetchMode,
		out:       os.Stdout,
		log:       log,
	}, nil
}

// Run fetches headlines once, renders them and forwards them if configured.
func (r *Reader) Run(ctx context.Context) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("reader is not initialized")
	}

	start := time.Now()
	var (
		resp *newsapi.Response
		err  error
	)
	if r.mode == config.FetchModeSync {
		resp, err = r.runSync(ctx)
	} else {
		resp, err = r.runAsync(ctx)
	}
	if err != nil {
		return err
	}
	r.log.InfoObj("headlines rendered", "fetch_meta", map[string]any{
		"mode":       r.mode,
		"endpoint":   resp.Endpoint().String(),
		"country":    resp.Country().String(),
		"articles":   len(resp.Articles()),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	return r.forward(ctx, resp)
}

// runSync blocks on the request and prints nothing unless it succeeds.
func (r *Reader) runSync(ctx context.Context) (*newsapi.Response, error) {
	resp, err := r.client.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}
	if err := r.renderer.Render(r.out, resp.Articles()); err != nil {
		return nil, fmt.Errorf("render headlines: %w", err)
	}
	return resp, nil
}

// runAsync writes the banner while the request is in flight.
func (r *Reader) runAsync(ctx context.Context) (*newsapi.Response, error) {
	pending := r.client.FetchAsync(ctx)
	bannerErr := r.renderer.Banner(r.out)

	res := <-pending
	if res.Err != nil {
		return nil, fmt.Errorf("fetch headlines: %w", res.Err)
	}
	if bannerErr != nil {
		return nil, fmt.Errorf("render banner: %w", bannerErr)
	}
	if err := r.renderer.Articles(r.out, res.Response.Articles()); err != nil {
		return nil, fmt.Errorf("render headlines: %w", err)
	}
	return res.Response, nil
}

// forward sends the headlines on, tagged with the request that fetched them.
func (r *Reader) forward(ctx context.Context, resp *newsapi.Response) error {
	if r.forwarder.Sinks() == 0 {
		return nil
	}

	rep, err := r.forwarder.Forward(ctx, publishers.Batch{
		Endpoint: resp.Endpoint().String(),
		Country:  resp.Country().String(),
		Articles: resp.Articles(),
	})
	if err != nil {
		r.log.ErrorObj("forwarding headlines failed", "forward_error", map[string]any{
			"delivered": rep.Delivered,
			"failed":    rep.Failed,
			"events":    rep.Events,
			"error":     err.Error(),
		})
		return fmt.Errorf("forward headlines: %w", err)
	}
	r.log.InfoObj("headlines forwarded", "forward_meta", map[string]any{
		"delivered": rep.Delivered,
		"sinks":     r.forwarder.Sinks(),
	})
	return nil
}
