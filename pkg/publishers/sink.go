package publishers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Adda-Baaj/quicknews/internal/logger"
)

// Sink delivers headline events to one downstream destination.
type Sink interface {
	// Name identifies the sink in logs and errors as "<kind>:<id>".
	Name() string
	Deliver(ctx context.Context, evt Event) error
}

// Open builds a Sink for every config, in order.
func Open(ctx context.Context, cfgs []PublisherConfig, log logger.Logger) ([]Sink, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	sinks := make([]Sink, 0, len(cfgs))
	for _, cfg := range cfgs {
		s, err := openSink(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("open publisher %q: %w", cfg.ID, err)
		}
		sinks = append(sinks, s)
	}
	return sinks, nil
}

func openSink(ctx context.Context, cfg PublisherConfig, log logger.Logger) (Sink, error) {
	switch cfg.Type {
	case TypeHTTP:
		if cfg.HTTP == nil {
			return nil, errors.New("missing http configuration")
		}
		return newHTTPSink(cfg.ID, cfg.HTTP, log), nil
	case TypeQueue:
		if cfg.Queue == nil {
			return nil, errors.New("missing queue configuration")
		}
		switch cfg.Queue.Provider {
		case QueueProviderAWSSQS:
			return newSQSSink(ctx, cfg.ID, cfg.Queue.SQS, log)
		case QueueProviderAWSSNS:
			return newSNSSink(ctx, cfg.ID, cfg.Queue.SNS, log)
		case QueueProviderGCP:
			return newPubSubSink(ctx, cfg.ID, cfg.Queue.GCP, log)
		}
		return nil, fmt.Errorf("queue provider %q is not supported", cfg.Queue.Provider)
	}
	return nil, fmt.Errorf("publisher type %q is not supported", cfg.Type)
}
