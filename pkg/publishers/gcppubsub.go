package publishers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	"github.com/Adda-Baaj/quicknews/internal/logger"
)

// pubsubSink publishes one message per headline and waits for the ack.
type pubsubSink struct {
	id    string
	topic *pubsub.Topic
	log   logger.Logger
}

func newPubSubSink(ctx context.Context, id string, cfg *GCPQueueConfig, log logger.Logger) (Sink, error) {
	if cfg == nil {
		return nil, errors.New("missing gcp_pubsub configuration")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}
	return &pubsubSink{id: id, topic: client.Topic(cfg.Topic), log: log}, nil
}

func (s *pubsubSink) Name() string { return QueueProviderGCP + ":" + s.id }

func (s *pubsubSink) Deliver(ctx context.Context, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode headline: %w", err)
	}

	attrs := make(map[string]string)
	for _, a := range evt.attributes() {
		attrs[a.name] = a.value
	}

	msgID, err := s.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs}).Get(ctx)
	if err != nil {
		return fmt.Errorf("pubsub publish to %s: %w", s.topic.ID(), err)
	}
	s.log.DebugObj("headline published", "sink_pubsub_delivery", map[string]any{
		"sink":       s.Name(),
		"position":   evt.Position,
		"message_id": msgID,
	})
	return nil
}
