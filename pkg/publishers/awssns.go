package publishers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/Adda-Baaj/quicknews/internal/logger"
)

type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// snsSink publishes one notification per headline to a topic.
type snsSink struct {
	id       string
	topicARN string
	api      snsAPI
	log      logger.Logger
}

func newSNSSink(ctx context.Context, id string, cfg *AWSSNSPublisherConfig, log logger.Logger) (Sink, error) {
	if cfg == nil {
		return nil, errors.New("missing aws_sns configuration")
	}
	awsCfg, err := loadAWSConfig(ctx, cfg.Region, cfg.AWSCredentials)
	if err != nil {
		return nil, err
	}
	return &snsSink{id: id, topicARN: cfg.TopicARN, api: sns.NewFromConfig(awsCfg), log: log}, nil
}

func (s *snsSink) Name() string { return QueueProviderAWSSNS + ":" + s.id }

func (s *snsSink) Deliver(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode headline: %w", err)
	}

	attrs := make(map[string]types.MessageAttributeValue)
	for _, a := range evt.attributes() {
		attrs[a.name] = types.MessageAttributeValue{DataType: aws.String(a.kind), StringValue: aws.String(a.value)}
	}

	out, err := s.api.Publish(ctx, &sns.PublishInput{
		TopicArn:          aws.String(s.topicARN),
		Message:           aws.String(string(body)),
		MessageAttributes: attrs,
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	s.log.DebugObj("headline published", "sink_sns_delivery", map[string]any{
		"sink":       s.Name(),
		"position":   evt.Position,
		"message_id": aws.ToString(out.MessageId),
	})
	return nil
}
