package publishers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/Adda-Baaj/quicknews/internal/logger"
)

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// sqsSink enqueues one message per headline.
type sqsSink struct {
	id       string
	queueURL string
	api      sqsAPI
	log      logger.Logger
}

func newSQSSink(ctx context.Context, id string, cfg *AWSSQSPublisherConfig, log logger.Logger) (Sink, error) {
	if cfg == nil {
		return nil, errors.New("missing aws_sqs configuration")
	}
	awsCfg, err := loadAWSConfig(ctx, cfg.Region, cfg.AWSCredentials)
	if err != nil {
		return nil, err
	}
	return &sqsSink{id: id, queueURL: cfg.QueueURL, api: sqs.NewFromConfig(awsCfg), log: log}, nil
}

func (s *sqsSink) Name() string { return QueueProviderAWSSQS + ":" + s.id }

func (s *sqsSink) Deliver(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode headline: %w", err)
	}

	attrs := make(map[string]types.MessageAttributeValue)
	for _, a := range evt.attributes() {
		attrs[a.name] = types.MessageAttributeValue{DataType: aws.String(a.kind), StringValue: aws.String(a.value)}
	}

	out, err := s.api.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:          aws.String(s.queueURL),
		MessageBody:       aws.String(string(body)),
		MessageAttributes: attrs,
	})
	if err != nil {
		return fmt.Errorf("sqs send: %w", err)
	}
	s.log.DebugObj("headline enqueued", "sink_sqs_delivery", map[string]any{
		"sink":       s.Name(),
		"position":   evt.Position,
		"message_id": aws.ToString(out.MessageId),
	})
	return nil
}
