package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/samvad-hq/feature-tour/internal/logger"
)

// fifoGroup is the message group used for FIFO queues. Reports from one
// tour are ordered; the run id deduplicates redeliveries.
const fifoGroup = "feature-tour"

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// loadAWSConfig resolves credentials through the default chain.
func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

// awsAttributes converts report attributes into the SQS or SNS
// attribute type, which share a shape but not a Go type.
func awsAttributes[T any](r Report, attr func(dataType, value string) T) map[string]T {
	attrs := r.Attributes()
	out := make(map[string]T, len(attrs))
	for name, value := range attrs {
		dataType := "String"
		if numericAttribute(name) {
			dataType = "Number"
		}
		out[name] = attr(dataType, value)
	}
	return out
}

// queueSink sends reports to an SQS queue.
type queueSink struct {
	id       string
	queueURL string
	api      sqsAPI
	log      logger.Logger
}

func newQueueSink(ctx context.Context, cfg SinkConfig, log logger.Logger) (Sink, error) {
	if cfg.SQS == nil {
		return nil, fmt.Errorf("missing sqs configuration")
	}
	awsCfg, err := loadAWSConfig(ctx, cfg.SQS.Region)
	if err != nil {
		return nil, err
	}
	return &queueSink{id: cfg.ID, queueURL: cfg.SQS.QueueURL, api: sqs.NewFromConfig(awsCfg), log: log}, nil
}

func (q *queueSink) ID() string   { return q.id }
func (q *queueSink) Type() string { return TypeSQS }
func (q *queueSink) Close() error { return nil }

func (q *queueSink) Publish(ctx context.Context, r Report) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	in := &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: awsAttributes(r, func(dataType, value string) sqstypes.MessageAttributeValue {
			return sqstypes.MessageAttributeValue{DataType: aws.String(dataType), StringValue: aws.String(value)}
		}),
	}
	if strings.HasSuffix(q.queueURL, ".fifo") {
		in.MessageGroupId = aws.String(fifoGroup)
		in.MessageDeduplicationId = aws.String(r.RunID)
	}

	out, err := q.api.SendMessage(ctx, in)
	if err != nil {
		return fmt.Errorf("sqs send: %w", err)
	}
	q.log.DebugObj("report queued", "sink_delivery", map[string]any{
		"sink_id":    q.id,
		"message_id": aws.ToString(out.MessageId),
	})
	return nil
}

// topicSink publishes reports to an SNS topic.
type topicSink struct {
	id       string
	topicARN string
	api      snsAPI
	log      logger.Logger
}

func newTopicSink(ctx context.Context, cfg SinkConfig, log logger.Logger) (Sink, error) {
	if cfg.SNS == nil {
		return nil, fmt.Errorf("missing sns configuration")
	}
	awsCfg, err := loadAWSConfig(ctx, cfg.SNS.Region)
	if err != nil {
		return nil, err
	}
	return &topicSink{id: cfg.ID, topicARN: cfg.SNS.TopicARN, api: sns.NewFromConfig(awsCfg), log: log}, nil
}

func (t *topicSink) ID() string   { return t.id }
func (t *topicSink) Type() string { return TypeSNS }
func (t *topicSink) Close() error { return nil }

func (t *topicSink) Publish(ctx context.Context, r Report) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	out, err := t.api.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(t.topicARN),
		Subject:  aws.String("feature-tour report " + r.RunID),
		Message:  aws.String(string(body)),
		MessageAttributes: awsAttributes(r, func(dataType, value string) snstypes.MessageAttributeValue {
			return snstypes.MessageAttributeValue{DataType: aws.String(dataType), StringValue: aws.String(value)}
		}),
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	t.log.DebugObj("report published", "sink_delivery", map[string]any{
		"sink_id":    t.id,
		"message_id": aws.ToString(out.MessageId),
	})
	return nil
}
