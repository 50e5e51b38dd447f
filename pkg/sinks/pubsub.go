package sinks

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"

	"github.com/samvad-hq/feature-tour/internal/logger"
)

type pubSubSink struct {
	id     string
	client *pubsub.Client
	topic  *pubsub.Topic
	log    logger.Logger
}

func newPubSubSink(ctx context.Context, cfg SinkConfig, log logger.Logger) (Sink, error) {
	if cfg.PubSub == nil {
		return nil, fmt.Errorf("missing pubsub configuration")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}

	return &pubSubSink{
		id:     cfg.ID,
		client: client,
		topic:  client.Topic(cfg.PubSub.Topic),
		log:    log,
	}, nil
}

func (p *pubSubSink) ID() string   { return p.id }
func (p *pubSubSink) Type() string { return TypePubSub }

// Publish blocks until the server acknowledges the message.
func (p *pubSubSink) Publish(ctx context.Context, r Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	res := p.topic.Publish(ctx, &pubsub.Message{
		Data:       payload,
		Attributes: r.Attributes(),
	})
	id, err := res.Get(ctx)
	if err != nil {
		return fmt.Errorf("pubsub publish: %w", err)
	}
	p.log.DebugObj("report published", "sink_delivery", map[string]any{
		"sink_id":    p.id,
		"message_id": id,
	})
	return nil
}

func (p *pubSubSink) Close() error {
	p.topic.Stop()
	return p.client.Close()
}
