package sinks

import (
	"context"
	"errors"
	"fmt"

	"github.com/samvad-hq/feature-tour/internal/logger"
)

// Builder creates a Sink from a validated config entry.
type Builder func(ctx context.Context, cfg SinkConfig, log logger.Logger) (Sink, error)

// Builders maps a sink type to its constructor.
type Builders map[string]Builder

// DefaultBuilders covers every type LoadRegistry accepts.
func DefaultBuilders() Builders {
	return Builders{
		TypeHTTP:   newHTTPSink,
		TypeSQS:    newQueueSink,
		TypeSNS:    newTopicSink,
		TypePubSub: newPubSubSink,
	}
}

// Open builds one sink per config and returns them behind a Fanout. When a
// build fails the sinks opened so far are closed.
func (b Builders) Open(ctx context.Context, cfgs []SinkConfig, log logger.Logger) (*Fanout, error) {
	if log == nil {
		log = logger.NopLogger{}
	}

	f := &Fanout{}
	for _, cfg := range cfgs {
		build := b[cfg.Type]
		if build == nil {
			return nil, errors.Join(fmt.Errorf("sink %q: unsupported type %q", cfg.ID, cfg.Type), f.Close())
		}
		s, err := build(ctx, cfg, log)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("sink %q: %w", cfg.ID, err), f.Close())
		}
		f.sinks = append(f.sinks, s)
	}
	return f, nil
}
