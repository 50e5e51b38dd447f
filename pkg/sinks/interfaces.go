package sinks

import "context"

// Sink sends a report to a downstream destination (HTTP, SQS, SNS, Pub/Sub).
type Sink interface {
	ID() string
	Type() string
	Publish(ctx context.Context, r Report) error
	Close() error
}
