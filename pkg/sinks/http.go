package sinks

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/samvad-hq/feature-tour/internal/logger"
	"github.com/samvad-hq/feature-tour/pkg/httpclient"
)

// RunHeader carries the run id on webhook deliveries.
const RunHeader = "X-Tour-Run"

// webhookSink sends the report as a JSON body. Configured headers are set
// once on the client and apply to every delivery.
type webhookSink struct {
	id     string
	method string
	url    string
	client *resty.Client
	log    logger.Logger
}

func newHTTPSink(_ context.Context, cfg SinkConfig, log logger.Logger) (Sink, error) {
	if cfg.HTTP == nil {
		return nil, fmt.Errorf("missing http configuration")
	}

	client := httpclient.NewRestyHTTPClient(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second).
		SetHeaders(cfg.HTTP.Headers).
		SetHeader("Content-Type", "application/json")

	return &webhookSink{
		id:     cfg.ID,
		method: cfg.HTTP.Method,
		url:    cfg.HTTP.URL,
		client: client,
		log:    log,
	}, nil
}

func (w *webhookSink) ID() string   { return w.id }
func (w *webhookSink) Type() string { return TypeHTTP }
func (w *webhookSink) Close() error { return nil }

func (w *webhookSink) Publish(ctx context.Context, r Report) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader(RunHeader, r.RunID).
		SetBody(r).
		Execute(w.method, w.url)
	if err != nil {
		return fmt.Errorf("%s %s: %w", w.method, w.url, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%s %s: unexpected status %s", w.method, w.url, resp.Status())
	}

	w.log.DebugObj("report delivered", "sink_delivery", map[string]any{
		"sink_id":     w.id,
		"status_code": resp.StatusCode(),
	})
	return nil
}
