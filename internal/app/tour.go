package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/samvad-hq/feature-tour/internal/config"
	"github.com/samvad-hq/feature-tour/internal/fetcher"
	"github.com/samvad-hq/feature-tour/internal/logger"
	"github.com/samvad-hq/feature-tour/internal/storage"
	"github.com/samvad-hq/feature-tour/internal/walkthrough"
	"github.com/samvad-hq/feature-tour/pkg/httpclient"
	"github.com/samvad-hq/feature-tour/pkg/sinks"
)

// Tour is the feature-tour runtime. It owns the joke store and the sink
// fanout and runs every section once, in order.
type Tour struct {
	cfg      *config.Config
	log      logger.Logger
	out      io.Writer
	args     []string
	client   httpclient.Client
	store    storage.Store
	fanout   *sinks.Fanout
	sections []walkthrough.Section
	newRunID func() string
}

// Option customizes a Tour.
type Option func(*Tour)

// WithOutput redirects section output. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(t *Tour) {
		if w != nil {
			t.out = w
		}
	}
}

// WithArgs sets the arguments echoed by the cli section. Defaults to os.Args.
func WithArgs(args []string) Option {
	return func(t *Tour) { t.args = args }
}

// WithHTTPClient replaces the resty client used by the fetch section.
func WithHTTPClient(c httpclient.Client) Option {
	return func(t *Tour) { t.client = c }
}

// WithSections replaces the section list. Used by tests.
func WithSections(sections []walkthrough.Section) Option {
	return func(t *Tour) { t.sections = sections }
}

// NewTour builds a tour runtime from config.
func NewTour(ctx context.Context, cfg *config.Config, log logger.Logger, opts ...Option) (*Tour, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	t := &Tour{
		cfg:      cfg,
		log:      log,
		out:      os.Stdout,
		args:     os.Args,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, cfg.StorageTTL)
	switch {
	case errors.Is(err, storage.ErrUnavailable):
		log.WarnObj("joke store unavailable; jokes will not be remembered", "storage_error", map[string]any{
			"type":  cfg.StorageType,
			"path":  cfg.BBoltPath,
			"error": err.Error(),
		})
		store = storage.Nop()
	case err != nil:
		return nil, fmt.Errorf("init storage: %w", err)
	default:
		log.InfoObj("storage initialized", "storage_config", map[string]any{
			"type":             cfg.StorageType,
			"path":             cfg.BBoltPath,
			"joke_ttl_seconds": int(cfg.StorageTTL.Seconds()),
		})
	}
	t.store = store

	sinkReg, err := sinks.LoadRegistry(cfg.SinksFile)
	if err != nil {
		t.closeStore()
		return nil, fmt.Errorf("load sinks registry: %w", err)
	}
	enabled := sinkReg.Enabled()
	fanout, err := sinks.DefaultBuilders().Open(ctx, enabled, log)
	if err != nil {
		t.closeStore()
		return nil, fmt.Errorf("open sinks: %w", err)
	}
	t.fanout = fanout

	summaries := make([]map[string]string, 0, len(enabled))
	for _, sc := range enabled {
		summaries = append(summaries, map[string]string{"id": sc.ID, "type": sc.Type})
	}
	log.InfoObj("sinks registry loaded", "sinks_meta", map[string]any{
		"file":  cfg.SinksFile,
		"count": len(summaries),
		"sinks": summaries,
	})

	if t.sections == nil {
		client := t.client
		if client == nil {
			client = httpclient.NewRestyClient(cfg.FetchTimeout)
		}
		f, err := fetcher.New(client, cfg.JokeURL, log)
		if err != nil {
			t.closeAll()
			return nil, fmt.Errorf("init fetcher: %w", err)
		}
		t.sections = walkthrough.Sections(walkthrough.FetchSection(f, store, t.fanout))
	}

	return t, nil
}

// Run executes every section once. The first section error ends the tour
// and is returned wrapped with the section name. Resources are released
// whatever the outcome.
func (t *Tour) Run(ctx context.Context) error {
	if t == nil || t.store == nil {
		return fmt.Errorf("tour is not initialized")
	}
	defer t.closeAll()

	runID := t.newRunID()
	env := &walkthrough.Env{
		Out:           t.out,
		Log:           t.log,
		Args:          t.args,
		InfoFile:      t.cfg.InfoFile,
		OutFile:       t.cfg.OutFile,
		HelloFile:     t.cfg.HelloFile,
		UptimeCommand: t.cfg.UptimeCommand,
		RunID:         runID,
	}

	start := time.Now()
	t.log.InfoObj("tour started", "tour_meta", map[string]any{
		"run_id":         runID,
		"sections_count": len(t.sections),
		"sinks_count":    t.fanout.Size(),
		"started_at":     start.UTC(),
	})

	for _, s := range t.sections {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("tour interrupted before %s: %w", s.Name, err)
		}
		sectionStart := time.Now()
		t.log.DebugObj("section started", "section_meta", map[string]any{
			"run_id":  runID,
			"section": s.Name,
		})
		if err := s.Run(ctx, env); err != nil {
			t.log.ErrorObj("section failed", "section_error", map[string]any{
				"run_id":  runID,
				"section": s.Name,
				"error":   err.Error(),
			})
			return fmt.Errorf("section %s: %w", s.Name, err)
		}
		t.log.DebugObj("section completed", "section_meta", map[string]any{
			"run_id":     runID,
			"section":    s.Name,
			"elapsed_ms": time.Since(sectionStart).Milliseconds(),
		})
	}

	t.log.InfoObj("tour completed", "tour_meta", map[string]any{
		"run_id":     runID,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func (t *Tour) closeAll() {
	if t.fanout != nil {
		if err := t.fanout.Close(); err != nil {
			t.log.ErrorObj("sinks close failed", "error", err)
		}
		t.fanout = nil
	}
	t.closeStore()
}

// closeStore safely closes the storage backend, logging any errors encountered.
func (t *Tour) closeStore() {
	if t.store == nil {
		return
	}
	if err := t.store.Close(); err != nil {
		t.log.ErrorObj("storage close failed", "error", err)
	}
	t.store = nil
}
