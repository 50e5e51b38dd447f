// Package fetcher performs the tour's single outbound HTTP call.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/samvad-hq/feature-tour/internal/domain"
	"github.com/samvad-hq/feature-tour/internal/logger"
	"github.com/samvad-hq/feature-tour/pkg/httpclient"
)

// Result is what a single fetch observed. It is consumed once.
type Result struct {
	URL         string
	StatusCode  int
	Status      string
	Proto       string
	Header      http.Header
	BodySize    int
	ContentType string
	FetchedAt   time.Time
	Joke        *domain.Joke
}

// OK reports whether the status code is in the 2xx range.
func (r *Result) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// HeaderNames returns the response header names in sorted order.
func (r *Result) HeaderNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.Header))
	for k := range r.Header {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Fetcher issues one GET to a fixed URL. It never retries.
type Fetcher struct {
	client httpclient.Client
	url    string
	log    logger.Logger
	now    func() time.Time
}

// New builds a Fetcher for url. A nil client falls back to a resty client
// with the transport's default timeout behaviour.
func New(client httpclient.Client, url string, log logger.Logger) (*Fetcher, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("fetch url is empty")
	}
	if client == nil {
		client = httpclient.NewRestyClient(0)
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Fetcher{client: client, url: url, log: log, now: time.Now}, nil
}

// URL returns the endpoint the fetcher targets.
func (f *Fetcher) URL() string { return f.url }

// Fetch performs the request. Transport failures are returned; any HTTP
// status, including non-2xx, is a successful fetch.
func (f *Fetcher) Fetch(ctx context.Context) (*Result, error) {
	if f == nil || f.client == nil {
		return nil, errors.New("fetcher is not initialized")
	}

	start := f.now()
	resp, err := f.client.Get(ctx, f.url, nil)
	if err != nil {
		f.log.WarnObj("http fetch failed", "fetch_error", map[string]any{
			"url":   f.url,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("get %s: %w", f.url, err)
	}

	body := resp.Body()
	header := resp.Header()
	if header == nil {
		header = http.Header{}
	}
	res := &Result{
		URL:         f.url,
		StatusCode:  resp.StatusCode(),
		Status:      resp.Status(),
		Proto:       resp.Proto(),
		Header:      header,
		BodySize:    len(body),
		ContentType: header.Get("Content-Type"),
		FetchedAt:   start.UTC(),
	}
	if res.Status == "" {
		res.Status = fmt.Sprintf("%d %s", res.StatusCode, http.StatusText(res.StatusCode))
	}
	if joke, ok := decodeJoke(body); ok {
		res.Joke = &joke
	}

	f.log.DebugObj("http fetch completed", "fetch_result", map[string]any{
		"url":         f.url,
		"status_code": res.StatusCode,
		"body_bytes":  res.BodySize,
		"elapsed_ms":  f.now().Sub(start).Milliseconds(),
		"joke":        res.Joke != nil,
	})
	return res, nil
}

// decodeJoke is best effort: anything that does not look like a JokeAPI
// payload is ignored.
func decodeJoke(body []byte) (domain.Joke, bool) {
	var joke domain.Joke
	if len(body) == 0 {
		return joke, false
	}
	if err := json.Unmarshal(body, &joke); err != nil {
		return joke, false
	}
	if joke.Error || joke.Type == "" {
		return joke, false
	}
	return joke, true
}
