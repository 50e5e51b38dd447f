package sinks

import (
	"strconv"
	"time"
)

// Report summarizes one fetch for downstream consumers.
type Report struct {
	RunID       string     `json:"run_id"`
	URL         string     `json:"url"`
	StatusCode  int        `json:"status_code"`
	JokeID      string     `json:"joke_id,omitempty"`
	Category    string     `json:"category,omitempty"`
	SeenBefore  bool       `json:"seen_before"`
	SeenCount   int        `json:"seen_count,omitempty"`
	FirstSeenAt *time.Time `json:"first_seen_at,omitempty"`
	FetchedAt   time.Time  `json:"fetched_at"`
}

// Attributes is the subset of the report copied into message metadata, so
// subscribers can filter on status or category without decoding the body.
// Empty joke fields are left out.
func (r Report) Attributes() map[string]string {
	attrs := map[string]string{
		"run_id":      r.RunID,
		"status_code": strconv.Itoa(r.StatusCode),
		"seen_before": strconv.FormatBool(r.SeenBefore),
	}
	if r.JokeID != "" {
		attrs["joke_id"] = r.JokeID
	}
	if r.Category != "" {
		attrs["category"] = r.Category
	}
	return attrs
}

// numericAttribute marks attributes AWS should type as Number.
func numericAttribute(name string) bool {
	return name == "status_code"
}
