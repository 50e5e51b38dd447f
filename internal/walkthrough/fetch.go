package walkthrough

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samvad-hq/feature-tour/internal/fetcher"
	"github.com/samvad-hq/feature-tour/internal/storage"
	"github.com/samvad-hq/feature-tour/pkg/sinks"
)

// JokeFetcher is the one outbound call of the tour.
type JokeFetcher interface {
	URL() string
	Fetch(ctx context.Context) (*fetcher.Result, error)
}

// JokeStore remembers jokes across runs.
type JokeStore interface {
	Record(id string) (storage.Sighting, error)
}

// ReportPublisher hands the fetch summary to downstream sinks.
type ReportPublisher interface {
	Publish(ctx context.Context, r sinks.Report) (int, error)
}

// FetchSection builds the http section. store and pub may be nil.
func FetchSection(f JokeFetcher, store JokeStore, pub ReportPublisher) Section {
	return Section{
		Name: "fetch",
		Run: func(ctx context.Context, env *Env) error {
			return runFetch(ctx, env, f, store, pub)
		},
	}
}

func runFetch(ctx context.Context, env *Env, f JokeFetcher, store JokeStore, pub ReportPublisher) error {
	w := env.Out
	heading(w, "HTTP")

	if f == nil {
		fmt.Fprintln(w, "no fetcher configured")
		return nil
	}

	res, err := f.Fetch(ctx)
	if err != nil {
		// the failure ends this section only
		fmt.Fprintf(w, "request failed : %v\n", err)
		return nil
	}

	fmt.Fprintf(w, "status : %s\n", res.Status)
	fmt.Fprintf(w, "response : url=%s proto=%s content_type=%q body_bytes=%d\n",
		res.URL, res.Proto, res.ContentType, res.BodySize)
	for _, name := range res.HeaderNames() {
		fmt.Fprintf(w, "  %s: %s\n", name, strings.Join(res.Header.Values(name), ", "))
	}

	report := sinks.Report{
		RunID:      env.RunID,
		URL:        res.URL,
		StatusCode: res.StatusCode,
		FetchedAt:  res.FetchedAt,
	}

	if res.Joke != nil {
		joke := res.Joke
		sighting := rememberJoke(env, store, joke.Key())
		report.JokeID = joke.Key()
		report.Category = joke.Category
		report.SeenBefore = sighting.Repeat()

		fmt.Fprintf(w, "joke #%d (%s) :\n%s\n", joke.ID, joke.Category, joke.Text())
		fmt.Fprintf(w, "seen before ? %t\n", report.SeenBefore)
		if sighting.Tracked() {
			first := sighting.FirstSeen
			report.SeenCount = sighting.Count
			report.FirstSeenAt = &first
			fmt.Fprintf(w, "times seen : %d (first on %s)\n", sighting.Count, first.Format(time.RFC3339))
		}
	}

	if pub != nil {
		delivered, err := pub.Publish(ctx, report)
		if err != nil {
			env.Log.ErrorObj("report delivery failed", "report_error", map[string]any{
				"run_id":    env.RunID,
				"delivered": delivered,
				"error":     err.Error(),
			})
		} else if delivered > 0 {
			env.Log.InfoObj("report delivered", "report_meta", map[string]any{
				"run_id":    env.RunID,
				"delivered": delivered,
			})
		}
	}
	return nil
}

// rememberJoke records the sighting. Store errors are logged and the joke
// is treated as untracked.
func rememberJoke(env *Env, store JokeStore, id string) storage.Sighting {
	if store == nil {
		return storage.Sighting{}
	}
	sighting, err := store.Record(id)
	if err != nil {
		env.Log.WarnObj("joke record failed", "store_error", map[string]any{
			"joke_id": id,
			"error":   err.Error(),
		})
		return storage.Sighting{}
	}
	return sighting
}
