// Package storage remembers which jokes earlier tour runs have shown. It is
// opt-in: the default backend keeps nothing between runs.
package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Backend names accepted by NewStore.
const (
	TypeNone  = "none"
	TypeBBolt = "bbolt"
)

const defaultTTL = 7 * 24 * time.Hour

// ErrUnavailable wraps failures to open a configured backend. Callers may
// fall back to Nop when they see it.
var ErrUnavailable = errors.New("storage unavailable")

// Sighting is what the store knows about one joke id.
type Sighting struct {
	Count     int       `json:"count"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}

// Tracked is false for sightings handed out by the disabled backend.
func (s Sighting) Tracked() bool { return s.Count > 0 }

// Repeat reports whether an earlier run already showed the joke.
func (s Sighting) Repeat() bool { return s.Count > 1 }

// Store records joke sightings.
type Store interface {
	// Record notes that id was shown now and returns the updated sighting.
	Record(id string) (Sighting, error)
	Close() error
}

// NewStore opens the backend named by typ. A ttl of zero or less means
// seven days; sightings not refreshed within it are forgotten.
func NewStore(typ, path string, ttl time.Duration) (Store, error) {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	switch strings.TrimSpace(strings.ToLower(typ)) {
	case "", TypeNone, "disabled":
		return Nop(), nil
	case TypeBBolt:
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		s, err := openBolt(path, ttl, time.Now)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

// Nop returns a store that remembers nothing.
func Nop() Store { return nopStore{} }

type nopStore struct{}

func (nopStore) Record(string) (Sighting, error) { return Sighting{}, nil }
func (nopStore) Close() error                    { return nil }
