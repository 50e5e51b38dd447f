package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const sightingsBucket = "sightings"

// openTimeout bounds the wait for the file lock another process may hold.
var openTimeout = 500 * time.Millisecond

// boltStore keeps one JSON-encoded Sighting per joke id.
type boltStore struct {
	db  *bolt.DB
	ttl time.Duration
	now func() time.Time
}

func openBolt(path string, ttl time.Duration, now func() time.Time) (*boltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}

	s := &boltStore{db: db, ttl: ttl, now: now}
	if err := db.Update(s.prune); err != nil {
		db.Close()
		return nil, fmt.Errorf("prune sightings: %w", err)
	}
	return s, nil
}

// prune creates the bucket on first use and drops stale sightings. A tour
// opens the store once per run, so this is the only sweep.
func (s *boltStore) prune(tx *bolt.Tx) error {
	b, err := tx.CreateBucketIfNotExists([]byte(sightingsBucket))
	if err != nil {
		return err
	}

	now := s.now().UTC()
	var stale [][]byte
	if err := b.ForEach(func(k, v []byte) error {
		if _, ok := s.live(v, now); !ok {
			stale = append(stale, append([]byte(nil), k...))
		}
		return nil
	}); err != nil {
		return err
	}
	for _, k := range stale {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// live decodes raw and reports whether it was refreshed within the ttl.
func (s *boltStore) live(raw []byte, now time.Time) (Sighting, bool) {
	var rec Sighting
	if err := json.Unmarshal(raw, &rec); err != nil || rec.Count <= 0 {
		return Sighting{}, false
	}
	if now.Sub(rec.LastSeen) >= s.ttl {
		return Sighting{}, false
	}
	return rec, true
}

func (s *boltStore) Record(id string) (Sighting, error) {
	if id == "" {
		return Sighting{}, errors.New("record joke: empty id")
	}

	now := s.now().UTC()
	var rec Sighting
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sightingsBucket))
		if b == nil {
			return errors.New("sightings bucket missing")
		}

		var ok bool
		if rec, ok = s.live(b.Get([]byte(id)), now); !ok {
			rec = Sighting{FirstSeen: now}
		}
		rec.Count++
		rec.LastSeen = now

		raw, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), raw)
	})
	if err != nil {
		return Sighting{}, fmt.Errorf("record joke %s: %w", id, err)
	}
	return rec, nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}

// size returns how many sightings are stored.
func (s *boltStore) size() (int, error) {
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(sightingsBucket)).Stats().KeyN
		return nil
	})
	return n, err
}
