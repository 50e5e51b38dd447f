package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestRecordCountsSightings(t *testing.T) {
	clock := newClock()
	store, err := openBolt(filepath.Join(t.TempDir(), "tour.db"), time.Hour, clock.now)
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	defer store.Close()

	first, err := store.Record("42")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if first.Count != 1 || first.Repeat() || !first.Tracked() {
		t.Fatalf("unexpected first sighting %+v", first)
	}
	start := clock.t

	clock.advance(10 * time.Minute)
	second, err := store.Record("42")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if second.Count != 2 || !second.Repeat() {
		t.Fatalf("expected a repeat, got %+v", second)
	}
	if !second.FirstSeen.Equal(start) || !second.LastSeen.Equal(clock.t) {
		t.Fatalf("first/last seen wrong: %+v", second)
	}

	other, err := store.Record("7")
	if err != nil || other.Count != 1 {
		t.Fatalf("ids must be tracked independently, got %+v err=%v", other, err)
	}
}

func TestRecordForgetsAfterTTL(t *testing.T) {
	clock := newClock()
	store, err := openBolt(filepath.Join(t.TempDir(), "tour.db"), time.Hour, clock.now)
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	defer store.Close()

	if _, err := store.Record("42"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	clock.advance(2 * time.Hour)

	again, err := store.Record("42")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if again.Count != 1 || !again.FirstSeen.Equal(clock.t) {
		t.Fatalf("expected a fresh sighting after ttl, got %+v", again)
	}
}

func TestOpenPrunesStaleSightings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tour.db")
	clock := newClock()

	store, err := openBolt(path, time.Hour, clock.now)
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	for _, id := range []string{"1", "2", "3"} {
		if _, err := store.Record(id); err != nil {
			t.Fatalf("Record(%s): %v", id, err)
		}
	}
	clock.advance(30 * time.Minute)
	if _, err := store.Record("3"); err != nil {
		t.Fatalf("Record(3): %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	clock.advance(45 * time.Minute)
	store, err = openBolt(path, time.Hour, clock.now)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()

	if n, err := store.size(); err != nil || n != 1 {
		t.Fatalf("expected only the refreshed sighting to survive, size=%d err=%v", n, err)
	}
}

func TestRecordRejectsEmptyID(t *testing.T) {
	store, err := openBolt(filepath.Join(t.TempDir(), "tour.db"), time.Hour, time.Now)
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	defer store.Close()

	if _, err := store.Record(""); err == nil {
		t.Fatalf("expected error for empty id")
	}
}

func TestNewStoreDisabledRemembersNothing(t *testing.T) {
	for _, typ := range []string{"", "none", "Disabled"} {
		store, err := NewStore(typ, "", 0)
		if err != nil {
			t.Fatalf("NewStore(%q): %v", typ, err)
		}
		s, err := store.Record("x")
		if err != nil || s.Tracked() || s.Repeat() {
			t.Fatalf("disabled store should not track, got %+v err=%v", s, err)
		}
	}
}

func TestNewStoreRejectsBadConfig(t *testing.T) {
	if _, err := NewStore("redis", "", 0); err == nil || errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected config error for unsupported type, got %v", err)
	}
	if _, err := NewStore("bbolt", " ", 0); err == nil || errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected config error for missing path, got %v", err)
	}
}

func TestNewStoreLockedFileIsUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.db")
	holder, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		t.Fatalf("hold db: %v", err)
	}
	defer holder.Close()

	if _, err := NewStore("bbolt", path, time.Hour); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for a locked file, got %v", err)
	}
}

func TestNewStoreParentIsFileIsUnavailable(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(parent, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewStore("bbolt", filepath.Join(parent, "tour.db"), time.Hour); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
