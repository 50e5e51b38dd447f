package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JokeURL != DefaultJokeURL {
		t.Fatalf("JokeURL = %q", cfg.JokeURL)
	}
	if cfg.FetchTimeout != 0 {
		t.Fatalf("expected library default timeout, got %v", cfg.FetchTimeout)
	}
	if cfg.StorageTTL != 7*24*time.Hour {
		t.Fatalf("StorageTTL = %v", cfg.StorageTTL)
	}
	if cfg.UptimeCommand != "uptime" {
		t.Fatalf("UptimeCommand = %q", cfg.UptimeCommand)
	}
	if cfg.StorageType != "none" {
		t.Fatalf("joke store must be opt-in, StorageType = %q", cfg.StorageType)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("JOKE_URL", " http://127.0.0.1:9/joke ")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "3")
	t.Setenv("STORAGE_TYPE", "bbolt")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JokeURL != "http://127.0.0.1:9/joke" {
		t.Fatalf("JokeURL = %q", cfg.JokeURL)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Fatalf("FetchTimeout = %v", cfg.FetchTimeout)
	}
	if cfg.StorageType != "bbolt" {
		t.Fatalf("StorageType = %q", cfg.StorageType)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"FETCH_TIMEOUT_SECONDS": "-1",
		"STORAGE_TTL_SECONDS":   "0",
		"JOKE_URL":              "   ",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, val)
			}
		})
	}
}
