package config

import (
	"os"
	"testing"
	"time"
)

// unsetAll clears every configuration variable for the test, restoring the
// previous values afterwards. An empty value still counts as set for
// LookupEnv, so Setenv alone is not enough.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_PATH", "CATALOG_PATH", "ALLOWED_ORIGINS",
		"SESSION_TTL", "SESSION_CAPACITY",
		"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW",
		"TRANSCRIPT_ENABLED", "TRANSCRIPT_DIR", "TRANSCRIPT_QUEUE_SIZE",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unsetenv %s: %v", key, err)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetAll(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DBPath != "./data/assistant.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.CatalogPath != "" {
		t.Errorf("CatalogPath = %q, want empty", cfg.CatalogPath)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.AllowedOrigins)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.SessionCapacity != 10000 {
		t.Errorf("SessionCapacity = %d", cfg.SessionCapacity)
	}
	if cfg.RateLimit.RequestsPerWindow != 30 || cfg.RateLimit.WindowDuration != time.Minute {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if cfg.Transcript.Enabled {
		t.Error("Transcript.Enabled should default to false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	unsetAll(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("RATE_LIMIT_REQUESTS", "10")
	t.Setenv("TRANSCRIPT_ENABLED", "true")
	t.Setenv("TRANSCRIPT_DIR", "/tmp/transcripts")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != want[0] || cfg.AllowedOrigins[1] != want[1] {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.RateLimit.RequestsPerWindow != 10 {
		t.Errorf("RequestsPerWindow = %d", cfg.RateLimit.RequestsPerWindow)
	}
	if !cfg.Transcript.Enabled {
		t.Error("Transcript.Enabled should be true")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero rate limit", "RATE_LIMIT_REQUESTS", "0"},
		{"negative rate limit", "RATE_LIMIT_REQUESTS", "-5"},
		{"negative session capacity", "SESSION_CAPACITY", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetAll(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatal("expected Load to fail")
			}
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Run("malformed int falls back", func(t *testing.T) {
		t.Setenv("SOME_INT", "notanumber")
		if got := getEnvInt("SOME_INT", 7); got != 7 {
			t.Errorf("getEnvInt = %d, want 7", got)
		}
	})

	t.Run("malformed duration falls back", func(t *testing.T) {
		t.Setenv("SOME_DUR", "eleventy")
		if got := getEnvDuration("SOME_DUR", time.Second); got != time.Second {
			t.Errorf("getEnvDuration = %v, want 1s", got)
		}
	})

	t.Run("bool synonyms", func(t *testing.T) {
		for value, want := range map[string]bool{
			"1": true, "yes": true, "on": true, "TRUE": true,
			"0": false, "no": false, "off": false,
		} {
			t.Setenv("SOME_BOOL", value)
			if got := getEnvBool("SOME_BOOL", !want); got != want {
				t.Errorf("getEnvBool(%q) = %v, want %v", value, got, want)
			}
		}
	})

	t.Run("splitList trims and drops empties", func(t *testing.T) {
		got := splitList(" a , ,b,")
		if len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Errorf("splitList = %v", got)
		}
	})
}
