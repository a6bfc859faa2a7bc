package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("loadFromPath: %v", err)
	}
	if cfg.APIBaseURL() != defaultBaseURL {
		t.Fatalf("base url = %q, want %q", cfg.APIBaseURL(), defaultBaseURL)
	}
	if cfg.SearchDebounce() != 500*time.Millisecond {
		t.Fatalf("debounce = %v, want 500ms", cfg.SearchDebounce())
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("log level = %q, want info", cfg.LogLevel())
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[server]\nbase_url = \"http://example.test:9000/\"\n\n[ui]\nsearch_debounce_ms = 250\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath: %v", err)
	}
	if cfg.APIBaseURL() != "http://example.test:9000" {
		t.Fatalf("base url = %q", cfg.APIBaseURL())
	}
	if cfg.SearchDebounce() != 250*time.Millisecond {
		t.Fatalf("debounce = %v", cfg.SearchDebounce())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\nbase_url = \"http://file.test\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envBaseURL, "http://env.test")

	cfg, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath: %v", err)
	}
	if cfg.APIBaseURL() != "http://env.test" {
		t.Fatalf("base url = %q, want env override", cfg.APIBaseURL())
	}
}
