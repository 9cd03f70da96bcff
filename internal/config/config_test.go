package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SPRINTDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.Reconcile.Delay != 2*time.Second {
		t.Fatalf("reconcile delay = %v", cfg.Reconcile.Delay)
	}
	if cfg.Notify.TTL != 4*time.Second {
		t.Fatalf("notify ttl = %v", cfg.Notify.TTL)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SPRINTDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("SPRINTDECK_API_BASE_URL", "https://tasks.example.com")
	t.Setenv("SPRINTDECK_RECONCILE_DELAY", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://tasks.example.com" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.Reconcile.Delay != 5*time.Second {
		t.Fatalf("reconcile delay = %v", cfg.Reconcile.Delay)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte(`[api]
base_url = "https://sprint.example.com"
project = "sprint-12"

[reconcile]
delay = "10s"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SPRINTDECK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://sprint.example.com" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Project != "sprint-12" {
		t.Fatalf("project = %q", cfg.API.Project)
	}
	if cfg.Reconcile.Delay != 10*time.Second {
		t.Fatalf("reconcile delay = %v", cfg.Reconcile.Delay)
	}
}

func TestResolveTokenPrefersEnv(t *testing.T) {
	t.Setenv("SPRINTDECK_API_TOKEN", "env-token")
	cfg := Config{}
	cfg.API.Token = "file-token"
	cfg.API.TokenEnv = "SPRINTDECK_API_TOKEN"

	if got := cfg.ResolveToken(); got != "env-token" {
		t.Fatalf("token = %q", got)
	}
}

func TestResolveTokenFallsBackToConfig(t *testing.T) {
	cfg := Config{}
	cfg.API.Token = "file-token"
	cfg.API.TokenEnv = "SPRINTDECK_UNSET_TOKEN_VAR"

	if got := cfg.ResolveToken(); got != "file-token" {
		t.Fatalf("token = %q", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("SPRINTDECK_CONFIG", path)

	cfg := Config{}
	cfg.API.BaseURL = "https://sprint.example.com"
	cfg.API.TokenEnv = "SPRINTDECK_API_TOKEN"
	cfg.API.Project = "sprint-12"
	cfg.Reconcile.Delay = 3 * time.Second
	cfg.Notify.TTL = 5 * time.Second
	cfg.Cache.Path = filepath.Join(t.TempDir(), "board.db")
	cfg.Log.Level = "debug"
	cfg.Log.File = filepath.Join(t.TempDir(), "app.log")

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.API.BaseURL != cfg.API.BaseURL || got.API.Project != cfg.API.Project {
		t.Fatalf("got %+v", got.API)
	}
	if got.Reconcile.Delay != cfg.Reconcile.Delay {
		t.Fatalf("reconcile delay = %v", got.Reconcile.Delay)
	}
	if got.Log.Level != "debug" {
		t.Fatalf("log level = %q", got.Log.Level)
	}
}
