package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom on missing file should not error: %v", err)
	}
	if cfg.GetBaseURL() != "" {
		t.Errorf("expected empty base URL, got %q", cfg.GetBaseURL())
	}
	if cfg.GetNotificationsEnabled() {
		t.Error("expected notifications disabled by default")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	cfg.SetBaseURL("http://localhost:8080/api")
	cfg.SetNotificationsEnabled(true)

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.GetBaseURL() != "http://localhost:8080/api" {
		t.Errorf("base URL not persisted: %q", reloaded.GetBaseURL())
	}
	if !reloaded.GetNotificationsEnabled() {
		t.Error("notifications setting not persisted")
	}
}

func TestLoadFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for corrupt config file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"base_url":"http://from-file"}`), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvBaseURL, "http://from-env")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.GetBaseURL() != "http://from-env" {
		t.Errorf("expected env to win, got %q", cfg.GetBaseURL())
	}
}

func TestEnvAppliesWithoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv(EnvBaseURL, "http://from-env")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.GetBaseURL() != "http://from-env" {
		t.Errorf("expected env base URL, got %q", cfg.GetBaseURL())
	}
}
