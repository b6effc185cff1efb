package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("WFCTL_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.DefaultBackend != "" || cfg.Committer.Name != "" {
		t.Errorf("Load() = %+v, want zero config for missing file", cfg)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("WFCTL_CONFIG_HOME", t.TempDir())

	in := &Config{
		DefaultBackend: "mercurial",
		Committer:      CommitterConfig{Name: "Tester", Email: "test@example.com"},
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.DefaultBackend != "mercurial" {
		t.Errorf("DefaultBackend = %q, want %q", cfg.DefaultBackend, "mercurial")
	}
	if cfg.Committer.Name != "Tester" || cfg.Committer.Email != "test@example.com" {
		t.Errorf("Committer = %+v, want Tester <test@example.com>", cfg.Committer)
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WFCTL_CONFIG_HOME", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(": not yaml :"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for malformed config")
	}
}
