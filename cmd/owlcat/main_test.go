package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "owlcat.yaml")
	if err := os.WriteFile(path, []byte("server_url: http://localhost:8080/owllink\ntimeout_seconds: 30\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.ServerURL != "http://localhost:8080/owllink" {
		t.Errorf("ServerURL = %q, want http://localhost:8080/owllink", cfg.ServerURL)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
	}
}

func TestLoadConfigMissingServerURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "owlcat.yaml")
	if err := os.WriteFile(path, []byte("timeout_seconds: 5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected an error for a config with no server_url")
	}
}
