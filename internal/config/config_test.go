package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://interview.example.com"
	cfg.Interview.MaxAttempts = 5

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.API.BaseURL != "https://interview.example.com" {
		t.Errorf("API.BaseURL: got %q, want %q", loaded.API.BaseURL, "https://interview.example.com")
	}
	if loaded.Interview.MaxAttempts != 5 {
		t.Errorf("Interview.MaxAttempts: got %d, want 5", loaded.Interview.MaxAttempts)
	}
}

func TestDefaultConfigRetryPolicy(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Interview.MaxAttempts != 3 {
		t.Errorf("default MaxAttempts: got %d, want 3", cfg.Interview.MaxAttempts)
	}
	if cfg.RetryDelay().Milliseconds() != 1000 {
		t.Errorf("default RetryDelay: got %v, want 1s", cfg.RetryDelay())
	}
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://10.0.0.2:5000")

	cfg := DefaultConfig()
	applyEnv(cfg)

	if cfg.API.BaseURL != "http://10.0.0.2:5000" {
		t.Errorf("API.BaseURL: got %q, want env override", cfg.API.BaseURL)
	}
}

func TestDirHonoursOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("AIINTERVIEW_DIR", tmpDir)

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	if dir != tmpDir {
		t.Errorf("Dir: got %q, want %q", dir, tmpDir)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := ReadConfig(tmpDir); err == nil {
		t.Error("ReadConfig should fail when config.yaml is absent")
	}

	// A malformed file must also fail, not return a partial config.
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("{not yaml"), 0644); err != nil {
		t.Fatalf("writing malformed config: %v", err)
	}
	if _, err := ReadConfig(tmpDir); err == nil {
		t.Error("ReadConfig should fail on malformed YAML")
	}
}
