package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Database.Path == "" {
		t.Error("expected non-empty database path")
	}

	if cfg.Classifier.Enabled {
		t.Error("expected classifier disabled by default")
	}

	if cfg.Classifier.TimeoutSec != 10 {
		t.Errorf("expected TimeoutSec=10, got %d", cfg.Classifier.TimeoutSec)
	}

	if cfg.Recommend.MaxResults != 3 {
		t.Errorf("expected MaxResults=3, got %d", cfg.Recommend.MaxResults)
	}

	if cfg.MCP.Transport != "stdio" {
		t.Errorf("expected Transport=stdio, got %s", cfg.MCP.Transport)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "missing database path",
			modify: func(c *Config) {
				c.Database.Path = ""
			},
			wantErr: true,
		},
		{
			name: "enabled classifier without model",
			modify: func(c *Config) {
				c.Classifier.Enabled = true
				c.Classifier.Model = ""
			},
			wantErr: true,
		},
		{
			name: "invalid timeout",
			modify: func(c *Config) {
				c.Classifier.TimeoutSec = 0
			},
			wantErr: true,
		},
		{
			name: "invalid max_results",
			modify: func(c *Config) {
				c.Recommend.MaxResults = 0
			},
			wantErr: true,
		},
		{
			name: "invalid mcp transport",
			modify: func(c *Config) {
				c.MCP.Transport = "http"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		result, err := expandPath(tt.input)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestClassifierTimeout(t *testing.T) {
	cfg := Default()
	expected := 10 * time.Second

	if got := cfg.Classifier.Timeout(); got != expected {
		t.Errorf("Timeout() = %v, want %v", got, expected)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	content := `
[database]
path = "/tmp/custom.db"

[classifier]
enabled = true
model = "gpt-4o"
timeout_sec = 5

[recommend]
max_results = 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("expected custom database path, got %s", cfg.Database.Path)
	}
	if !cfg.Classifier.Enabled {
		t.Error("expected classifier enabled")
	}
	if cfg.Classifier.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %s", cfg.Classifier.Model)
	}
	if cfg.Recommend.MaxResults != 5 {
		t.Errorf("expected max_results=5, got %d", cfg.Recommend.MaxResults)
	}
	// Unset fields keep defaults
	if cfg.MCP.Transport != "stdio" {
		t.Errorf("expected default transport, got %s", cfg.MCP.Transport)
	}
}
