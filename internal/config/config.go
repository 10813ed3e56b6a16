package config

import "time"

// Config represents the application configuration
type Config struct {
	Database   DatabaseConfig   `toml:"database"`
	Classifier ClassifierConfig `toml:"classifier"`
	Recommend  RecommendConfig  `toml:"recommend"`
	MCP        MCPConfig        `toml:"mcp"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ClassifierConfig contains settings for the external text classifier
// used by natural-language parameter extraction. When disabled, extraction
// runs on the deterministic keyword rules alone.
type ClassifierConfig struct {
	Enabled    bool   `toml:"enabled"`
	BaseURL    string `toml:"base_url"`
	Model      string `toml:"model"`
	TimeoutSec int    `toml:"timeout_sec"`
	// API key is read from OPENAI_API_KEY environment variable
}

// Timeout returns the classifier call timeout as a duration
func (c ClassifierConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// RecommendConfig contains recommendation settings
type RecommendConfig struct {
	MaxResults int `toml:"max_results"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/fujirecipes/recipes.db",
		},
		Classifier: ClassifierConfig{
			Enabled:    false,
			BaseURL:    "https://api.openai.com/v1",
			Model:      "gpt-4o-mini",
			TimeoutSec: 10,
		},
		Recommend: RecommendConfig{
			MaxResults: 3,
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
