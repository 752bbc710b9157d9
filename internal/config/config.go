// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume    string `json:"resume,omitempty"`     // Path to resume text file (.txt/.md)
	ResumeURL string `json:"resume_url,omitempty"` // URL to fetch a hosted resume page from
	Output    string `json:"output,omitempty"`     // Path to write the profile JSON to (default: stdout)

	// Candidate Info
	UserID string `json:"user_id,omitempty"` // User UUID (required for DB persistence)

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key (LLM hint extraction)
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA resume pages
	UseLLMHint  bool   `json:"use_llm_hint,omitempty"` // Prefer the LLM structured hint when it has experience
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	ServerAddr  string `json:"server_addr,omitempty"`  // Listen address for the serve command
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Resume != "" && c.ResumeURL != "" {
		return fmt.Errorf("config error: 'resume' and 'resume_url' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.UseLLMHint && c.APIKey == "" && os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("config error: 'use_llm_hint' requires an API key")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.ResumeURL == "" {
		result.ResumeURL = defaults.ResumeURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ServerAddr == "" {
		if defaults.ServerAddr != "" {
			result.ServerAddr = defaults.ServerAddr
		} else {
			result.ServerAddr = ":8080"
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
