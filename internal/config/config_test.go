package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"user_id": "550e8400-e29b-41d4-a716-446655440000",
		"resume_url": "https://example.com/resume",
		"output": "profile.json",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", cfg.UserID)
	assert.Equal(t, "https://example.com/resume", cfg.ResumeURL)
	assert.Equal(t, "profile.json", cfg.Output)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Resume:    "resume.txt",
		ResumeURL: "https://example.com/resume",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_ResumeFileMissing(t *testing.T) {
	cfg := &Config{
		Resume: filepath.Join(t.TempDir(), "missing.txt"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		ResumeURL: "https://example.com/resume",
		UserID:    "test-user",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Resume:      "default-resume.txt",
		DatabaseURL: "postgres://localhost/resumes",
		ServerAddr:  ":9090",
	}

	partial := Config{
		Resume: "custom-resume.txt",
		UserID: "custom-user-id",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-resume.txt", merged.Resume)
	assert.Equal(t, "custom-user-id", merged.UserID)

	// Default values should fill in empty fields
	assert.Equal(t, "postgres://localhost/resumes", merged.DatabaseURL)
	assert.Equal(t, ":9090", merged.ServerAddr)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		UserID: "test-user",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "test-user", merged.UserID)
	assert.Equal(t, ":8080", merged.ServerAddr)
}
