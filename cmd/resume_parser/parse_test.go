package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResume = `EXPERIENCE

Acme Corp
Software Engineer    Jan 2020 - Dec 2022
- Reduced API latency by 30%

SKILLS

Go, Python, PostgreSQL
`

func TestParseCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "parse")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --resume or --resume-url must be provided")
}

func TestParseCommand_MutuallyExclusiveInputs(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "parse",
		"--resume", "resume.txt",
		"--resume-url", "https://example.com/resume")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestParseCommand_FileToStdout(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumeFile, []byte(testResume), 0644))

	cmd := exec.Command(binaryPath, "parse", "--resume", resumeFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	var profile types.StructuredProfile
	require.NoError(t, json.Unmarshal(output, &profile))
	require.NotEmpty(t, profile.Experience)
	assert.Equal(t, "Acme Corp", profile.Experience[0].Company)
	assert.Equal(t, "Software Engineer", profile.Experience[0].Title)
	assert.NotEmpty(t, profile.Skills)
}

func TestParseCommand_OutputFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := filepath.Join(tmpDir, "resume.txt")
	outFile := filepath.Join(tmpDir, "profile.json")
	require.NoError(t, os.WriteFile(resumeFile, []byte(testResume), 0644))

	cmd := exec.Command(binaryPath, "parse", "--resume", resumeFile, "--out", outFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var profile types.StructuredProfile
	require.NoError(t, json.Unmarshal(data, &profile))
	assert.NotEmpty(t, profile.Experience)
}

func TestParseCommand_OutDirWritesIngestionArtifacts(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := filepath.Join(tmpDir, "resume.txt")
	outDir := filepath.Join(tmpDir, "ingested")
	require.NoError(t, os.WriteFile(resumeFile, []byte(testResume), 0644))

	cmd := exec.Command(binaryPath, "parse",
		"--resume", resumeFile,
		"--out", filepath.Join(tmpDir, "profile.json"),
		"--out-dir", outDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	assert.FileExists(t, filepath.Join(outDir, "resume.cleaned.txt"))
	assert.FileExists(t, filepath.Join(outDir, "resume.meta.json"))
}

func TestParseCommand_UnsupportedFormat(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	pdfFile := filepath.Join(tmpDir, "resume.pdf")
	require.NoError(t, os.WriteFile(pdfFile, []byte("%PDF-1.4"), 0644))

	cmd := exec.Command(binaryPath, "parse", "--resume", pdfFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unsupported")
}

func TestParseCommand_SaveRequiresUserID(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumeFile, []byte(testResume), 0644))

	cmd := exec.Command(binaryPath, "parse", "--resume", resumeFile, "--save")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--user-id is required with --save")
}

func TestParseCommand_ConfigFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumeFile, []byte(testResume), 0644))

	configFile := filepath.Join(tmpDir, "config.json")
	configJSON, _ := json.Marshal(map[string]any{"resume": resumeFile})
	require.NoError(t, os.WriteFile(configFile, configJSON, 0644))

	cmd := exec.Command(binaryPath, "parse", "--config", configFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	var profile types.StructuredProfile
	require.NoError(t, json.Unmarshal(output, &profile))
	assert.NotEmpty(t, profile.Experience)
}

func TestParseCommand_LLMHintRequiresAPIKey(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumeFile, []byte(testResume), 0644))

	cmd := exec.Command(binaryPath, "parse", "--resume", resumeFile, "--use-llm-hint")

	// Strip GEMINI_API_KEY from the child environment
	var env []string
	for _, e := range os.Environ() {
		if len(e) < 15 || e[:15] != "GEMINI_API_KEY=" {
			env = append(env, e)
		}
	}
	cmd.Env = env

	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "GEMINI_API_KEY environment variable or --api-key flag is required")
}
