package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metadata contains metadata about an ingested resume document
type Metadata struct {
	URL        string `json:"url,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
	Timestamp  string `json:"timestamp"`  // RFC3339 format
	Hash       string `json:"hash"`       // SHA256 hex digest of the cleaned text
	CharCount  int    `json:"char_count"` // Length of the cleaned text
	LineCount  int    `json:"line_count"` // Non-empty lines in the cleaned text
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, url string) *Metadata {
	return &Metadata{
		URL:       url,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		CharCount: len(content),
		LineCount: countLines(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

func countLines(content string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
