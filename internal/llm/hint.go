// Package llm - hint.go turns raw resume text into a structured profile hint.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// BuildProfileHint asks the model to structure a cleaned resume document.
// The returned profile follows the same shape and list-presence contract as
// the heuristic parser's output, so callers can hand it to the parser as a
// pre-structured hint. Returns an error when the model response is not a
// parseable profile; callers are expected to fall back to heuristics.
func BuildProfileHint(ctx context.Context, client Client, cleanedText string) (*types.StructuredProfile, error) {
	if strings.TrimSpace(cleanedText) == "" {
		return nil, fmt.Errorf("empty resume text")
	}

	prompt := BuildExtractionPrompt(ProfileHintSchema(), cleanedText)

	response, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("profile hint generation failed: %w", err)
	}

	return parseProfileHint(response)
}

// parseProfileHint decodes a model response into a profile. The response may
// still carry markdown fences despite the prompt instructions.
func parseProfileHint(response string) (*types.StructuredProfile, error) {
	cleaned := CleanJSONBlock(response)

	var profile types.StructuredProfile
	if err := json.Unmarshal([]byte(cleaned), &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile hint JSON: %w", err)
	}

	profile.EnsureLists()
	return &profile, nil
}
