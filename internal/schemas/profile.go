package schemas

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/types"
)

// ValidateProfile checks a parsed profile against the structured profile
// schema. The schema file is located relative to the working directory, so
// callers running outside the repo root still resolve it.
func ValidateProfile(profile *types.StructuredProfile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil")
	}

	schemaPath := ResolveSchemaPath(ProfileSchemaFile)
	if schemaPath == "" {
		return &SchemaLoadError{
			Path:    ProfileSchemaFile,
			Message: "schema file not found in any candidate location",
		}
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "read failed", Cause: err}
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	return ValidateJSONString(string(schemaContent), string(profileJSON))
}
