// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ProfileHint")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "[]object"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// ProfileHintSchema returns the extraction schema for resume documents.
// The output shape mirrors the structured profile that the heuristic parser
// produces, so an LLM hint can be consumed in its place.
func ProfileHintSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ProfileHint",
		Description: `You are an expert resume parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract and categorize information from a raw resume.
IMPORTANT: Preserve the exact wording from the original text.
Goal: Extract work experience, projects, education, skills, and certifications.
EXCLUDE: Contact details, cover-letter prose, references, page headers and footers.`,
		Fields: []SchemaField{
			{
				Name:        "experience",
				Type:        "[{\"title\": \"string\", \"company\": \"string\", \"duration\": \"string\", \"bullets\": [\"string\"]}]",
				Description: "Work experience entries - copy titles, companies, date ranges and bullets verbatim",
				Required:    true,
			},
			{
				Name:        "projects",
				Type:        "[{\"name\": \"string\", \"description\": \"string\", \"technologies\": [\"string\"], \"bullets\": [\"string\"]}]",
				Description: "Personal or side projects - only entries listed under a projects/portfolio heading",
				Required:    false,
			},
			{
				Name:        "education",
				Type:        "[{\"degree\": \"string\", \"institution\": \"string\", \"year\": \"string\", \"coursework\": [\"string\"]}]",
				Description: "Education entries - degree, institution and graduation year verbatim",
				Required:    false,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Individual skills and technologies, one per element",
				Required:    false,
			},
			{
				Name:        "certifications",
				Type:        "[{\"name\": \"string\", \"issuer\": \"string\", \"year\": \"string\"}]",
				Description: "Professional certifications with issuer and year when present",
				Required:    false,
			},
		},
	}
}
