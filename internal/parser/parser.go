// Package parser assembles a structured profile from the raw plain text of
// one resume. It orchestrates section identification, the per-section entity
// extractors, whole-document fallback extraction, and reclassification into a
// single pure transformation: one document in, one profile out.
package parser

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/reclassify"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// Parser turns raw resume text into a StructuredProfile. It holds only
// immutable configuration (vocabulary and reclassification weights), keeps no
// state between documents, and is safe for concurrent use.
type Parser struct {
	vocab      *vocab.Vocabulary
	classifier *reclassify.Classifier
}

// New returns a Parser using the default vocabulary and weights.
func New() *Parser {
	return NewWithVocabulary(vocab.Default())
}

// NewWithVocabulary returns a Parser driven by a caller-supplied vocabulary,
// for domain-specific tuning of the keyword tables.
func NewWithVocabulary(v *vocab.Vocabulary) *Parser {
	return &Parser{
		vocab:      v,
		classifier: reclassify.NewClassifier(v, reclassify.DefaultWeights()),
	}
}

// Parse extracts a structured profile from rawText. The hint, if present, is
// an already-structured extraction from an external source; the heuristics
// never consume it, and callers that want to prefer it should use
// ParseOrHint. The only error condition is empty or blank rawText; any other
// input, however messy, yields a profile whose unparseable parts are empty
// lists.
func (p *Parser) Parse(rawText string, _ *types.StructuredProfile) (*types.StructuredProfile, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, &EmptyInputError{Message: "raw_text must contain resume content"}
	}

	found := sections.Identify(rawText, p.vocab)

	experience := make([]types.ExperienceEntry, 0)
	for _, s := range sections.ByType(found, types.SectionExperience) {
		experience = append(experience, extract.Experience(s.Content, p.vocab)...)
	}

	projects := make([]types.ProjectEntry, 0)
	for _, s := range sections.ByType(found, types.SectionProjects) {
		projects = append(projects, extract.Projects(s.Content, p.vocab)...)
	}

	education := make([]types.EducationEntry, 0)
	for _, s := range sections.ByType(found, types.SectionEducation) {
		education = append(education, extract.Education(s.Content, p.vocab)...)
	}

	skills := make([]string, 0)
	for _, s := range sections.ByType(found, types.SectionSkills) {
		skills = mergeSkills(skills, extract.Skills(s.Content, p.vocab))
	}

	certifications := make([]types.CertificationEntry, 0)
	for _, s := range sections.ByType(found, types.SectionCertifications) {
		certifications = append(certifications, extract.Certifications(s.Content, p.vocab)...)
	}

	// Whole-document fallbacks fire only when the section-scoped pass found
	// nothing. Projects stay section-only.
	if len(experience) == 0 {
		experience = extract.FallbackExperience(rawText, p.vocab)
	}
	if len(education) == 0 {
		education = extract.FallbackEducation(rawText, p.vocab)
	}
	if len(skills) == 0 {
		skills = extract.FallbackSkills(rawText, p.vocab)
	}
	if len(certifications) == 0 {
		certifications = extract.FallbackCertifications(rawText, p.vocab)
	}

	experience, projects = p.classifier.Apply(experience, projects)

	profile := &types.StructuredProfile{
		Experience:     experience,
		Projects:       projects,
		Education:      education,
		Skills:         skills,
		Certifications: certifications,
	}
	profile.EnsureLists()
	return profile, nil
}

// ParseOrHint returns the hint verbatim when its experience list is non-empty
// and falls back to heuristic parsing otherwise. This is the caller-side
// preference rule for deployments with an external structured extractor.
func (p *Parser) ParseOrHint(rawText string, hint *types.StructuredProfile) (*types.StructuredProfile, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, &EmptyInputError{Message: "raw_text must contain resume content"}
	}
	if hint.HasExperience() {
		hint.EnsureLists()
		return hint, nil
	}
	return p.Parse(rawText, nil)
}

// mergeSkills appends incoming skills not already present, comparing
// case-insensitively and preserving insertion order.
func mergeSkills(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[strings.ToLower(s)] = true
	}
	for _, s := range incoming {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		existing = append(existing, s)
	}
	return existing
}
