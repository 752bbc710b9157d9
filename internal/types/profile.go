// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceEntry represents one work experience record extracted from a resume.
// Entries in the final profile always carry a non-empty company, a non-empty
// duration, and at least one bullet; partial entries may exist between
// extraction and reclassification.
type ExperienceEntry struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Duration string   `json:"duration"`
	Bullets  []string `json:"bullets"`
}

// ProjectEntry represents one project record. A bare name is sufficient;
// projects carry no completeness requirement.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	Bullets      []string `json:"bullets"`
}

// EducationEntry represents one education record.
type EducationEntry struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Year        string   `json:"year"`
	Coursework  []string `json:"coursework"`
}

// CertificationEntry represents one certification record.
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// StructuredProfile is the aggregate result of parsing one resume.
// Every list is present (never null in JSON) so downstream consumers can
// rely on key presence. A profile is created fresh per document and is not
// mutated after it is returned.
type StructuredProfile struct {
	Experience     []ExperienceEntry    `json:"experience"`
	Projects       []ProjectEntry       `json:"projects"`
	Education      []EducationEntry     `json:"education"`
	Skills         []string             `json:"skills"`
	Certifications []CertificationEntry `json:"certifications"`
}

// NewStructuredProfile returns an empty profile with all lists initialized.
func NewStructuredProfile() *StructuredProfile {
	return &StructuredProfile{
		Experience:     []ExperienceEntry{},
		Projects:       []ProjectEntry{},
		Education:      []EducationEntry{},
		Skills:         []string{},
		Certifications: []CertificationEntry{},
	}
}

// EnsureLists replaces any nil list with an empty one. Used on profiles that
// arrive from external sources (LLM hints, stored JSON) so the output
// contract holds regardless of origin.
func (p *StructuredProfile) EnsureLists() {
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Projects == nil {
		p.Projects = []ProjectEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Certifications == nil {
		p.Certifications = []CertificationEntry{}
	}
}

// HasExperience reports whether the profile contains at least one experience entry.
func (p *StructuredProfile) HasExperience() bool {
	return p != nil && len(p.Experience) > 0
}
