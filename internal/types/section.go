//nolint:revive // types is a standard Go package name pattern
package types

// SectionType identifies the canonical resume category a section belongs to.
type SectionType string

const (
	// SectionExperience covers work experience and employment history sections.
	SectionExperience SectionType = "experience"
	// SectionProjects covers projects, side projects, and portfolio sections.
	SectionProjects SectionType = "projects"
	// SectionEducation covers education and academic background sections.
	SectionEducation SectionType = "education"
	// SectionSkills covers skills and technology sections.
	SectionSkills SectionType = "skills"
	// SectionCertifications covers certification and license sections.
	SectionCertifications SectionType = "certifications"
	// SectionOther marks a recognized header that maps to no canonical category.
	SectionOther SectionType = "other"
)

// Section is a contiguous span of the document attributed to one canonical
// resume category by header matching. Sections are ordered by appearance,
// never overlap, and are read-only once produced. Start and End are byte
// offsets of the content span within the source document; the header line
// itself is not part of the span. A section with no intervening content
// before the next header is legal and carries an empty Content string.
type Section struct {
	Name    string      `json:"name"`
	Type    SectionType `json:"type"`
	Content string      `json:"content"`
	Start   int         `json:"start"`
	End     int         `json:"end"`
}
