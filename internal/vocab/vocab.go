// Package vocab provides the keyword vocabularies that drive heuristic resume
// parsing. Vocabularies are plain data threaded through the pipeline as an
// explicit configuration object, so they can be tuned per domain without code
// changes.
package vocab

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Vocabulary holds every keyword table used by the extraction pipeline.
// All matching is case-insensitive. Callers normally start from Default()
// and override individual tables as needed.
type Vocabulary struct {
	// SectionHeaders maps a normalized full header line to its section type.
	SectionHeaders map[string]types.SectionType
	// JobTitles are role keywords that mark a line as a position title.
	JobTitles []string
	// ActionVerbs are past-tense verbs that open accomplishment bullets.
	ActionVerbs []string
	// WorkNouns are work-content words that mark prose lines as bullet material.
	WorkNouns []string
	// Technologies is the canonical technology name list.
	Technologies []string
	// LegalSuffixes are legal-entity markers found in company names.
	LegalSuffixes []string
	// AcademicMarkers flag education context.
	AcademicMarkers []string
	// ImpactWords flag business-impact language in bullets.
	ImpactWords []string
	// ProjectIndicators flag personal-project context.
	ProjectIndicators []string
	// StackPhrases flag explicit technology-stack declarations.
	StackPhrases []string
	// TechMarkers are line prefixes that introduce a technology list.
	TechMarkers []string
	// CourseworkMarkers are line prefixes that introduce a coursework list.
	CourseworkMarkers []string
}

// Default returns the shipped English vocabulary.
func Default() *Vocabulary {
	return &Vocabulary{
		SectionHeaders: map[string]types.SectionType{
			"experience":              types.SectionExperience,
			"work experience":         types.SectionExperience,
			"professional experience": types.SectionExperience,
			"employment":              types.SectionExperience,
			"employment history":      types.SectionExperience,
			"work history":            types.SectionExperience,
			"projects":                types.SectionProjects,
			"personal projects":       types.SectionProjects,
			"side projects":           types.SectionProjects,
			"academic projects":       types.SectionProjects,
			"portfolio":               types.SectionProjects,
			"education":               types.SectionEducation,
			"academic background":     types.SectionEducation,
			"qualifications":          types.SectionEducation,
			"skills":                  types.SectionSkills,
			"technical skills":        types.SectionSkills,
			"core competencies":       types.SectionSkills,
			"technologies":            types.SectionSkills,
			"certifications":          types.SectionCertifications,
			"certificates":            types.SectionCertifications,
			"licenses":                types.SectionCertifications,
			"licenses and certifications": types.SectionCertifications,
			"summary":    types.SectionOther,
			"objective":  types.SectionOther,
			"references": types.SectionOther,
			"interests":  types.SectionOther,
			"languages":  types.SectionOther,
		},
		JobTitles: []string{
			"engineer", "developer", "programmer", "architect", "manager",
			"director", "analyst", "consultant", "designer", "scientist",
			"administrator", "specialist", "coordinator", "lead", "intern",
			"founder", "officer", "researcher",
		},
		ActionVerbs: []string{
			"developed", "built", "created", "designed", "implemented",
			"led", "managed", "launched", "architected", "maintained",
			"automated", "delivered", "improved", "reduced", "increased",
			"optimized", "migrated", "deployed", "collaborated", "integrated",
			"refactored", "established", "mentored", "owned", "shipped",
			"wrote", "tested", "debugged",
		},
		WorkNouns: []string{
			"team", "client", "customer", "stakeholder", "system",
			"production", "pipeline", "service", "platform", "application",
			"infrastructure", "release",
		},
		Technologies: []string{
			"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust",
			"C++", "C#", "Ruby", "PHP", "Swift", "Kotlin", "Scala", "R",
			"React", "Angular", "Vue", "Node.js", "Express", "Django",
			"Flask", "Spring", "Rails", ".NET", "HTML", "CSS", "SQL",
			"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
			"Kafka", "RabbitMQ", "GraphQL", "REST", "gRPC", "AWS", "GCP",
			"Azure", "Docker", "Kubernetes", "Terraform", "Ansible",
			"Jenkins", "Git", "Linux", "TensorFlow", "PyTorch", "Spark",
			"Hadoop", "Tableau", "Pandas", "NumPy",
		},
		LegalSuffixes: []string{
			"inc", "llc", "corp", "corporation", "ltd", "limited", "gmbh",
			"co", "company", "group", "technologies", "labs", "solutions",
			"systems", "consulting", "partners", "ventures",
		},
		AcademicMarkers: []string{
			"university", "college", "institute", "bachelor", "master",
			"phd", "ph.d", "degree", "diploma", "certificate", "coursework",
			"gpa", "thesis", "dissertation", "course",
		},
		ImpactWords: []string{
			"team", "client", "customer", "stakeholder", "revenue", "cost",
			"business", "production", "users", "cross-functional", "reduced",
			"increased", "improved", "saved", "growth", "adoption",
		},
		ProjectIndicators: []string{
			"github", "gitlab", "portfolio", "hackathon", "side project",
			"personal project", "open source", "open-source", "hobby",
			"demo", "prototype",
		},
		StackPhrases: []string{
			"technologies:", "tech stack", "built with", "built using",
			"written in", "powered by", "implemented in",
		},
		TechMarkers: []string{
			"technologies:", "tech stack:", "technology stack:", "stack:",
			"tools:", "built with:",
		},
		CourseworkMarkers: []string{
			"relevant coursework:", "coursework:", "courses:",
		},
	}
}

// NormalizeHeader reduces a raw line to the form used for header lookup:
// trimmed, lowercased, trailing colons removed, internal whitespace collapsed.
func NormalizeHeader(line string) string {
	s := strings.TrimSpace(line)
	// Markdown resumes arrive with their heading markers intact.
	s = strings.TrimLeft(s, "#")
	s = strings.TrimRight(s, ":")
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// SectionHeaderType matches a trimmed full line against the header table.
// Matching the whole line, not substrings, keeps bullet text that merely
// mentions a category word from opening a new section.
func (v *Vocabulary) SectionHeaderType(line string) (types.SectionType, bool) {
	t, ok := v.SectionHeaders[NormalizeHeader(line)]
	return t, ok
}

// ContainsJobTitle reports whether s mentions any job-title keyword.
func (v *Vocabulary) ContainsJobTitle(s string) bool {
	return containsAnyWord(s, v.JobTitles)
}

// StartsWithActionVerb reports whether the first word of s is a past-tense
// action verb.
func (v *Vocabulary) StartsWithActionVerb(s string) bool {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return false
	}
	first := strings.Trim(fields[0], ".,;:!")
	for _, verb := range v.ActionVerbs {
		if first == verb {
			return true
		}
	}
	return false
}

// ContainsWorkNoun reports whether s mentions common work-content language.
func (v *Vocabulary) ContainsWorkNoun(s string) bool {
	return containsAnyWord(s, v.WorkNouns)
}

// ContainsLegalSuffix reports whether a company name carries a legal-entity
// marker such as "Inc" or "LLC".
func (v *Vocabulary) ContainsLegalSuffix(company string) bool {
	for _, word := range strings.Fields(company) {
		w := strings.ToLower(strings.Trim(word, ".,()"))
		for _, suffix := range v.LegalSuffixes {
			if w == suffix {
				return true
			}
		}
	}
	return false
}

// ContainsAcademicMarker reports whether s mentions academic context.
func (v *Vocabulary) ContainsAcademicMarker(s string) bool {
	return containsAnySubstring(s, v.AcademicMarkers)
}

// ContainsImpactLanguage reports whether s mentions business-impact language.
func (v *Vocabulary) ContainsImpactLanguage(s string) bool {
	return containsAnyWord(s, v.ImpactWords)
}

// ContainsProjectIndicator reports whether s mentions personal-project context.
func (v *Vocabulary) ContainsProjectIndicator(s string) bool {
	return containsAnySubstring(s, v.ProjectIndicators)
}

// ContainsStackPhrase reports whether s declares a technology stack.
func (v *Vocabulary) ContainsStackPhrase(s string) bool {
	return containsAnySubstring(s, v.StackPhrases)
}

// IsTechMarkerLine reports whether the line introduces a technology list,
// e.g. "Technologies: React, Node.js".
func (v *Vocabulary) IsTechMarkerLine(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	for _, marker := range v.TechMarkers {
		if strings.HasPrefix(s, marker) {
			return true
		}
	}
	return false
}

// IsCourseworkLine reports whether the line introduces a coursework list.
func (v *Vocabulary) IsCourseworkLine(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	for _, marker := range v.CourseworkMarkers {
		if strings.HasPrefix(s, marker) {
			return true
		}
	}
	return false
}

// TechnologiesIn returns the canonical technology names mentioned in s, in
// vocabulary order. Matching is token-based rather than raw substring so
// short names like "Go" and "R" do not fire inside unrelated words.
func (v *Vocabulary) TechnologiesIn(s string) []string {
	tokens := techTokens(s)
	found := make([]string, 0)
	for _, tech := range v.Technologies {
		if tokens[strings.ToLower(tech)] {
			found = append(found, tech)
		}
	}
	return found
}

// techTokens splits s into lowercase tokens, keeping the punctuation that is
// part of technology names (+, #, .).
func techTokens(s string) map[string]bool {
	isTechChar := func(r rune) bool {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' || r == '+' || r == '#' || r == '.'
	}
	tokens := make(map[string]bool)
	for _, raw := range strings.FieldsFunc(s, func(r rune) bool { return !isTechChar(r) }) {
		token := strings.ToLower(raw)
		tokens[token] = true
		// Sentence-ending punctuation is not part of a name unless the
		// dotted form is itself a known token (e.g. "Node.js").
		tokens[strings.TrimRight(token, ".")] = true
	}
	// Dotted names like ".NET" survive as leading-dot tokens.
	for token := range tokens {
		tokens[strings.TrimLeft(token, ".")] = true
	}
	return tokens
}

func containsAnyWord(s string, words []string) bool {
	tokens := make(map[string]bool)
	for _, raw := range strings.Fields(strings.ToLower(s)) {
		tokens[strings.Trim(raw, ".,;:()!?'\"")] = true
	}
	for _, w := range words {
		if strings.Contains(w, " ") || strings.Contains(w, "-") {
			if strings.Contains(strings.ToLower(s), w) {
				return true
			}
			continue
		}
		if tokens[w] {
			return true
		}
	}
	return false
}

func containsAnySubstring(s string, subs []string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
