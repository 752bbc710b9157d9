package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// Fallback extraction runs only when the section-scoped extractor found
// nothing. It applies the same field patterns against the entire document and
// is deliberately more permissive. Projects have no fallback: a project is
// only ever extracted from a projects section.

// inlineExperienceRe matches a one-line "Company – Title (Start – End)"
// or "Title – Company (Start – End)" record.
var inlineExperienceRe = regexp.MustCompile(`^(.{2,80}?)\s+[-–—]\s+(.{2,80}?)\s*\(([^)]*\d{4}[^)]*)\)\s*$`)

// certificationKeywordRe marks lines that read as certifications anywhere in
// the document.
var certificationKeywordRe = regexp.MustCompile(`(?i)\b(certified|certification|certificate)\b`)

// degreeKeywordRe marks degree language anywhere in a line, not only at the
// start.
var degreeKeywordRe = regexp.MustCompile(`(?i)\b(bachelor|master|ph\.?d|doctorate|b\.s\.|m\.s\.|b\.a\.|m\.a\.|mba)\b`)

// FallbackExperience scans the entire document for experience entries. Bare
// inline "Title Company (Start – End)" records, which the strict extractor
// would never emit, are consumed first; the primary state machine then runs
// over the remaining lines.
func FallbackExperience(doc string, v *vocab.Vocabulary) []types.ExperienceEntry {
	lines := nonEmptyLines(doc)
	consumed := make(map[int]bool)
	inline := make([]types.ExperienceEntry, 0)

	for i, line := range lines {
		m := inlineExperienceRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		left, right, duration := strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
		var title, company string
		switch {
		case v.ContainsJobTitle(right) && !v.ContainsJobTitle(left):
			title, company = right, left
		case v.ContainsJobTitle(left) && !v.ContainsJobTitle(right):
			title, company = left, right
		default:
			continue
		}
		consumed[i] = true

		entry := types.ExperienceEntry{Title: title, Company: company, Duration: duration}
		for j := i + 1; j < len(lines); j++ {
			next := lines[j]
			if isBulletLine(next) {
				entry.Bullets = append(entry.Bullets, stripBullet(next))
			} else if v.StartsWithActionVerb(next) && len(next) <= maxContentLineLength {
				entry.Bullets = append(entry.Bullets, next)
			} else {
				break
			}
			consumed[j] = true
		}
		if len(entry.Bullets) == 0 {
			// The matched line stands in as the only bullet.
			entry.Bullets = []string{line}
		}
		inline = append(inline, entry)
	}

	rest := make([]string, 0, len(lines))
	for i, line := range lines {
		if !consumed[i] {
			rest = append(rest, line)
		}
	}

	entries := Experience(strings.Join(rest, "\n"), v)
	return append(entries, inline...)
}

// FallbackEducation scans the entire document for education entries,
// accepting degree language anywhere in a line rather than only as a prefix.
func FallbackEducation(doc string, v *vocab.Vocabulary) []types.EducationEntry {
	entries := Education(doc, v)
	if len(entries) > 0 {
		return entries
	}

	for _, line := range nonEmptyLines(doc) {
		clean := stripBullet(line)
		if !degreeKeywordRe.MatchString(clean) {
			continue
		}
		if _, ok := v.SectionHeaderType(clean); ok {
			continue
		}
		entry := types.EducationEntry{
			Degree:     clean,
			Year:       vocab.ExtractYear(clean),
			Coursework: []string{},
		}
		if institutionRe.MatchString(clean) {
			entry.Institution = clean
		}
		entries = append(entries, entry)
	}
	return entries
}

// FallbackCertifications scans the entire document for certification lines.
func FallbackCertifications(doc string, v *vocab.Vocabulary) []types.CertificationEntry {
	entries := make([]types.CertificationEntry, 0)

	for _, line := range nonEmptyLines(doc) {
		clean := stripBullet(line)
		if !certificationKeywordRe.MatchString(clean) {
			continue
		}
		if _, ok := v.SectionHeaderType(clean); ok {
			continue
		}
		entry := parseCertificationLine(clean)
		if entry.Name != "" {
			entries = append(entries, entry)
		}
	}

	return entries
}

// FallbackSkills matches the technology vocabulary against the entire
// document. Comma-token harvesting is skipped here: over a whole document it
// pulls in names, addresses, and sentence fragments, while vocabulary
// matching stays precise.
func FallbackSkills(doc string, v *vocab.Vocabulary) []string {
	set := newSkillSet()
	for _, tech := range v.TechnologiesIn(doc) {
		set.add(tech)
	}
	return set.list()
}
