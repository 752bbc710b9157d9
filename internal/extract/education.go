package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// degreePrefixRe matches the degree openings that start a new education entry.
var degreePrefixRe = regexp.MustCompile(`(?i)^(bachelor|master|ph\.?d|doctor(ate)?|associate|b\.?s\.?c?|m\.?s\.?c?|b\.?a\.?|m\.?a\.?|m\.?b\.?a|b\.?eng|m\.?eng|b\.?tech|m\.?tech)\b`)

// institutionRe marks lines naming an academic institution.
var institutionRe = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy|polytechnic)\b`)

// Education extracts education entries from one education section's content.
// A degree-prefixed line opens a new entry; following lines are attributed to
// institution and year, or to coursework when explicitly marked.
func Education(content string, v *vocab.Vocabulary) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0)
	lines := nonEmptyLines(content)

	var cur *types.EducationEntry

	flush := func() {
		if cur != nil {
			if cur.Coursework == nil {
				cur.Coursework = []string{}
			}
			entries = append(entries, *cur)
		}
		cur = nil
	}

	for _, line := range lines {
		if _, ok := v.SectionHeaderType(line); ok {
			continue
		}

		if degreePrefixRe.MatchString(stripBullet(line)) {
			flush()
			degree := stripBullet(line)
			cur = &types.EducationEntry{}
			// A degree line can carry the year inline.
			if year := vocab.ExtractYear(degree); year != "" {
				cur.Year = year
			}
			cur.Degree = degree
			continue
		}

		if cur == nil {
			continue
		}

		if v.IsCourseworkLine(line) {
			cur.Coursework = append(cur.Coursework, splitCoursework(line)...)
			continue
		}

		if institutionRe.MatchString(line) {
			institution := line
			if year := vocab.ExtractYear(line); year != "" {
				if cur.Year == "" {
					cur.Year = year
				}
				institution = trimTrailingDate(line)
			}
			if cur.Institution == "" {
				cur.Institution = institution
			}
			continue
		}

		if year := vocab.ExtractYear(line); year != "" && cur.Year == "" && len(line) <= maxBareDateLineLength {
			cur.Year = year
		}
	}

	flush()
	return entries
}

// splitCoursework splits a "Relevant Coursework: A, B, C" line into items.
func splitCoursework(line string) []string {
	payload := line
	if idx := strings.Index(line, ":"); idx >= 0 {
		payload = line[idx+1:]
	}
	items := make([]string, 0)
	for _, item := range strings.Split(payload, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// trimTrailingDate removes a trailing year or date range from a combined
// "Institution Name, 2015 - 2019" line.
func trimTrailingDate(line string) string {
	if title, _, ok := vocab.SplitTitleDates(line); ok && title != "" {
		return title
	}
	return strings.TrimSpace(line)
}
