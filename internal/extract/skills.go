package extract

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/vocab"
)

// maxSkillTokenLength bounds a comma-split token that can still be a skill.
const maxSkillTokenLength = 30

// Skills extracts a deduplicated, insertion-ordered skill list from one
// skills section's content. Known technology names matched against the whole
// section come first, then plausible comma-separated tokens from the raw
// lines.
func Skills(content string, v *vocab.Vocabulary) []string {
	set := newSkillSet()

	for _, tech := range v.TechnologiesIn(content) {
		set.add(tech)
	}

	for _, line := range nonEmptyLines(content) {
		if _, ok := v.SectionHeaderType(line); ok {
			continue
		}
		line = stripBullet(line)
		// Category prefixes like "Languages:" label the list, they are
		// not skills themselves.
		if idx := strings.Index(line, ":"); idx >= 0 {
			line = line[idx+1:]
		}
		for _, token := range strings.Split(line, ",") {
			token = strings.TrimSpace(strings.Trim(strings.TrimSpace(token), "."))
			if !plausibleSkillToken(token) {
				continue
			}
			set.add(token)
		}
	}

	return set.list()
}

// plausibleSkillToken filters comma-split tokens down to skill-shaped ones.
func plausibleSkillToken(token string) bool {
	if token == "" || len(token) > maxSkillTokenLength {
		return false
	}
	return len(strings.Fields(token)) <= 3
}
