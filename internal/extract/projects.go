package extract

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// maxProjectNameLength bounds how long a line can be and still read as a
// project name.
const maxProjectNameLength = 60

// Projects extracts project entries from one projects section's content.
// Projects are extracted from projects sections only, never from other
// sections or whole-document fallback scanning: stray capitalized lines
// elsewhere in a resume must not be invented into projects.
func Projects(content string, v *vocab.Vocabulary) []types.ProjectEntry {
	entries := make([]types.ProjectEntry, 0)
	lines := nonEmptyLines(content)

	var cur *types.ProjectEntry

	flush := func() {
		if cur != nil {
			if cur.Technologies == nil {
				cur.Technologies = []string{}
			}
			if cur.Bullets == nil {
				cur.Bullets = []string{}
			}
			entries = append(entries, *cur)
		}
		cur = nil
	}

	for _, line := range lines {
		if _, ok := v.SectionHeaderType(line); ok {
			continue
		}

		if v.IsTechMarkerLine(line) {
			if cur != nil {
				cur.Technologies = mergeTechnologies(cur.Technologies, technologiesFromLine(line, v))
			}
			continue
		}

		if isProjectNameLine(line, v) {
			flush()
			cur = &types.ProjectEntry{Name: line}
			continue
		}

		if cur == nil {
			continue
		}

		if isBulletLine(line) {
			cur.Bullets = append(cur.Bullets, stripBullet(line))
			continue
		}
		if cur.Description == "" {
			cur.Description = line
			continue
		}
		cur.Bullets = append(cur.Bullets, line)
	}

	flush()
	return entries
}

// isProjectNameLine reports a short capitalized line that is neither a
// technology marker nor a bullet nor an accomplishment sentence.
func isProjectNameLine(line string, v *vocab.Vocabulary) bool {
	if len(line) >= maxProjectNameLength || !startsCapitalized(line) {
		return false
	}
	if isBulletLine(line) || v.IsTechMarkerLine(line) {
		return false
	}
	if v.StartsWithActionVerb(line) || vocab.HasDate(line) {
		return false
	}
	return mostlyTitleCased(line) && !strings.HasSuffix(line, ".")
}

// technologiesFromLine extracts the technology set declared by a marker line:
// known vocabulary names unioned with the comma-split tokens after the marker.
func technologiesFromLine(line string, v *vocab.Vocabulary) []string {
	set := newSkillSet()
	for _, tech := range v.TechnologiesIn(line) {
		set.add(tech)
	}

	payload := line
	if idx := strings.Index(line, ":"); idx >= 0 {
		payload = line[idx+1:]
	}
	for _, token := range strings.Split(payload, ",") {
		token = strings.TrimSpace(strings.Trim(strings.TrimSpace(token), "."))
		if token == "" || len(token) > 30 || len(strings.Fields(token)) > 3 {
			continue
		}
		set.add(token)
	}
	return set.list()
}

// mergeTechnologies unions two technology lists, case-insensitively and
// order-preserving.
func mergeTechnologies(existing, incoming []string) []string {
	set := newSkillSet()
	for _, t := range existing {
		set.add(t)
	}
	for _, t := range incoming {
		set.add(t)
	}
	return set.list()
}
