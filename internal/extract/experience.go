package extract

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// maxCompanyLineLength bounds how long a line can be and still read as a
// company name rather than prose.
const maxCompanyLineLength = 60

// maxBareDateLineLength bounds a standalone duration line.
const maxBareDateLineLength = 40

// maxContentLineLength bounds a prose line that can still be absorbed as an
// implicit bullet inside a confirmed entry.
const maxContentLineLength = 200

// expState is the position of the experience state machine within an entry.
type expState int

const (
	// stateExpectCompany: between entries, waiting for a company line.
	stateExpectCompany expState = iota
	// stateExpectPosition: a company line was just consumed.
	stateExpectPosition
	// stateExpectDates: a position without embedded dates was consumed.
	stateExpectDates
	// stateCollectBullets: inside a confirmed entry body.
	stateCollectBullets
)

// Experience extracts work experience entries from one experience section's
// content. It walks consecutive non-empty lines with a local state machine
// whose line roles are company, position+dates, bare dates, and bullet.
//
// Completeness is attempted but not enforced here: partial entries that carry
// at least an identity (title or company) are emitted so the reclassifier can
// migrate or drop them. Identity-less fragments are discarded.
func Experience(content string, v *vocab.Vocabulary) []types.ExperienceEntry {
	entries := make([]types.ExperienceEntry, 0)
	lines := nonEmptyLines(content)

	var cur types.ExperienceEntry
	state := stateExpectCompany

	flush := func() {
		hasIdentity := cur.Title != "" || cur.Company != ""
		// A bare tentative title with nothing under it is noise, not an entry.
		hasSubstance := len(cur.Bullets) > 0 || cur.Duration != "" ||
			(cur.Title != "" && cur.Company != "")
		if hasIdentity && hasSubstance {
			entries = append(entries, cur)
		}
		cur = types.ExperienceEntry{}
		state = stateExpectCompany
	}

	for i, line := range lines {
		// Exclusion first: foreign-section headers, technology-list
		// markers, and academic lines terminate the current entry.
		if isExcludedLine(line, v) {
			flush()
			continue
		}

		var next string
		if i+1 < len(lines) {
			next = lines[i+1]
		}

		// A new company line always takes priority, even mid-bullet
		// collection: it flushes the previous entry unconditionally.
		if isCompanyLine(line, next, v) {
			flush()
			cur.Company = line
			state = stateExpectPosition
			continue
		}

		if isBulletLine(line) {
			if cur.Title != "" || cur.Company != "" {
				cur.Bullets = append(cur.Bullets, stripBullet(line))
				state = stateCollectBullets
			}
			continue
		}

		switch state {
		case stateExpectPosition:
			if v.ContainsJobTitle(line) {
				if title, dates, ok := vocab.SplitTitleDates(line); ok {
					cur.Title = title
					cur.Duration = dates
					state = stateCollectBullets
				} else {
					cur.Title = line
					state = stateExpectDates
				}
				continue
			}
			if isBareDateLine(line) {
				cur.Duration = line
				state = stateCollectBullets
				continue
			}
			// No recognizable position; fall back to body collection.
			state = stateCollectBullets

		case stateExpectDates:
			if isBareDateLine(line) {
				cur.Duration = line
				state = stateCollectBullets
				continue
			}
			state = stateCollectBullets
		}

		if cur.Title != "" || cur.Company != "" {
			// Late bare-date line inside the body.
			if cur.Duration == "" && isBareDateLine(line) {
				cur.Duration = line
				continue
			}
			if isImplicitBullet(line, v) {
				cur.Bullets = append(cur.Bullets, line)
				continue
			}
			continue
		}

		// Outside any entry: a short capitalized line that failed the
		// company lookahead may still name a project-shaped block that
		// the reclassifier needs to see (e.g. a personal project listed
		// under an experience header). Start a tentative title-only entry.
		if isTentativeTitle(line, v) {
			cur.Title = line
			state = stateCollectBullets
		}
	}

	flush()
	return entries
}

// isExcludedLine reports lines that can never belong to an experience entry:
// headers of other sections, explicit technology-list markers, and academic
// lines.
func isExcludedLine(line string, v *vocab.Vocabulary) bool {
	if typ, ok := v.SectionHeaderType(line); ok && typ != types.SectionExperience {
		return true
	}
	if v.IsTechMarkerLine(line) {
		return true
	}
	return v.ContainsAcademicMarker(line)
}

// isCompanyLine applies the company-name heuristic: short, capitalized, free
// of dates, not an accomplishment bullet, not itself a job title, and
// followed by a line that reads as a position or a date range. The lookahead
// is what separates "Acme Corp" from "Developed scalable systems".
func isCompanyLine(line, next string, v *vocab.Vocabulary) bool {
	if len(line) >= maxCompanyLineLength || !startsCapitalized(line) {
		return false
	}
	if isBulletLine(line) || vocab.HasDate(line) {
		return false
	}
	if v.StartsWithActionVerb(line) || v.ContainsJobTitle(line) {
		return false
	}
	if next == "" {
		return false
	}
	return v.ContainsJobTitle(next) || vocab.HasDate(next)
}

// isBareDateLine reports a short standalone duration line.
func isBareDateLine(line string) bool {
	return len(line) <= maxBareDateLineLength && vocab.LooksLikeDuration(line)
}

// isImplicitBullet reports prose that belongs to the current entry body even
// without a bullet marker: reasonable length, opening with a past-tense
// action verb or mentioning common work-content language.
func isImplicitBullet(line string, v *vocab.Vocabulary) bool {
	if len(line) > maxContentLineLength {
		return false
	}
	return v.StartsWithActionVerb(line) || v.ContainsWorkNoun(line)
}

// isTentativeTitle admits a short capitalized non-verb line as a title-only
// entry start when no company context exists.
func isTentativeTitle(line string, v *vocab.Vocabulary) bool {
	if len(line) >= maxCompanyLineLength || !startsCapitalized(line) {
		return false
	}
	if isBulletLine(line) || vocab.HasDate(line) || v.StartsWithActionVerb(line) {
		return false
	}
	return mostlyTitleCased(line) && !strings.HasSuffix(line, ".")
}
