package extract

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// Certifications extracts certification entries from one certifications
// section's content. Lines are keyed off a three-part "Name | Issuer | Year"
// pattern, with a single-field fallback for unstructured lines.
func Certifications(content string, v *vocab.Vocabulary) []types.CertificationEntry {
	entries := make([]types.CertificationEntry, 0)

	for _, line := range nonEmptyLines(content) {
		if _, ok := v.SectionHeaderType(line); ok {
			continue
		}
		line = stripBullet(line)
		if line == "" {
			continue
		}

		entry := parseCertificationLine(line)
		if entry.Name != "" {
			entries = append(entries, entry)
		}
	}

	return entries
}

// parseCertificationLine parses a single certification line.
func parseCertificationLine(line string) types.CertificationEntry {
	parts := splitCertificationParts(line)

	switch {
	case len(parts) >= 3:
		entry := types.CertificationEntry{Name: parts[0], Issuer: parts[1]}
		// Keep the raw third field when it carries no recognizable year.
		if year := vocab.ExtractYear(parts[2]); year != "" {
			entry.Year = year
		} else {
			entry.Year = parts[2]
		}
		return entry
	case len(parts) == 2:
		entry := types.CertificationEntry{Name: parts[0]}
		if year := vocab.ExtractYear(parts[1]); year != "" {
			entry.Year = year
			entry.Issuer = strings.TrimSpace(trimTrailingDate(parts[1]))
			if entry.Issuer == year {
				entry.Issuer = ""
			}
		} else {
			entry.Issuer = parts[1]
		}
		return entry
	default:
		entry := types.CertificationEntry{Name: line}
		if year := vocab.ExtractYear(line); year != "" {
			entry.Year = year
			entry.Name = strings.TrimSpace(trimTrailingDate(line))
		}
		entry.Name = strings.Trim(entry.Name, " ,-–")
		return entry
	}
}

// splitCertificationParts splits on pipes, falling back to comma separation
// when the line carries no pipes.
func splitCertificationParts(line string) []string {
	sep := "|"
	if !strings.Contains(line, "|") {
		sep = ","
	}
	raw := strings.Split(line, sep)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
