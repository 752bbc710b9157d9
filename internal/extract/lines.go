// Package extract turns section text spans into typed resume entries using
// per-section line heuristics.
package extract

import (
	"strings"
)

// bulletMarkers are the explicit markers that open a bullet line.
var bulletMarkers = []string{"-", "*", "•", "·", "‣", "○", "●", "►", ">"}

// nonEmptyLines returns the trimmed non-empty lines of content, in order.
func nonEmptyLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		trimmed := strings.TrimSpace(l)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// isBulletLine reports whether the line starts with an explicit bullet marker.
func isBulletLine(line string) bool {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m+" ") || (len(line) > len(m) && strings.HasPrefix(line, m) && m != "-" && m != "*" && m != ">") {
			return true
		}
	}
	return false
}

// stripBullet removes the leading bullet marker and surrounding whitespace.
func stripBullet(line string) string {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(strings.TrimPrefix(line, m))
		}
	}
	return strings.TrimSpace(line)
}

// startsCapitalized reports whether the first letter of s is uppercase.
func startsCapitalized(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			return true
		}
		if r >= '0' && r <= '9' {
			return false
		}
	}
	return false
}

// mostlyTitleCased reports whether at least half of the words in s start
// with an uppercase letter. Entry names ("Weather App") are title-cased;
// sentence-case descriptions ("A small forecast dashboard") are not.
func mostlyTitleCased(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	capitalized := 0
	for _, f := range fields {
		if startsCapitalized(f) {
			capitalized++
		}
	}
	return capitalized*2 >= len(fields)
}

// skillSet accumulates case-insensitively deduplicated strings while
// preserving insertion order for display.
type skillSet struct {
	seen  map[string]bool
	items []string
}

func newSkillSet() *skillSet {
	return &skillSet{seen: make(map[string]bool), items: make([]string, 0)}
}

func (s *skillSet) add(item string) {
	item = strings.TrimSpace(item)
	if item == "" {
		return
	}
	key := strings.ToLower(item)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.items = append(s.items, item)
}

func (s *skillSet) list() []string {
	return s.items
}
