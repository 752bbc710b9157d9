// Package sections locates canonical resume sections inside raw document text.
package sections

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// Identify scans line-delimited text for canonical section headers and
// returns the resulting sections in order of appearance. A section's content
// span runs from the line after its header to the line immediately preceding
// the next recognized header of any type, or the end of the document.
// Headers are matched on the trimmed full line only. Sections never overlap.
// A document with no recognized headers yields an empty slice.
func Identify(text string, v *vocab.Vocabulary) []types.Section {
	sections := make([]types.Section, 0)

	var current *types.Section
	offset := 0
	for offset <= len(text) {
		lineEnd := len(text)
		nextOffset := len(text) + 1
		if idx := strings.IndexByte(text[offset:], '\n'); idx >= 0 {
			lineEnd = offset + idx
			nextOffset = lineEnd + 1
		}
		line := text[offset:lineEnd]

		if typ, ok := v.SectionHeaderType(line); ok {
			if current != nil {
				current.End = offset
				current.Content = strings.TrimRight(text[current.Start:current.End], "\n")
				sections = append(sections, *current)
			}
			current = &types.Section{
				Name:  strings.TrimSpace(line),
				Type:  typ,
				Start: nextOffset,
			}
			if current.Start > len(text) {
				current.Start = len(text)
			}
		}

		offset = nextOffset
	}

	if current != nil {
		current.End = len(text)
		current.Content = strings.TrimRight(text[current.Start:current.End], "\n")
		sections = append(sections, *current)
	}

	return sections
}

// ByType returns the sections of the given type, preserving document order.
func ByType(sections []types.Section, typ types.SectionType) []types.Section {
	matched := make([]types.Section, 0)
	for _, s := range sections {
		if s.Type == typ {
			matched = append(matched, s)
		}
	}
	return matched
}
