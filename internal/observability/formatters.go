// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the parsed profile.
func (p *Printer) PrintProfile(profile *types.StructuredProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Experience:     %d entries\n", len(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Projects:       %d entries\n", len(profile.Projects)))
	sb.WriteString(fmt.Sprintf("Education:      %d entries\n", len(profile.Education)))
	sb.WriteString(fmt.Sprintf("Skills:         %d\n", len(profile.Skills)))
	sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(profile.Certifications)))

	p.printBox("PARSED PROFILE", strings.TrimSuffix(sb.String(), "\n"))

	p.printExperience(profile.Experience)
	p.printProjects(profile.Projects)
	p.printSkills(profile.Skills)
}

func (p *Printer) printExperience(entries []types.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("%s — %s\n", title, e.Company))
		sb.WriteString(fmt.Sprintf("    %s\n", e.Duration))
		for _, bullet := range firstN(e.Bullets, 2) {
			if len(bullet) > 48 {
				bullet = bullet[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("    • %s\n", bullet))
		}
		if len(e.Bullets) > 2 {
			sb.WriteString(fmt.Sprintf("    ... and %d more bullets\n", len(e.Bullets)-2))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printProjects(projects []types.ProjectEntry) {
	if len(projects) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		proj := projects[i]
		sb.WriteString(fmt.Sprintf("• %s\n", proj.Name))
		if len(proj.Technologies) > 0 {
			techs := strings.Join(proj.Technologies, ", ")
			if len(techs) > 40 {
				techs = techs[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s]\n", techs))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(projects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more projects", len(projects)-maxItemsToShow))
	}

	p.printBox("PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printSkills(skills []string) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	line := ""
	for _, skill := range skills {
		if line == "" {
			line = skill
			continue
		}
		if len(line)+len(skill)+2 > boxWidth-6 {
			sb.WriteString(line + "\n")
			line = skill
			continue
		}
		line += ", " + skill
	}
	if line != "" {
		sb.WriteString(line)
	}

	p.printBox("SKILLS", sb.String())
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
