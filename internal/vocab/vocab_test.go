package vocab

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionHeaderType(t *testing.T) {
	v := Default()

	tests := []struct {
		name     string
		line     string
		expected types.SectionType
		match    bool
	}{
		{"plain experience", "Experience", types.SectionExperience, true},
		{"uppercase experience", "EXPERIENCE", types.SectionExperience, true},
		{"work experience", "Work Experience", types.SectionExperience, true},
		{"employment history", "Employment History", types.SectionExperience, true},
		{"extra internal whitespace", "Work    Experience", types.SectionExperience, true},
		{"trailing colon", "Skills:", types.SectionSkills, true},
		{"markdown heading", "## EXPERIENCE", types.SectionExperience, true},
		{"leading whitespace", "   Projects", types.SectionProjects, true},
		{"side projects", "Side Projects", types.SectionProjects, true},
		{"portfolio", "PORTFOLIO", types.SectionProjects, true},
		{"education", "Education", types.SectionEducation, true},
		{"certifications", "Certifications", types.SectionCertifications, true},
		{"summary maps to other", "Summary", types.SectionOther, true},
		{"bullet mentioning experience is not a header", "- gained experience with Go", "", false},
		{"sentence is not a header", "My experience includes Go", "", false},
		{"empty line", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, ok := v.SectionHeaderType(tt.line)
			require.Equal(t, tt.match, ok)
			if tt.match {
				assert.Equal(t, tt.expected, typ)
			}
		})
	}
}

func TestContainsJobTitle(t *testing.T) {
	v := Default()

	assert.True(t, v.ContainsJobTitle("Software Engineer"))
	assert.True(t, v.ContainsJobTitle("senior developer, platform team"))
	assert.True(t, v.ContainsJobTitle("Engineering Manager")) // manager keyword
	assert.False(t, v.ContainsJobTitle("Acme Corp"))
	assert.False(t, v.ContainsJobTitle("Weather App"))
}

func TestStartsWithActionVerb(t *testing.T) {
	v := Default()

	assert.True(t, v.StartsWithActionVerb("Built a billing pipeline"))
	assert.True(t, v.StartsWithActionVerb("reduced latency by 30%"))
	assert.False(t, v.StartsWithActionVerb("Acme Corp"))
	assert.False(t, v.StartsWithActionVerb(""))
}

func TestContainsLegalSuffix(t *testing.T) {
	v := Default()

	assert.True(t, v.ContainsLegalSuffix("Acme Corp"))
	assert.True(t, v.ContainsLegalSuffix("Initech, Inc."))
	assert.True(t, v.ContainsLegalSuffix("Hooli LLC"))
	assert.False(t, v.ContainsLegalSuffix("Incredible Designs")) // "Inc" must be its own word
	assert.False(t, v.ContainsLegalSuffix("Jane Doe"))
}

func TestTechnologiesIn(t *testing.T) {
	v := Default()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"comma list", "Technologies: React, Node.js", []string{"React", "Node.js"}},
		{"prose", "Built using React and Node.js.", []string{"React", "Node.js"}},
		{"go needs word boundary", "Worked at Google on search", nil},
		{"go as word", "Services written in Go and Python", []string{"Python", "Go"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.TechnologiesIn(tt.input)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.ElementsMatch(t, tt.expected, got)
		})
	}
}

func TestIsTechMarkerLine(t *testing.T) {
	v := Default()

	assert.True(t, v.IsTechMarkerLine("Technologies: React, Node.js"))
	assert.True(t, v.IsTechMarkerLine("  tech stack: Go, Postgres"))
	assert.False(t, v.IsTechMarkerLine("Built using React"))
}

func TestDatePatterns(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		hasDate  bool
		hasRange bool
	}{
		{"month range", "Jan 2020 - Dec 2022", true, true},
		{"year range", "2019-2021", true, true},
		{"en dash range", "2019 – 2021", true, true},
		{"open ended", "Mar 2021 - Present", true, true},
		{"single month year", "June 2018", true, false},
		{"bare year", "2020", true, false},
		{"no date", "Acme Corp", false, false},
		{"percent is not a year", "cut costs by 30%", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hasDate, HasDate(tt.input), "HasDate")
			assert.Equal(t, tt.hasRange, HasDateRange(tt.input), "HasDateRange")
		})
	}
}

func TestLooksLikeDuration(t *testing.T) {
	assert.True(t, LooksLikeDuration("Jan 2020 - Dec 2022"))
	assert.True(t, LooksLikeDuration("Present"))
	assert.True(t, LooksLikeDuration("May 2019"))
	assert.False(t, LooksLikeDuration("Acme Corp"))
}

func TestSplitTitleDates(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantDates string
		wantOK    bool
	}{
		{
			name:      "title with embedded range",
			input:     "Software Engineer    Jan 2020 - Dec 2022",
			wantTitle: "Software Engineer",
			wantDates: "Jan 2020 - Dec 2022",
			wantOK:    true,
		},
		{
			name:      "parenthesized range",
			input:     "Freelance Developer (2019-2021)",
			wantTitle: "Freelance Developer",
			wantDates: "2019-2021",
			wantOK:    true,
		},
		{
			name:      "open ended range",
			input:     "Data Analyst, Mar 2021 - Present",
			wantTitle: "Data Analyst",
			wantDates: "Mar 2021 - Present",
			wantOK:    true,
		},
		{
			name:   "no date",
			input:  "Software Engineer",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, dates, ok := SplitTitleDates(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantDates, dates)
		})
	}
}

func TestExtractYear(t *testing.T) {
	assert.Equal(t, "2018", ExtractYear("Graduated May 2018 with honors"))
	assert.Equal(t, "", ExtractYear("no year here"))
}
