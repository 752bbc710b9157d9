package parser

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullResume = `EXPERIENCE
Acme Corp
Software Engineer    Jan 2020 - Dec 2022
- Built a billing pipeline
- Reduced latency by 30%

PROJECTS
Weather App
Built using React and Node.js
Technologies: React, Node.js

EDUCATION
B.S. Computer Science
State University, 2019

SKILLS
Python, SQL, Docker

CERTIFICATIONS
AWS Certified Solutions Architect | Amazon Web Services | 2021
`

func TestParse_FullResume(t *testing.T) {
	profile, err := New().Parse(fullResume, nil)
	require.NoError(t, err)
	require.NotNil(t, profile)

	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Software Engineer", profile.Experience[0].Title)
	assert.Equal(t, "Acme Corp", profile.Experience[0].Company)
	assert.Equal(t, "Jan 2020 - Dec 2022", profile.Experience[0].Duration)
	assert.Len(t, profile.Experience[0].Bullets, 2)

	require.Len(t, profile.Projects, 1)
	assert.Equal(t, "Weather App", profile.Projects[0].Name)
	assert.Contains(t, profile.Projects[0].Technologies, "React")
	assert.Contains(t, profile.Projects[0].Technologies, "Node.js")

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "B.S. Computer Science", profile.Education[0].Degree)
	assert.Equal(t, "State University", profile.Education[0].Institution)
	assert.Equal(t, "2019", profile.Education[0].Year)

	assert.Contains(t, profile.Skills, "Python")
	assert.Contains(t, profile.Skills, "SQL")
	assert.Contains(t, profile.Skills, "Docker")

	require.Len(t, profile.Certifications, 1)
	assert.Equal(t, "AWS Certified Solutions Architect", profile.Certifications[0].Name)
	assert.Equal(t, "Amazon Web Services", profile.Certifications[0].Issuer)
	assert.Equal(t, "2021", profile.Certifications[0].Year)
}

func TestParse_InlineRecordViaFallback(t *testing.T) {
	input := strings.Join([]string{
		"Jane Doe Consulting – Freelance Developer (2019-2021)",
		"Built client websites for small businesses",
	}, "\n")

	profile, err := New().Parse(input, nil)
	require.NoError(t, err)

	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Freelance Developer", profile.Experience[0].Title)
	assert.Equal(t, "Jane Doe Consulting", profile.Experience[0].Company)
	assert.Equal(t, "2019-2021", profile.Experience[0].Duration)
}

func TestParse_PortfolioEntryMigratesOutOfExperienceSection(t *testing.T) {
	input := strings.Join([]string{
		"EXPERIENCE",
		"Personal Portfolio Website",
		"Built with GitHub Pages",
		"Technologies: HTML, CSS",
	}, "\n")

	profile, err := New().Parse(input, nil)
	require.NoError(t, err)

	assert.Empty(t, profile.Experience)
	require.Len(t, profile.Projects, 1)
	assert.Equal(t, "Personal Portfolio Website", profile.Projects[0].Name)
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n  \n"} {
		profile, err := New().Parse(input, nil)
		assert.Nil(t, profile)

		var emptyErr *EmptyInputError
		require.ErrorAs(t, err, &emptyErr)
	}
}

func TestParse_Idempotent(t *testing.T) {
	p := New()

	first, err := p.Parse(fullResume, nil)
	require.NoError(t, err)
	second, err := p.Parse(fullResume, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParse_ProjectsRequireProjectsSection(t *testing.T) {
	input := strings.Join([]string{
		"EXPERIENCE",
		"Acme Corp",
		"Software Engineer    Jan 2020 - Dec 2022",
		"- Reduced costs for enterprise clients",
		"Machine Learning Dashboard",
	}, "\n")

	profile, err := New().Parse(input, nil)
	require.NoError(t, err)

	// "Machine Learning Dashboard" reads like a project name but there is
	// no projects section and it never forms a project-scoring entry.
	assert.Empty(t, profile.Projects)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Acme Corp", profile.Experience[0].Company)
}

func TestParse_FinalExperienceIsAlwaysComplete(t *testing.T) {
	inputs := []string{
		fullResume,
		"EXPERIENCE\nAcme Corp\nSoftware Engineer\n- Shipped features",
		"EXPERIENCE\nSoftware Engineer    Jan 2020 - Dec 2022",
		"Some unstructured text\nwith no resume content at all",
	}

	for _, input := range inputs {
		profile, err := New().Parse(input, nil)
		require.NoError(t, err)

		for _, e := range profile.Experience {
			assert.NotEmpty(t, e.Company)
			assert.NotEmpty(t, e.Duration)
			assert.NotEmpty(t, e.Bullets)
		}
	}
}

func TestParse_ListsAlwaysInitialized(t *testing.T) {
	profile, err := New().Parse("nothing resembling a resume here", nil)
	require.NoError(t, err)

	assert.NotNil(t, profile.Experience)
	assert.NotNil(t, profile.Projects)
	assert.NotNil(t, profile.Education)
	assert.NotNil(t, profile.Skills)
	assert.NotNil(t, profile.Certifications)
}

func TestParseOrHint_PrefersHintWithExperience(t *testing.T) {
	hint := &types.StructuredProfile{
		Experience: []types.ExperienceEntry{
			{Title: "Engineer", Company: "Hint Corp", Duration: "2020", Bullets: []string{"x"}},
		},
	}

	profile, err := New().ParseOrHint(fullResume, hint)
	require.NoError(t, err)

	assert.Equal(t, "Hint Corp", profile.Experience[0].Company)
	// Lists missing from the hint are initialized before it is returned.
	assert.NotNil(t, profile.Projects)
	assert.NotNil(t, profile.Skills)
}

func TestParseOrHint_FallsBackToHeuristics(t *testing.T) {
	for _, hint := range []*types.StructuredProfile{nil, {Skills: []string{"Go"}}} {
		profile, err := New().ParseOrHint(fullResume, hint)
		require.NoError(t, err)

		require.Len(t, profile.Experience, 1)
		assert.Equal(t, "Acme Corp", profile.Experience[0].Company)
	}
}

func TestParseOrHint_EmptyInputStillFails(t *testing.T) {
	hint := &types.StructuredProfile{
		Experience: []types.ExperienceEntry{{Company: "Hint Corp"}},
	}

	_, err := New().ParseOrHint("   ", hint)

	var emptyErr *EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
}
