package extract

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-parser/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjects_NameDescriptionTechnologies(t *testing.T) {
	content := strings.Join([]string{
		"Weather App",
		"Built using React and Node.js",
		"Technologies: React, Node.js",
	}, "\n")

	got := Projects(content, vocab.Default())
	require.Len(t, got, 1)

	assert.Equal(t, "Weather App", got[0].Name)
	assert.Equal(t, "Built using React and Node.js", got[0].Description)
	assert.ElementsMatch(t, []string{"React", "Node.js"}, got[0].Technologies)
}

func TestProjects_MultipleProjects(t *testing.T) {
	content := strings.Join([]string{
		"Weather App",
		"A small forecast dashboard",
		"- Shows hourly forecasts",
		"Technologies: React",
		"Chess Engine",
		"Technologies: Python",
		"- Implements alpha-beta pruning",
	}, "\n")

	got := Projects(content, vocab.Default())
	require.Len(t, got, 2)

	assert.Equal(t, "Weather App", got[0].Name)
	assert.Equal(t, "A small forecast dashboard", got[0].Description)
	assert.Equal(t, []string{"Shows hourly forecasts"}, got[0].Bullets)
	assert.Equal(t, []string{"React"}, got[0].Technologies)

	assert.Equal(t, "Chess Engine", got[1].Name)
	assert.Equal(t, []string{"Python"}, got[1].Technologies)
	assert.Equal(t, []string{"Implements alpha-beta pruning"}, got[1].Bullets)
}

func TestProjects_TechLineBeforeAnyProjectIgnored(t *testing.T) {
	content := "Technologies: React\nWeather App"

	got := Projects(content, vocab.Default())
	require.Len(t, got, 1)
	assert.Equal(t, "Weather App", got[0].Name)
	assert.Empty(t, got[0].Technologies)
}

func TestProjects_AccomplishmentLineIsNotAName(t *testing.T) {
	content := strings.Join([]string{
		"Weather App",
		"Built the entire frontend",
		"Designed the caching layer",
	}, "\n")

	got := Projects(content, vocab.Default())
	require.Len(t, got, 1)
	assert.Equal(t, "Weather App", got[0].Name)
}

func TestProjects_ListsAlwaysInitialized(t *testing.T) {
	got := Projects("Weather App", vocab.Default())
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Technologies)
	assert.NotNil(t, got[0].Bullets)
}

func TestProjects_EmptyContent(t *testing.T) {
	assert.Empty(t, Projects("", vocab.Default()))
}

func TestTechnologiesFromLine(t *testing.T) {
	v := vocab.Default()

	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"canonical names", "Technologies: React, Node.js", []string{"React", "Node.js"}},
		{"unknown tokens kept", "Tech Stack: React, FancyLib", []string{"React", "FancyLib"}},
		{"long fragments dropped", "Technologies: React, a sentence fragment that is much too long to be a technology", []string{"React"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.expected, technologiesFromLine(tt.line, v))
		})
	}
}
