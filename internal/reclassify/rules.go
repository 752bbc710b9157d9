// Package reclassify decides the final category of extracted experience and
// project entries with a weighted-evidence rule engine, migrating or dropping
// entries whose section of origin misrepresents them.
package reclassify

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/vocab"
)

// Category is the bucket an entry can be classified into.
type Category string

const (
	// CategoryExperience marks evidence that an entry is real employment.
	CategoryExperience Category = "experience"
	// CategoryProject marks evidence that an entry is personal or academic work.
	CategoryProject Category = "project"
)

// Candidate is the neutral view of one entry under classification. It is
// built from an ExperienceEntry or a ProjectEntry; scoring never looks at
// the section the entry came from, only at this evidence.
type Candidate struct {
	Title        string
	Company      string
	Duration     string
	Bullets      []string
	Technologies []string
}

// body returns the candidate's full prose for keyword scanning.
func (c *Candidate) body() string {
	return c.Title + "\n" + strings.Join(c.Bullets, "\n")
}

// Complete reports the completeness invariant required of any final
// experience entry: non-empty company, non-empty duration, at least one
// bullet.
func (c *Candidate) Complete() bool {
	return c.Company != "" && c.Duration != "" && len(c.Bullets) > 0
}

// Rule is one declarative piece of classification evidence: when Match fires,
// Weight points are added to the Category's score. Rules carry names so
// individual decisions can be audited and weights tuned in isolation.
type Rule struct {
	Name     string
	Category Category
	Weight   int
	Match    func(c *Candidate, v *vocab.Vocabulary) bool
}

// Weights holds every tunable scoring constant. The defaults are empirically
// chosen starting points, not load-bearing truths; validate changes against a
// labeled corpus.
type Weights struct {
	CompanyPresent        int
	CompanyLegalSuffix    int
	JobTitleKeyword       int
	DurationPattern       int
	ImpactBullets         int
	NoCompanyNonTitle     int
	TechnologyList        int
	AcademicContext       int
	ProjectIndicator      int
	ImplementationBullets int

	// ConfidenceThreshold is the minimum score gap required to trust a
	// classification; entries below it are ambiguous.
	ConfidenceThreshold int
}

// DefaultWeights returns the shipped scoring constants.
func DefaultWeights() Weights {
	return Weights{
		CompanyPresent:        3,
		CompanyLegalSuffix:    2,
		JobTitleKeyword:       4,
		DurationPattern:       3,
		ImpactBullets:         2,
		NoCompanyNonTitle:     3,
		TechnologyList:        4,
		AcademicContext:       3,
		ProjectIndicator:      3,
		ImplementationBullets: 2,
		ConfidenceThreshold:   2,
	}
}

// Rules builds the ordered rule table for the given weights.
func Rules(w Weights) []Rule {
	return []Rule{
		{
			Name:     "company-present",
			Category: CategoryExperience,
			Weight:   w.CompanyPresent,
			Match: func(c *Candidate, _ *vocab.Vocabulary) bool {
				return strings.TrimSpace(c.Company) != ""
			},
		},
		{
			Name:     "company-legal-suffix",
			Category: CategoryExperience,
			Weight:   w.CompanyLegalSuffix,
			Match: func(c *Candidate, v *vocab.Vocabulary) bool {
				return c.Company != "" && v.ContainsLegalSuffix(c.Company)
			},
		},
		{
			Name:     "job-title-keyword",
			Category: CategoryExperience,
			Weight:   w.JobTitleKeyword,
			Match: func(c *Candidate, v *vocab.Vocabulary) bool {
				return v.ContainsJobTitle(c.Title)
			},
		},
		{
			Name:     "duration-pattern",
			Category: CategoryExperience,
			Weight:   w.DurationPattern,
			Match: func(c *Candidate, _ *vocab.Vocabulary) bool {
				return vocab.LooksLikeDuration(c.Duration)
			},
		},
		{
			Name:     "impact-bullets",
			Category: CategoryExperience,
			Weight:   w.ImpactBullets,
			Match: func(c *Candidate, v *vocab.Vocabulary) bool {
				for _, b := range c.Bullets {
					if v.ContainsImpactLanguage(b) {
						return true
					}
				}
				return false
			},
		},
		{
			Name:     "no-company-non-title",
			Category: CategoryProject,
			Weight:   w.NoCompanyNonTitle,
			Match: func(c *Candidate, v *vocab.Vocabulary) bool {
				return strings.TrimSpace(c.Company) == "" && !v.ContainsJobTitle(c.Title)
			},
		},
		{
			Name:     "technology-list",
			Category: CategoryProject,
			Weight:   w.TechnologyList,
			Match: func(c *Candidate, v *vocab.Vocabulary) bool {
				return len(c.Technologies) > 0 || v.ContainsStackPhrase(c.body())
			},
		},
		{
			Name:     "academic-context",
			Category: CategoryProject,
			Weight:   w.AcademicContext,
			Match: func(c *Candidate, v *vocab.Vocabulary) bool {
				return v.ContainsAcademicMarker(c.body())
			},
		},
		{
			Name:     "project-indicator",
			Category: CategoryProject,
			Weight:   w.ProjectIndicator,
			Match: func(c *Candidate, v *vocab.Vocabulary) bool {
				return v.ContainsProjectIndicator(c.body())
			},
		},
		{
			Name:     "implementation-only-bullets",
			Category: CategoryProject,
			Weight:   w.ImplementationBullets,
			Match: func(c *Candidate, v *vocab.Vocabulary) bool {
				hasImplementation := false
				for _, b := range c.Bullets {
					if v.ContainsImpactLanguage(b) {
						return false
					}
					if v.StartsWithActionVerb(b) {
						hasImplementation = true
					}
				}
				return hasImplementation
			},
		},
	}
}

// Score runs the rule table over a candidate and returns the accumulated
// experience and project scores.
func Score(c *Candidate, rules []Rule, v *vocab.Vocabulary) (experience, project int) {
	for _, r := range rules {
		if !r.Match(c, v) {
			continue
		}
		switch r.Category {
		case CategoryExperience:
			experience += r.Weight
		case CategoryProject:
			project += r.Weight
		}
	}
	return experience, project
}
