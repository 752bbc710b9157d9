package reclassify

import (
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// Classifier applies the rule table to extracted entries and assembles the
// final experience and project lists. Reclassification builds new entries
// rather than editing extracted ones: an entry's category is part of its
// identity.
type Classifier struct {
	vocab   *vocab.Vocabulary
	weights Weights
	rules   []Rule
}

// NewClassifier builds a classifier for the given vocabulary and weights.
func NewClassifier(v *vocab.Vocabulary, w Weights) *Classifier {
	return &Classifier{vocab: v, weights: w, rules: Rules(w)}
}

// Apply re-examines every extracted experience and project entry and returns
// the final lists.
//
// Experience entries require positive proof: they are kept only when complete
// (company, duration, at least one bullet), scoring as experience, and clear
// of the confidence threshold. Incomplete or project-scoring entries migrate
// to projects; ambiguous ones are dropped. Projects are the default bucket
// for uncertain personal work and are never dropped for ambiguity.
func (c *Classifier) Apply(experience []types.ExperienceEntry, projects []types.ProjectEntry) ([]types.ExperienceEntry, []types.ProjectEntry) {
	finalExperience := make([]types.ExperienceEntry, 0, len(experience))
	finalProjects := make([]types.ProjectEntry, 0, len(projects))

	for i := range experience {
		cand := candidateFromExperience(&experience[i])
		switch c.decide(cand) {
		case CategoryExperience:
			finalExperience = append(finalExperience, types.ExperienceEntry{
				Title:    cand.Title,
				Company:  cand.Company,
				Duration: cand.Duration,
				Bullets:  copyStrings(cand.Bullets),
			})
		case CategoryProject:
			finalProjects = append(finalProjects, projectFromCandidate(cand, c.vocab))
		}
	}

	// Projects are scored too, but the asymmetry means an ambiguous or
	// even experience-leaning project stays a project unless it could
	// satisfy the completeness invariant, which a project entry cannot.
	for i := range projects {
		p := &projects[i]
		finalProjects = append(finalProjects, types.ProjectEntry{
			Name:         p.Name,
			Description:  p.Description,
			Technologies: copyStrings(p.Technologies),
			Bullets:      copyStrings(p.Bullets),
		})
	}

	return finalExperience, finalProjects
}

// decide returns the final category for a candidate, or "" to drop it.
func (c *Classifier) decide(cand *Candidate) Category {
	expScore, projScore := Score(cand, c.rules, c.vocab)
	confidence := expScore - projScore
	if confidence < 0 {
		confidence = -confidence
	}

	// Hard precondition before any score is trusted: an incomplete entry
	// is never kept as experience regardless of how it scores.
	if !cand.Complete() {
		if projScore > expScore {
			return CategoryProject
		}
		return ""
	}

	switch {
	case expScore > projScore && confidence >= c.weights.ConfidenceThreshold:
		return CategoryExperience
	case projScore > expScore && confidence >= c.weights.ConfidenceThreshold:
		return CategoryProject
	default:
		// Ambiguous, low-signal entries are dropped rather than guessed.
		return ""
	}
}

// candidateFromExperience builds the neutral scoring view of an experience
// entry.
func candidateFromExperience(e *types.ExperienceEntry) *Candidate {
	return &Candidate{
		Title:    e.Title,
		Company:  e.Company,
		Duration: e.Duration,
		Bullets:  e.Bullets,
	}
}

// projectFromCandidate builds the project entry a migrated experience entry
// becomes. The technology set is recovered from the entry's prose, since
// experience entries carry no technology field.
func projectFromCandidate(cand *Candidate, v *vocab.Vocabulary) types.ProjectEntry {
	name := cand.Title
	if name == "" {
		name = cand.Company
	}
	techs := v.TechnologiesIn(cand.body())
	if techs == nil {
		techs = []string{}
	}
	return types.ProjectEntry{
		Name:         name,
		Technologies: techs,
		Bullets:      copyStrings(cand.Bullets),
	}
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
