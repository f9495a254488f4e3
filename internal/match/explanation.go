package match

import (
	"fmt"
	"strings"

	"github.com/puneetrinity/evalmatch/internal/types"
)

// Explanation thresholds for dimension commentary.
const (
	experienceExcellent = 80
	experienceWeak      = 50
	semanticStrong      = 70
	semanticWeak        = 40
	maxListedSkills     = 5
	maxRecommendations  = 3
)

// buildExplanation turns the score breakdown into deterministic,
// human-readable findings. It is a pure function of its inputs so the same
// match always explains itself the same way.
func buildExplanation(dims types.DimensionScores, breakdown []types.SkillMatch) types.Explanation {
	strengths := make([]string, 0, 4)
	weaknesses := make([]string, 0, 4)
	recommendations := make([]string, 0, maxRecommendations)

	matched := make([]string, 0, len(breakdown))
	missing := make([]string, 0, len(breakdown))
	for _, m := range breakdown {
		if !m.Required {
			continue
		}
		if m.Matched {
			matched = append(matched, m.Skill)
		} else {
			missing = append(missing, m.Skill)
		}
	}

	if len(matched) > 0 {
		strengths = append(strengths, "Matches required skills: "+joinLimited(matched, maxListedSkills)+".")
	}
	if len(missing) > 0 {
		weaknesses = append(weaknesses, "Missing required skills: "+joinLimited(missing, maxListedSkills)+".")
	}

	switch {
	case dims.Experience >= experienceExcellent:
		strengths = append(strengths, "Experience profile is an excellent fit for the role.")
	case dims.Experience < experienceWeak:
		weaknesses = append(weaknesses, "Experience appears below the role's requirements.")
	}

	switch {
	case dims.Semantic >= semanticStrong:
		strengths = append(strengths, "Resume content aligns strongly with the job description.")
	case dims.Semantic < semanticWeak:
		weaknesses = append(weaknesses, "Limited overall similarity between the resume and the job description.")
	}

	for i, skill := range missing {
		if i == maxRecommendations {
			break
		}
		recommendations = append(recommendations, fmt.Sprintf("Highlight any experience with %s, or consider acquiring it.", skill))
	}
	if len(recommendations) == 0 && dims.Experience < experienceWeak {
		recommendations = append(recommendations, "Emphasize relevant experience more explicitly in the resume.")
	}

	return types.Explanation{
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
	}
}

// joinLimited joins up to limit items, appending a count of the remainder.
func joinLimited(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:limit], ", ") + fmt.Sprintf(" and %d more", len(items)-limit)
}
