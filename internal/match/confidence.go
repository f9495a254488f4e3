package match

import (
	"math"
	"strings"

	"github.com/puneetrinity/evalmatch/internal/types"
)

// Confidence weights for each input-completeness signal.
const (
	skillsPresentWeight     = 0.3
	experiencePresentWeight = 0.2
	educationPresentWeight  = 0.1
	contentLongWeight       = 0.2
	contentShortWeight      = 0.1
	matchCompletenessWeight = 0.2

	contentLongThreshold  = 500
	contentShortThreshold = 200

	minConfidence = 0.1
	maxConfidence = 1.0
)

// calculateConfidence estimates how trustworthy the score is from input
// completeness and from how much of the job's requirements the candidate
// actually matched. It never reflects the score's magnitude: a confident 20
// is as valid as a confident 95.
func calculateConfidence(resume types.ResumeData, breakdown []types.SkillMatch) float64 {
	confidence := 0.0

	if len(resume.Skills) > 0 {
		confidence += skillsPresentWeight
	}
	if strings.TrimSpace(resume.Experience) != "" {
		confidence += experiencePresentWeight
	}
	if strings.TrimSpace(resume.Education) != "" {
		confidence += educationPresentWeight
	}

	switch length := len(strings.TrimSpace(resume.Content)); {
	case length >= contentLongThreshold:
		confidence += contentLongWeight
	case length >= contentShortThreshold:
		confidence += contentShortWeight
	}

	required, matched := 0, 0
	for _, m := range breakdown {
		if !m.Required {
			continue
		}
		required++
		if m.Matched {
			matched++
		}
	}
	if required > 0 {
		confidence += matchCompletenessWeight * float64(matched) / float64(required)
	}

	confidence = math.Max(minConfidence, math.Min(maxConfidence, confidence))
	return math.Round(confidence*100) / 100
}
