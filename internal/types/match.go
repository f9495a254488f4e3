package types

import "math"

// ScoringWeights controls how much each dimension contributes to the overall score.
// Weights should sum to approximately 1.0; callers may intentionally use partial
// weightings, so out-of-tolerance sums are logged rather than rejected.
type ScoringWeights struct {
	Skills     float64 `json:"skills" validate:"min=0,max=1"`
	Experience float64 `json:"experience" validate:"min=0,max=1"`
	Education  float64 `json:"education" validate:"min=0,max=1"`
	Semantic   float64 `json:"semantic" validate:"min=0,max=1"`
}

// WeightSumTolerance is the allowed deviation of the weight sum from 1.0.
const WeightSumTolerance = 0.01

// DefaultWeights returns the standard dimension weighting.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Skills:     0.40,
		Experience: 0.30,
		Education:  0.15,
		Semantic:   0.15,
	}
}

// Sum returns the total of all four weights.
func (w ScoringWeights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Semantic
}

// InTolerance reports whether the weights sum to approximately 1.0.
func (w ScoringWeights) InTolerance() bool {
	return math.Abs(w.Sum()-1.0) <= WeightSumTolerance
}

// DimensionScores holds the per-dimension scores and their weighted combination.
// All values are in [0,100].
type DimensionScores struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Semantic   int `json:"semantic"`
	Overall    int `json:"overall"`
}

// Explanation holds human-readable findings derived from the score breakdown.
type Explanation struct {
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// MatchResult is the top-level output of a scoring request. It is constructed
// fresh per request and never mutated after return.
type MatchResult struct {
	TotalScore      int             `json:"totalScore"`
	DimensionScores DimensionScores `json:"dimensionScores"`
	Confidence      float64         `json:"confidence"`
	Explanation     Explanation     `json:"explanation"`
	SkillBreakdown  []SkillMatch    `json:"skillBreakdown"`
}

// ResumeData is the candidate-side input to a scoring request.
type ResumeData struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Content    string   `json:"content"`
}

// JobData is the job-side input to a scoring request.
type JobData struct {
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Description string   `json:"description"`
}
