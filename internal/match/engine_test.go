package match

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/puneetrinity/evalmatch/internal/embedding"
	"github.com/puneetrinity/evalmatch/internal/taxonomy"
	"github.com/puneetrinity/evalmatch/internal/types"
)

// stubEmbedder returns canned vectors keyed by exact text and fails for
// anything else.
type stubEmbedder struct {
	vectors map[string][]float64
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	vector, ok := s.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no embedding for %q", text)
	}
	return vector, nil
}

// failingEmbedder simulates a fully unavailable embedding provider.
type failingEmbedder struct{}

func (failingEmbedder) Embed(context.Context, string) ([]float64, error) {
	return nil, fmt.Errorf("embedding service unavailable")
}

func seedEngine(t *testing.T, embedder embedding.Provider) *Engine {
	t.Helper()
	return NewEngine(taxonomy.Seed(), embedder, nil)
}

func TestCalculateMatch_EmptyInputsAreDeterministic(t *testing.T) {
	engine := seedEngine(t, nil)

	first := engine.CalculateMatch(context.Background(), types.ResumeData{}, types.JobData{}, types.DefaultWeights())
	second := engine.CalculateMatch(context.Background(), types.ResumeData{}, types.JobData{}, types.DefaultWeights())

	assert.Equal(t, first, second)
	// 0.40*0 + 0.30*30 + 0.15*20 + 0.15*50 = 19.5, rounded up.
	assert.Equal(t, 20, first.TotalScore)
	assert.Equal(t, types.DimensionScores{Skills: 0, Experience: 30, Education: 20, Semantic: 50, Overall: 20}, first.DimensionScores)
	assert.Equal(t, 0.1, first.Confidence)
	assert.Empty(t, first.SkillBreakdown)
}

func TestCalculateMatch_StrongCandidate(t *testing.T) {
	engine := seedEngine(t, nil)

	resume := types.ResumeData{
		Skills:     []string{"Go", "PostgreSQL"},
		Experience: "Senior software engineer with 8 years of experience at pharmaceutical companies, where I led and developed GMP systems.",
		Education:  "Master of Science in Computer Science",
	}
	job := types.JobData{
		Skills:     []string{"golang", "postgres"},
		Experience: "Senior software engineer with 5+ years of experience in the pharmaceutical industry; must have led and developed clinical systems.",
	}

	result := engine.CalculateMatch(context.Background(), resume, job, types.DefaultWeights())

	assert.Equal(t, 100, result.DimensionScores.Skills)
	// years 100*0.30 + domain 90*0.35 + seniority 100*0.20 + role 91*0.15.
	assert.Equal(t, 95, result.DimensionScores.Experience)
	assert.Equal(t, 100, result.DimensionScores.Education)
	assert.Equal(t, 50, result.DimensionScores.Semantic)
	assert.Equal(t, 91, result.TotalScore)
	assert.Equal(t, 0.8, result.Confidence)

	assert.Contains(t, result.Explanation.Strengths, "Matches required skills: go, postgresql.")
	assert.Contains(t, result.Explanation.Strengths, "Experience profile is an excellent fit for the role.")
	assert.Empty(t, result.Explanation.Recommendations)
}

func TestCalculateMatch_FailingEmbedderStaysBoundedWithLowConfidence(t *testing.T) {
	engine := seedEngine(t, failingEmbedder{})

	resume := types.ResumeData{
		Skills:  []string{"Underwater Basket Weaving"},
		Content: strings.Repeat("candidate resume content ", 25),
	}
	job := types.JobData{Skills: []string{"Go"}}

	result := engine.CalculateMatch(context.Background(), resume, job, types.DefaultWeights())

	// Unmatched requirement plus one bonus skill: round(100*10/110) = 9.
	assert.Equal(t, 9, result.DimensionScores.Skills)
	assert.Equal(t, 50, result.DimensionScores.Semantic)
	assert.Equal(t, 23, result.TotalScore)
	assert.LessOrEqual(t, result.Confidence, 0.5)
	assert.GreaterOrEqual(t, result.Confidence, 0.1)
	assert.Contains(t, result.Explanation.Weaknesses, "Missing required skills: go.")
}

func TestCalculateMatch_SemanticDimension(t *testing.T) {
	resumeContent := "backend go services"
	jobDescription := "golang backend engineering"
	engine := seedEngine(t, &stubEmbedder{vectors: map[string][]float64{
		resumeContent:  {1, 0},
		jobDescription: {0.8, 0.6},
	}})

	result := engine.CalculateMatch(context.Background(),
		types.ResumeData{Content: resumeContent},
		types.JobData{Description: jobDescription},
		types.DefaultWeights())

	assert.Equal(t, 80, result.DimensionScores.Semantic)
	assert.Contains(t, result.Explanation.Strengths, "Resume content aligns strongly with the job description.")
}

func TestCalculateMatch_WeightSensitivity(t *testing.T) {
	engine := seedEngine(t, nil)

	resume := types.ResumeData{Skills: []string{"Go"}}
	job := types.JobData{Skills: []string{"Go"}}

	skillsOnly := engine.CalculateMatch(context.Background(), resume, job, types.ScoringWeights{Skills: 1})
	semanticOnly := engine.CalculateMatch(context.Background(), resume, job, types.ScoringWeights{Semantic: 1})

	assert.Equal(t, 100, skillsOnly.TotalScore)
	assert.Equal(t, 50, semanticOnly.TotalScore)
}

func TestCalculateMatch_Bounded(t *testing.T) {
	engine := seedEngine(t, failingEmbedder{})

	resumes := []types.ResumeData{
		{},
		{Skills: []string{"Go", "Python", "Docker", "Kubernetes", "AWS", "Terraform", "React"}},
		{Skills: []string{"GMP"}, Experience: "2 years in clinical trials", Education: "PhD in Pharmacology"},
	}
	jobs := []types.JobData{
		{},
		{Skills: []string{"COBOL", "Fortran"}, Experience: "minimum of 10 years required"},
		{Skills: []string{"Go"}, Description: "build services"},
	}

	for _, resume := range resumes {
		for _, job := range jobs {
			result := engine.CalculateMatch(context.Background(), resume, job, types.DefaultWeights())
			assert.GreaterOrEqual(t, result.TotalScore, 0)
			assert.LessOrEqual(t, result.TotalScore, 100)
			assert.GreaterOrEqual(t, result.Confidence, 0.1)
			assert.LessOrEqual(t, result.Confidence, 1.0)
			for _, score := range []int{
				result.DimensionScores.Skills,
				result.DimensionScores.Experience,
				result.DimensionScores.Education,
				result.DimensionScores.Semantic,
			} {
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	}
}

func TestDegradedResult(t *testing.T) {
	result := DegradedResult()

	assert.Equal(t, 50, result.TotalScore)
	assert.Equal(t, types.DimensionScores{Skills: 50, Experience: 50, Education: 50, Semantic: 50, Overall: 50}, result.DimensionScores)
	assert.Equal(t, 0.3, result.Confidence)
	assert.NotEmpty(t, result.Explanation.Weaknesses)
	assert.NotNil(t, result.SkillBreakdown)
}
