// Package match implements the top-level match scoring engine: it combines
// skill, experience, education and semantic-similarity signals into one
// explainable result with a confidence estimate.
package match

import (
	"context"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/puneetrinity/evalmatch/internal/education"
	"github.com/puneetrinity/evalmatch/internal/embedding"
	"github.com/puneetrinity/evalmatch/internal/experience"
	"github.com/puneetrinity/evalmatch/internal/skills"
	"github.com/puneetrinity/evalmatch/internal/taxonomy"
	"github.com/puneetrinity/evalmatch/internal/types"
)

// neutralDimensionScore substitutes for any dimension whose signal is
// unavailable; "no data" reads as mid-range with low confidence, never as an
// error.
const neutralDimensionScore = 50

// degradedConfidence is reported when the whole aggregation fails.
const degradedConfidence = 0.3

// Engine orchestrates the scoring dimensions. It is stateless across requests:
// the taxonomy snapshot is read-only and every result is built fresh.
type Engine struct {
	skills     *skills.Matcher
	experience *experience.Matcher
	embedder   embedding.Provider
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewEngine creates a scoring engine. The embedder may be nil, in which case
// every embedding-dependent signal degrades to its fallback.
func NewEngine(snapshot *taxonomy.Snapshot, embedder embedding.Provider, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		skills:     skills.NewMatcher(snapshot, embedder, logger),
		experience: experience.NewMatcher(embedder, logger),
		embedder:   embedder,
		validate:   validator.New(),
		logger:     logger,
	}
}

// SkillMatcher exposes the engine's skill matcher.
func (e *Engine) SkillMatcher() *skills.Matcher {
	return e.skills
}

// CalculateMatch scores a resume against a job. The four dimensions are
// computed concurrently; a failing dimension is replaced by a neutral default
// and only ever surfaces through the confidence value and explanation text.
// The method always returns a well-formed result, never an error.
func (e *Engine) CalculateMatch(ctx context.Context, resume types.ResumeData, job types.JobData, weights types.ScoringWeights) (result types.MatchResult) {
	// Hard product guarantee: even a total aggregation failure yields a
	// well-formed, clearly degraded result.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("match aggregation failed, returning degraded result", zap.Any("panic", r))
			result = DegradedResult()
		}
	}()

	e.validateWeights(weights)

	// Neutral defaults survive if a branch panics before assigning.
	skillsScore := float64(neutralDimensionScore)
	expResult := experience.Result{Score: neutralDimensionScore}
	eduScore := neutralDimensionScore
	semScore := neutralDimensionScore
	breakdown := make([]types.SkillMatch, 0)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		e.runDimension("skills", func() {
			skillsScore, breakdown = e.skills.MatchSkills(gCtx, resume.Skills, job.Skills)
		})
		return nil
	})
	g.Go(func() error {
		e.runDimension("experience", func() {
			expResult = e.experience.Score(gCtx, resume.Experience, job.Experience)
		})
		return nil
	})
	g.Go(func() error {
		e.runDimension("education", func() {
			eduScore = education.Score(resume.Education).Score
		})
		return nil
	})
	g.Go(func() error {
		e.runDimension("semantic", func() {
			semScore = e.semanticScore(gCtx, resume.Content, job.Description)
		})
		return nil
	})
	// Branches report failures via neutral defaults, not errors.
	_ = g.Wait()

	dims := types.DimensionScores{
		Skills:     clampScore(int(math.Round(skillsScore))),
		Experience: clampScore(expResult.Score),
		Education:  clampScore(eduScore),
		Semantic:   clampScore(semScore),
	}
	overall := float64(dims.Skills)*weights.Skills +
		float64(dims.Experience)*weights.Experience +
		float64(dims.Education)*weights.Education +
		float64(dims.Semantic)*weights.Semantic
	dims.Overall = clampScore(int(math.Round(overall)))

	return types.MatchResult{
		TotalScore:      dims.Overall,
		DimensionScores: dims,
		Confidence:      calculateConfidence(resume, breakdown),
		Explanation:     buildExplanation(dims, breakdown),
		SkillBreakdown:  breakdown,
	}
}

// DegradedResult is the fixed fallback returned when aggregation itself fails.
func DegradedResult() types.MatchResult {
	return types.MatchResult{
		TotalScore: neutralDimensionScore,
		DimensionScores: types.DimensionScores{
			Skills:     neutralDimensionScore,
			Experience: neutralDimensionScore,
			Education:  neutralDimensionScore,
			Semantic:   neutralDimensionScore,
			Overall:    neutralDimensionScore,
		},
		Confidence: degradedConfidence,
		Explanation: types.Explanation{
			Strengths:       []string{},
			Weaknesses:      []string{"Scoring was degraded: the analysis could not be completed reliably."},
			Recommendations: []string{"Retry the match once external services are available."},
		},
		SkillBreakdown: []types.SkillMatch{},
	}
}

// validateWeights logs out-of-range or out-of-tolerance weights without
// rejecting them; callers may intentionally use partial weightings.
func (e *Engine) validateWeights(weights types.ScoringWeights) {
	if err := e.validate.Struct(weights); err != nil {
		e.logger.Warn("scoring weights out of range", zap.Error(err))
	}
	if !weights.InTolerance() {
		e.logger.Warn("scoring weights do not sum to 1.0",
			zap.Float64("sum", weights.Sum()))
	}
}

// runDimension executes one scoring branch, substituting the branch's neutral
// default if it panics.
func (e *Engine) runDimension(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("dimension scoring failed, using neutral default",
				zap.String("dimension", name), zap.Any("panic", r))
		}
	}()
	fn()
}

// semanticScore embeds both documents and scales their cosine similarity to
// [0,100]. Missing text or embedding failures yield the neutral score.
func (e *Engine) semanticScore(ctx context.Context, resumeContent, jobDescription string) int {
	if e.embedder == nil ||
		strings.TrimSpace(resumeContent) == "" ||
		strings.TrimSpace(jobDescription) == "" {
		return neutralDimensionScore
	}

	resumeVector, err := e.embedder.Embed(ctx, resumeContent)
	if err != nil {
		e.logger.Warn("semantic dimension unavailable", zap.Error(err))
		return neutralDimensionScore
	}
	jobVector, err := e.embedder.Embed(ctx, jobDescription)
	if err != nil {
		e.logger.Warn("semantic dimension unavailable", zap.Error(err))
		return neutralDimensionScore
	}

	sim := embedding.CosineSimilarity(resumeVector, jobVector)
	return clampScore(int(math.Round(sim * 100)))
}

// clampScore bounds a score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
