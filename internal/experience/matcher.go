// Package experience scores the alignment between resume experience text and
// job experience requirements.
package experience

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/puneetrinity/evalmatch/internal/embedding"
	"github.com/puneetrinity/evalmatch/internal/extract"
	"github.com/puneetrinity/evalmatch/internal/skills"
	"github.com/puneetrinity/evalmatch/internal/types"
)

// Sub-score weights; they sum to 1.0.
const (
	yearsWeight     = 0.30
	domainWeight    = 0.35
	seniorityWeight = 0.20
	roleWeight      = 0.15
)

// Years band scores.
const (
	ExceedsRequirement = 100
	meetsRequirement   = 90
	nearRequirement    = 75
	belowRequirement   = 60
	farBelow           = 30
	unknownSignalScore = 50
)

// neutralScore is returned for every sub-score when either input is empty:
// insufficient data must never read as a strong or weak match.
const neutralScore = 30

// Breakdown holds the four weighted sub-scores.
type Breakdown struct {
	YearsScore         int `json:"yearsScore"`
	DomainScore        int `json:"domainScore"`
	SeniorityScore     int `json:"seniorityScore"`
	RoleRelevanceScore int `json:"roleRelevanceScore"`
}

// Result is the outcome of scoring resume experience against a job.
type Result struct {
	Score     int       `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
	Insights  []string  `json:"insights"`
}

// Matcher computes experience alignment scores. The embedder is optional and
// only used as a fallback signal for domain similarity.
type Matcher struct {
	embedder embedding.Provider
	logger   *zap.Logger
}

// NewMatcher creates an experience matcher.
func NewMatcher(embedder embedding.Provider, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{embedder: embedder, logger: logger}
}

// Score builds structured profiles from both texts and combines four weighted
// sub-scores. It never returns an error: degraded signals fall back to
// lower-fidelity alternatives.
func (m *Matcher) Score(ctx context.Context, resumeText, jobText string) Result {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return Result{
			Score: neutralScore,
			Breakdown: Breakdown{
				YearsScore:         neutralScore,
				DomainScore:        neutralScore,
				SeniorityScore:     neutralScore,
				RoleRelevanceScore: neutralScore,
			},
			Insights: []string{"Insufficient experience information to compare."},
		}
	}

	resume := extract.BuildProfile(resumeText)
	job := extract.BuildProfile(jobText)

	breakdown := Breakdown{
		YearsScore:         CalculateYearsScore(resume.Years, job.Years),
		DomainScore:        m.calculateDomainScore(ctx, resume.Domains, job.Domains),
		SeniorityScore:     calculateSeniorityScore(resume.Seniority, job.Seniority),
		RoleRelevanceScore: calculateRoleRelevanceScore(resume, job),
	}

	combined := float64(breakdown.YearsScore)*yearsWeight +
		float64(breakdown.DomainScore)*domainWeight +
		float64(breakdown.SeniorityScore)*seniorityWeight +
		float64(breakdown.RoleRelevanceScore)*roleWeight

	return Result{
		Score:     clamp(int(math.Round(combined))),
		Breakdown: breakdown,
		Insights:  buildInsights(resume, job, breakdown),
	}
}

// CalculateYearsScore compares extracted years against the job requirement.
// It is non-decreasing in resumeYears for a fixed requirement; unknown values
// on either side default to a neutral 50.
func CalculateYearsScore(resumeYears, jobYears int) int {
	if resumeYears == types.YearsNotFound || jobYears == types.YearsNotFound {
		return unknownSignalScore
	}
	if jobYears <= 0 {
		return ExceedsRequirement
	}

	ratio := float64(resumeYears) / float64(jobYears)
	switch {
	case ratio >= 1.5:
		return ExceedsRequirement
	case ratio >= 1.0:
		return meetsRequirement
	case ratio >= 0.8:
		return nearRequirement
	case ratio >= 0.6:
		return belowRequirement
	default:
		return farBelow
	}
}

// calculateDomainScore scores domain alignment with a mandatory three-tier
// fallback: keyword overlap, then embedding similarity of the joined keyword
// strings, then plain string similarity.
func (m *Matcher) calculateDomainScore(ctx context.Context, resumeDomains, jobDomains []string) int {
	if len(resumeDomains) == 0 || len(jobDomains) == 0 {
		return unknownSignalScore
	}

	if overlap := overlapCount(resumeDomains, jobDomains); overlap > 0 {
		score := 80 + 10*overlap
		if score > 100 {
			score = 100
		}
		return score
	}

	resumeJoined := strings.Join(resumeDomains, " ")
	jobJoined := strings.Join(jobDomains, " ")

	if m.embedder != nil {
		resumeVector, errA := m.embedder.Embed(ctx, resumeJoined)
		jobVector, errB := m.embedder.Embed(ctx, jobJoined)
		if errA == nil && errB == nil {
			sim := embedding.CosineSimilarity(resumeVector, jobVector)
			return clamp(int(math.Round(sim * 100)))
		}
		m.logger.Warn("domain embedding unavailable, using string similarity",
			zap.NamedError("resume_err", errA), zap.NamedError("job_err", errB))
	}

	return clamp(int(math.Round(skills.DiceSimilarity(resumeJoined, jobJoined) * 100)))
}

// calculateSeniorityScore compares seniority ordinals. Overqualified
// candidates still score positively.
func calculateSeniorityScore(resume, job types.SeniorityLevel) int {
	resumeRank := resume.Rank()
	jobRank := job.Rank()

	diff := resumeRank - jobRank
	switch {
	case diff == 0:
		return 100
	case diff == 1 || diff == -1:
		return 80
	case diff > 1:
		return 70
	default:
		return 40
	}
}

// calculateRoleRelevanceScore blends role-keyword overlap (60%) with
// responsibility-keyword overlap (40%).
func calculateRoleRelevanceScore(resume, job types.ExperienceProfile) int {
	roleScore := 30
	if matches := overlapCount(resume.Roles, job.Roles); matches > 0 {
		roleScore = 70 + 15*matches
		if roleScore > 100 {
			roleScore = 100
		}
	}

	respScore := 40
	if matches := overlapCount(resume.Responsibilities, job.Responsibilities); matches > 0 {
		respScore = 70 + 15*matches
		if respScore > 100 {
			respScore = 100
		}
	}

	return clamp(int(math.Round(float64(roleScore)*0.6 + float64(respScore)*0.4)))
}

// buildInsights derives short human-readable observations from the profiles.
func buildInsights(resume, job types.ExperienceProfile, breakdown Breakdown) []string {
	insights := make([]string, 0, 3)

	if resume.Years != types.YearsNotFound && job.Years != types.YearsNotFound {
		switch {
		case breakdown.YearsScore == ExceedsRequirement:
			insights = append(insights, fmt.Sprintf("Candidate's %d years of experience exceeds the required %d.", resume.Years, job.Years))
		case breakdown.YearsScore >= meetsRequirement:
			insights = append(insights, fmt.Sprintf("Candidate's %d years of experience meets the required %d.", resume.Years, job.Years))
		default:
			insights = append(insights, fmt.Sprintf("Candidate has %d years of experience against %d required.", resume.Years, job.Years))
		}
	}

	if shared := intersect(resume.Domains, job.Domains); len(shared) > 0 {
		insights = append(insights, "Shared domain experience: "+strings.Join(shared, ", ")+".")
	}
	if breakdown.SeniorityScore <= 40 {
		insights = append(insights, fmt.Sprintf("Candidate seniority (%s) is below the role's level (%s).", resume.Seniority, job.Seniority))
	}

	return insights
}

// overlapCount returns the number of elements present in both slices.
func overlapCount(a, b []string) int {
	return len(intersect(a, b))
}

// intersect returns the elements of a that also appear in b, in a's order.
func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}
	shared := make([]string, 0)
	for _, s := range a {
		if set[s] {
			shared = append(shared, s)
		}
	}
	return shared
}

// clamp bounds a score to [0,100].
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
