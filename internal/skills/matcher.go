package skills

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/puneetrinity/evalmatch/internal/embedding"
	"github.com/puneetrinity/evalmatch/internal/taxonomy"
	"github.com/puneetrinity/evalmatch/internal/types"
)

// Per-required-skill tier scores and thresholds.
const (
	exactMatchScore     = 100
	relatedStrongScore  = 90
	relatedMatchScore   = 70
	relatedThreshold    = 0.7
	relatedStrongCutoff = 0.9

	pairwiseThreshold   = 0.6
	semanticScoreFactor = 60

	bonusSkillScore = 10
	maxBonusSkills  = 5
)

// Matcher scores a candidate skill list against a job's required skill list.
// It is a pure function of its inputs, the taxonomy snapshot and the
// embedding provider; it holds no mutable state across calls.
type Matcher struct {
	resolver *Resolver
	taxonomy *taxonomy.Snapshot
	embedder embedding.Provider
	logger   *zap.Logger
}

// NewMatcher creates a matcher. The embedder may be nil; embedding-dependent
// tiers are then skipped.
func NewMatcher(snapshot *taxonomy.Snapshot, embedder embedding.Provider, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		resolver: NewResolver(snapshot, embedder, logger),
		taxonomy: snapshot,
		embedder: embedder,
		logger:   logger,
	}
}

// Resolver exposes the matcher's skill resolver.
func (m *Matcher) Resolver() *Resolver {
	return m.resolver
}

// candidate pairs a raw candidate skill with its resolution.
type candidate struct {
	raw        string
	resolution Resolution
}

// MatchSkills resolves every required skill against the candidate's skills and
// returns a bounded percentage score plus a per-skill breakdown. Each required
// skill is matched through strict tiers (exact equality, related skill,
// pairwise semantic similarity); the first successful tier wins. Candidate
// skills that match no requirement contribute a small bonus, capped so breadth
// cannot dominate the score.
//
// The aggregated score is order-independent: permuting either input list only
// reorders the breakdown.
func (m *Matcher) MatchSkills(ctx context.Context, candidateSkills, requiredSkills []string) (float64, []types.SkillMatch) {
	candidates := m.resolveCandidates(ctx, candidateSkills)
	required := m.resolver.ResolveAll(ctx, requiredSkills)

	candidateIndex := make(map[string]int, len(candidates))
	for i, c := range candidates {
		if _, exists := candidateIndex[c.resolution.Normalized]; !exists {
			candidateIndex[c.resolution.Normalized] = i
		}
	}

	embeds := make(map[string][]float64)
	used := make(map[string]bool)
	breakdown := make([]types.SkillMatch, 0, len(required)+maxBonusSkills)
	total, maxPossible := 0, 0

	requiredCount := 0
	for _, req := range required {
		if req.Normalized == "" {
			continue
		}
		requiredCount++
		maxPossible += exactMatchScore
		match := m.matchRequired(ctx, req, candidates, candidateIndex, embeds, used)
		total += match.Score
		breakdown = append(breakdown, match)
	}

	// Bonus entries for candidate skills the job did not ask for. Each adds
	// to both total and maximum so at most 50 points of breadth reward exist.
	bonuses := 0
	for _, c := range candidates {
		if bonuses >= maxBonusSkills {
			break
		}
		if used[c.resolution.Normalized] {
			continue
		}
		used[c.resolution.Normalized] = true
		breakdown = append(breakdown, types.SkillMatch{
			Skill:     c.resolution.Normalized,
			Required:  false,
			Matched:   true,
			MatchType: c.resolution.Method,
			Score:     bonusSkillScore,
			Category:  c.resolution.Category,
		})
		total += bonusSkillScore
		maxPossible += bonusSkillScore
		bonuses++
	}

	// Zero required skills is defined as score 0, no matter how many bonus
	// entries exist; the breakdown still lists them.
	if requiredCount == 0 {
		return 0, breakdown
	}

	score := math.Round(100 * float64(total) / float64(maxPossible))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, breakdown
}

// resolveCandidates resolves candidate skills and drops empty or duplicate
// normalized names, keeping first occurrences.
func (m *Matcher) resolveCandidates(ctx context.Context, candidateSkills []string) []candidate {
	resolutions := m.resolver.ResolveAll(ctx, candidateSkills)

	seen := make(map[string]bool, len(resolutions))
	candidates := make([]candidate, 0, len(resolutions))
	for i, res := range resolutions {
		if res.Normalized == "" || seen[res.Normalized] {
			continue
		}
		seen[res.Normalized] = true
		candidates = append(candidates, candidate{raw: candidateSkills[i], resolution: res})
	}
	return candidates
}

// matchRequired scores one required skill against the candidate list through
// the matching tiers. Matched candidates are recorded in used so they are not
// counted again as bonus skills.
func (m *Matcher) matchRequired(
	ctx context.Context,
	req Resolution,
	candidates []candidate,
	candidateIndex map[string]int,
	embeds map[string][]float64,
	used map[string]bool,
) types.SkillMatch {
	match := types.SkillMatch{
		Skill:    req.Normalized,
		Required: true,
		Category: req.Category,
	}

	// Tier 1: exact normalized-name equality.
	if _, ok := candidateIndex[req.Normalized]; ok {
		used[req.Normalized] = true
		match.Matched = true
		match.MatchType = types.MatchTypeExact
		match.Score = exactMatchScore
		return match
	}

	// Tier 2: related skill, via taxonomy relations or embedding neighbors.
	relatedHit := false
	for _, neighbor := range m.taxonomy.RelatedNames(req.Normalized) {
		if _, ok := candidateIndex[neighbor]; ok {
			used[neighbor] = true
			relatedHit = true
		}
	}

	bestSim, bestIdx := m.bestPairwiseSimilarity(ctx, req, candidates, embeds)
	if relatedHit || bestSim >= relatedThreshold {
		if bestSim >= relatedThreshold {
			used[candidates[bestIdx].resolution.Normalized] = true
		}
		match.Matched = true
		match.MatchType = types.MatchTypeSemantic
		if bestSim > relatedStrongCutoff {
			match.Score = relatedStrongScore
		} else {
			match.Score = relatedMatchScore
		}
		return match
	}

	// Tier 3: best direct pairwise semantic similarity above the threshold.
	if bestSim > pairwiseThreshold {
		used[candidates[bestIdx].resolution.Normalized] = true
		match.Matched = true
		match.MatchType = types.MatchTypeSemantic
		match.Score = int(math.Round(bestSim * semanticScoreFactor))
		return match
	}

	match.Matched = false
	match.MatchType = types.MatchTypeNone
	match.Score = 0
	return match
}

// bestPairwiseSimilarity embeds the required skill and every candidate skill
// and returns the best cosine similarity with its candidate index. Returns
// (0, -1) when the embedder is unavailable or all calls fail; embeddings are
// computed once per distinct text within a MatchSkills call.
func (m *Matcher) bestPairwiseSimilarity(
	ctx context.Context,
	req Resolution,
	candidates []candidate,
	embeds map[string][]float64,
) (float64, int) {
	if m.embedder == nil || len(candidates) == 0 {
		return 0, -1
	}

	reqVector := m.embedOnce(ctx, embeds, req.Normalized)
	if reqVector == nil {
		return 0, -1
	}

	bestSim, bestIdx := 0.0, -1
	for i, c := range candidates {
		vector := m.embedOnce(ctx, embeds, c.resolution.Normalized)
		if vector == nil {
			continue
		}
		if sim := embedding.CosineSimilarity(reqVector, vector); sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}
	return bestSim, bestIdx
}

// embedOnce returns the embedding for text, caching results (including
// failures, stored as nil) for the duration of one MatchSkills call.
func (m *Matcher) embedOnce(ctx context.Context, embeds map[string][]float64, text string) []float64 {
	if vector, ok := embeds[text]; ok {
		return vector
	}
	vector, err := m.embedder.Embed(ctx, text)
	if err != nil {
		m.logger.Warn("pairwise similarity skipped: embedding failed",
			zap.String("skill", text), zap.Error(err))
		vector = nil
	}
	embeds[text] = vector
	return vector
}
