package skills

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/puneetrinity/evalmatch/internal/embedding"
	"github.com/puneetrinity/evalmatch/internal/taxonomy"
	"github.com/puneetrinity/evalmatch/internal/types"
)

// Resolution tier thresholds and confidences.
const (
	exactConfidence    = 1.0
	aliasConfidence    = 0.95
	fuzzyThreshold     = 0.70
	semanticThreshold  = 0.60
	fallbackConfidence = 0.3

	// resolveConcurrency bounds parallel embedding calls during batch
	// resolution to respect provider rate limits.
	resolveConcurrency = 3
)

// Resolution is the outcome of normalizing one raw skill string.
type Resolution struct {
	Normalized string              `json:"normalized"`
	Category   types.SkillCategory `json:"category,omitempty"`
	Confidence float64             `json:"confidence"`
	Method     types.MatchType     `json:"method"`
}

// Resolver normalizes free-text skill names against a taxonomy snapshot,
// degrading through exact, alias, fuzzy and semantic tiers. Resolution is
// best effort: it never returns an error, and tiers whose dependencies are
// unavailable are skipped.
type Resolver struct {
	taxonomy *taxonomy.Snapshot
	embedder embedding.Provider
	logger   *zap.Logger
}

// NewResolver creates a resolver. The embedder may be nil, in which case the
// semantic tier is skipped.
func NewResolver(snapshot *taxonomy.Snapshot, embedder embedding.Provider, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{taxonomy: snapshot, embedder: embedder, logger: logger}
}

// Resolve normalizes a raw skill string. Tiers are tried in order and the
// first successful tier wins; if none succeed, the original text is returned
// with a low fixed confidence so callers always get a usable value.
func (r *Resolver) Resolve(ctx context.Context, rawSkill string) Resolution {
	normalized := taxonomy.Normalize(rawSkill)
	if normalized == "" {
		return Resolution{Normalized: "", Confidence: fallbackConfidence, Method: types.MatchTypeFuzzy}
	}

	attempts := []func(ctx context.Context, normalized, raw string) (Resolution, bool){
		r.resolveExact,
		r.resolveAlias,
		r.resolveFuzzy,
		r.resolveSemantic,
	}
	for _, attempt := range attempts {
		if res, ok := attempt(ctx, normalized, rawSkill); ok {
			return res
		}
	}

	r.logger.Debug("skill not found in taxonomy, using raw text",
		zap.String("skill", rawSkill))
	return Resolution{
		Normalized: normalized,
		Confidence: fallbackConfidence,
		Method:     types.MatchTypeFuzzy,
	}
}

// ResolveAll resolves a batch of skills with bounded concurrency. The result
// slice is index-aligned with the input.
func (r *Resolver) ResolveAll(ctx context.Context, rawSkills []string) []Resolution {
	resolutions := make([]Resolution, len(rawSkills))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for i, raw := range rawSkills {
		i, raw := i, raw
		g.Go(func() error {
			resolutions[i] = r.Resolve(gCtx, raw)
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	return resolutions
}

// resolveExact matches the normalized text against taxonomy normalized names.
func (r *Resolver) resolveExact(_ context.Context, normalized, _ string) (Resolution, bool) {
	rec, ok := r.taxonomy.LookupByNormalizedName(normalized)
	if !ok {
		return Resolution{}, false
	}
	return Resolution{
		Normalized: rec.NormalizedName,
		Category:   rec.Category,
		Confidence: exactConfidence,
		Method:     types.MatchTypeExact,
	}, true
}

// resolveAlias matches the normalized text against taxonomy alias sets.
func (r *Resolver) resolveAlias(_ context.Context, normalized, _ string) (Resolution, bool) {
	rec, ok := r.taxonomy.LookupByAlias(normalized)
	if !ok {
		return Resolution{}, false
	}
	return Resolution{
		Normalized: rec.NormalizedName,
		Category:   rec.Category,
		Confidence: aliasConfidence,
		Method:     types.MatchTypeAlias,
	}, true
}

// resolveFuzzy ranks taxonomy names by bigram similarity and accepts the best
// match above the fuzzy threshold.
func (r *Resolver) resolveFuzzy(_ context.Context, normalized, _ string) (Resolution, bool) {
	var (
		best      types.SkillRecord
		bestScore float64
	)
	for _, rec := range r.taxonomy.ListAll() {
		if score := DiceSimilarity(normalized, rec.NormalizedName); score > bestScore {
			best = rec
			bestScore = score
		}
	}

	if bestScore <= fuzzyThreshold {
		return Resolution{}, false
	}
	return Resolution{
		Normalized: best.NormalizedName,
		Category:   best.Category,
		Confidence: bestScore,
		Method:     types.MatchTypeFuzzy,
	}, true
}

// resolveSemantic embeds the raw text and compares it against stored taxonomy
// embeddings by cosine similarity. The tier is skipped when no embedder is
// configured or the embedding call fails.
func (r *Resolver) resolveSemantic(ctx context.Context, _ string, raw string) (Resolution, bool) {
	if r.embedder == nil {
		return Resolution{}, false
	}

	vector, err := r.embedder.Embed(ctx, raw)
	if err != nil {
		r.logger.Warn("semantic resolution skipped: embedding failed",
			zap.String("skill", raw), zap.Error(err))
		return Resolution{}, false
	}

	var (
		best      types.SkillRecord
		bestScore float64
	)
	for _, rec := range r.taxonomy.ListAll() {
		if len(rec.Embedding) == 0 {
			continue
		}
		if score := embedding.CosineSimilarity(vector, rec.Embedding); score > bestScore {
			best = rec
			bestScore = score
		}
	}

	if bestScore <= semanticThreshold {
		return Resolution{}, false
	}
	return Resolution{
		Normalized: best.NormalizedName,
		Category:   best.Category,
		Confidence: bestScore,
		Method:     types.MatchTypeSemantic,
	}, true
}
