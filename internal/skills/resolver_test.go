package skills

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/puneetrinity/evalmatch/internal/taxonomy"
	"github.com/puneetrinity/evalmatch/internal/types"
)

// stubEmbedder serves fixed vectors keyed by normalized text and fails for
// anything else.
type stubEmbedder struct {
	vectors map[string][]float64
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if vector, ok := s.vectors[taxonomy.Normalize(text)]; ok {
		return vector, nil
	}
	return nil, fmt.Errorf("no vector for %q", text)
}

// failingEmbedder simulates a permanently unavailable embedding provider.
type failingEmbedder struct{}

func (failingEmbedder) Embed(context.Context, string) ([]float64, error) {
	return nil, fmt.Errorf("embedding service unavailable")
}

func TestResolver_ExactTier(t *testing.T) {
	resolver := NewResolver(taxonomy.Seed(), nil, nil)

	res := resolver.Resolve(context.Background(), "  JavaScript ")

	assert.Equal(t, "javascript", res.Normalized)
	assert.Equal(t, types.MatchTypeExact, res.Method)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Equal(t, types.CategoryProgrammingLanguages, res.Category)
}

func TestResolver_AliasTier(t *testing.T) {
	resolver := NewResolver(taxonomy.Seed(), nil, nil)

	res := resolver.Resolve(context.Background(), "K8s")

	assert.Equal(t, "kubernetes", res.Normalized)
	assert.Equal(t, types.MatchTypeAlias, res.Method)
	assert.Equal(t, 0.95, res.Confidence)
}

func TestResolver_FuzzyTier(t *testing.T) {
	resolver := NewResolver(taxonomy.Seed(), nil, nil)

	res := resolver.Resolve(context.Background(), "javscript")

	assert.Equal(t, "javascript", res.Normalized)
	assert.Equal(t, types.MatchTypeFuzzy, res.Method)
	assert.Greater(t, res.Confidence, fuzzyThreshold)
}

func TestResolver_SemanticTier(t *testing.T) {
	snapshot := taxonomy.NewSnapshot([]types.SkillRecord{
		{Name: "React", Category: types.CategoryFrameworks, Embedding: []float64{1, 0}},
		{Name: "PostgreSQL", Category: types.CategoryDatabases, Embedding: []float64{0, 1}},
	})
	embedder := &stubEmbedder{vectors: map[string][]float64{
		"component rendering toolkit": {0.9, 0.1},
	}}
	resolver := NewResolver(snapshot, embedder, nil)

	res := resolver.Resolve(context.Background(), "component rendering toolkit")

	assert.Equal(t, "react", res.Normalized)
	assert.Equal(t, types.MatchTypeSemantic, res.Method)
	assert.Greater(t, res.Confidence, semanticThreshold)
}

func TestResolver_FallbackNeverErrors(t *testing.T) {
	resolver := NewResolver(taxonomy.Seed(), nil, nil)

	res := resolver.Resolve(context.Background(), "underwater basket weaving")

	assert.Equal(t, "underwater basket weaving", res.Normalized)
	assert.Equal(t, types.MatchTypeFuzzy, res.Method)
	assert.Equal(t, 0.3, res.Confidence)
}

func TestResolver_EmbedderFailureFallsThrough(t *testing.T) {
	resolver := NewResolver(taxonomy.Seed(), failingEmbedder{}, nil)

	res := resolver.Resolve(context.Background(), "quantum flux calibration")

	assert.Equal(t, "quantum flux calibration", res.Normalized)
	assert.Equal(t, 0.3, res.Confidence)
}

func TestResolver_ResolveAll_IndexAligned(t *testing.T) {
	resolver := NewResolver(taxonomy.Seed(), nil, nil)

	resolutions := resolver.ResolveAll(context.Background(), []string{"JS", "Python", "made-up-skill"})

	assert.Len(t, resolutions, 3)
	assert.Equal(t, "javascript", resolutions[0].Normalized)
	assert.Equal(t, "python", resolutions[1].Normalized)
	assert.Equal(t, "made-up-skill", resolutions[2].Normalized)
}
