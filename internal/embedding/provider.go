// Package embedding provides text embedding providers and vector similarity.
package embedding

import (
	"context"
	"math"
)

// Provider turns text into a fixed-length vector. Implementations may call
// remote services and must honor context cancellation; callers treat any
// error as "this signal is unavailable" and degrade.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// CosineSimilarity returns the cosine similarity of two vectors in [-1,1].
// Mismatched lengths and zero vectors yield 0 so that pathological inputs can
// never produce NaN downstream.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		return 0
	}
	return sim
}
