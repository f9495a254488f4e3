package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiceSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "javascript", "javascript", 1.0},
		{"empty both", "", "", 0.0},
		{"one empty", "go", "", 0.0},
		{"single char no match", "r", "go", 0.0},
		{"single char equal", "r", "r", 1.0},
		{"disjoint", "abcd", "wxyz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DiceSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestDiceSimilarity_Typo(t *testing.T) {
	// A one-character typo should stay well above the fuzzy threshold.
	sim := DiceSimilarity("javscript", "javascript")
	assert.Greater(t, sim, fuzzyThreshold)
	assert.Less(t, sim, 1.0)
}

func TestDiceSimilarity_Symmetric(t *testing.T) {
	assert.Equal(t, DiceSimilarity("postgres", "postgresql"), DiceSimilarity("postgresql", "postgres"))
}
