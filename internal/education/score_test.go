package education

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_Tiers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"phd", "PhD in Computational Biology, Stanford", 100},
		{"masters", "Master of Science in Computer Science", 100},
		{"mba", "MBA, Wharton", 100},
		{"bachelor", "Bachelor of Arts in Economics", 80},
		{"bs abbreviation", "B.S. Computer Science, 2018", 80},
		{"associate", "Associate degree in Network Administration", 60},
		{"diploma", "Diploma in Graphic Design", 60},
		{"certification", "AWS Certified Solutions Architect", 50},
		{"self taught", "Attended several coding bootcamp workshops", 40},
		{"empty", "", 20},
		{"whitespace only", "   ", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.text)
			assert.Equal(t, tt.want, result.Score)
			assert.NotEmpty(t, result.Explanation)
		})
	}
}

func TestScore_HighestTierWins(t *testing.T) {
	// A transcript listing both degrees scores on the higher one.
	result := Score("B.S. in Biology; Master's in Bioinformatics")
	assert.Equal(t, advancedDegreeScore, result.Score)
}
