// Package skills implements skill resolution against the taxonomy and the
// skill match aggregator.
package skills

// DiceSimilarity returns the Sorensen-Dice coefficient over character bigrams
// of the two strings, in [0,1]. Inputs shorter than two characters only match
// exactly.
func DiceSimilarity(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	if len(a) < 2 || len(b) < 2 {
		return 0
	}

	bigramsA := bigrams(a)
	bigramsB := bigrams(b)

	intersection := 0
	for bigram, count := range bigramsA {
		if other, ok := bigramsB[bigram]; ok {
			intersection += min(count, other)
		}
	}

	totalA := len(a) - 1
	totalB := len(b) - 1
	return 2.0 * float64(intersection) / float64(totalA+totalB)
}

// bigrams returns the multiset of character bigrams in s.
func bigrams(s string) map[string]int {
	grams := make(map[string]int, len(s))
	for i := 0; i+2 <= len(s); i++ {
		grams[s[i:i+2]]++
	}
	return grams
}
