// Package education scores education text against a fixed keyword tier ladder.
package education

import "strings"

// Tier scores from highest attained credential down to no information.
const (
	advancedDegreeScore = 100
	bachelorScore       = 80
	associateScore      = 60
	certificationScore  = 50
	selfTaughtScore     = 40
	noInformationScore  = 20
)

// Result pairs an education score with its one-line explanation.
type Result struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

var (
	advancedMarkers    = []string{"phd", "ph.d", "doctorate", "doctoral", "master", "mba", "m.s.", "msc"}
	bachelorMarkers    = []string{"bachelor", "b.s.", "b.a.", "bsc", "undergraduate degree"}
	associateMarkers   = []string{"associate", "diploma"}
	certificateMarkers = []string{"certification", "certificate", "certified"}
)

// Score maps education text onto the keyword tier ladder. The highest tier
// found wins; empty text scores lowest, and text with no recognized
// credential is treated as self-taught rather than zero.
func Score(educationText string) Result {
	lower := strings.ToLower(strings.TrimSpace(educationText))
	if lower == "" {
		return Result{Score: noInformationScore, Explanation: "No education information provided."}
	}

	switch {
	case containsAny(lower, advancedMarkers):
		return Result{Score: advancedDegreeScore, Explanation: "Advanced degree (Master's or PhD)."}
	case containsAny(lower, bachelorMarkers):
		return Result{Score: bachelorScore, Explanation: "Bachelor's degree."}
	case containsAny(lower, associateMarkers):
		return Result{Score: associateScore, Explanation: "Associate degree or diploma."}
	case containsAny(lower, certificateMarkers):
		return Result{Score: certificationScore, Explanation: "Professional certification."}
	default:
		return Result{Score: selfTaughtScore, Explanation: "No formal credential found; treated as self-taught."}
	}
}

func containsAny(lower string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
