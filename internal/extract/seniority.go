package extract

import (
	"strings"

	"github.com/puneetrinity/evalmatch/internal/types"
)

// Seniority markers checked in priority order: higher levels take precedence
// when multiple keywords co-occur (a "Senior Director" is executive, not senior).
var (
	executiveMarkers = []string{"cto", "ceo", "coo", "vp ", "vp,", "vice president", "director", "head of", "chief"}
	leadMarkers      = []string{"lead", "principal", "staff engineer", "staff software", "architect"}
	seniorMarkers    = []string{"senior", "sr.", "sr ", "expert"}
	juniorMarkers    = []string{"junior", "jr.", "jr ", "entry level", "entry-level", "intern", "graduate"}
)

// ExtractSeniority determines the seniority level implied by the text.
// Explicit titles win over year counts; 8+ years implies senior and 0-2 years
// implies junior when no title markers are present. Defaults to mid.
func ExtractSeniority(text string) types.SeniorityLevel {
	lower := strings.ToLower(text)

	if containsAny(lower, executiveMarkers) {
		return types.SeniorityExecutive
	}
	if containsAny(lower, leadMarkers) {
		return types.SeniorityLead
	}
	if containsAny(lower, seniorMarkers) {
		return types.SenioritySenior
	}
	if containsAny(lower, juniorMarkers) {
		return types.SeniorityJunior
	}

	switch years := ExtractYears(text); {
	case years >= 8:
		return types.SenioritySenior
	case years >= 0 && years <= 2:
		return types.SeniorityJunior
	}

	return types.SeniorityMid
}

// containsAny reports whether the lowercased text contains any of the markers.
func containsAny(lower string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
