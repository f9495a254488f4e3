package extract

import "github.com/puneetrinity/evalmatch/internal/types"

// BuildProfile extracts all structured signals from free experience text.
// The profile is ephemeral; callers build a fresh one per scoring request.
func BuildProfile(text string) types.ExperienceProfile {
	return types.ExperienceProfile{
		Years:            ExtractYears(text),
		Domains:          ExtractDomains(text),
		Seniority:        ExtractSeniority(text),
		Roles:            ExtractRoles(text),
		Technologies:     ExtractTechnologies(text),
		Responsibilities: ExtractResponsibilities(text),
	}
}
