package types

// SeniorityLevel is a coarse career level extracted from free text.
type SeniorityLevel string

// Seniority levels from most junior to most senior.
const (
	SeniorityJunior    SeniorityLevel = "junior"
	SeniorityMid       SeniorityLevel = "mid"
	SenioritySenior    SeniorityLevel = "senior"
	SeniorityLead      SeniorityLevel = "lead"
	SeniorityExecutive SeniorityLevel = "executive"
)

// Rank maps a seniority level to an ordinal 1-5 for comparison.
// Unknown levels rank as mid.
func (s SeniorityLevel) Rank() int {
	switch s {
	case SeniorityJunior:
		return 1
	case SeniorityMid:
		return 2
	case SenioritySenior:
		return 3
	case SeniorityLead:
		return 4
	case SeniorityExecutive:
		return 5
	default:
		return 2
	}
}

// YearsNotFound is the sentinel for "no years-of-experience figure found".
const YearsNotFound = -1

// ExperienceProfile holds structured signals extracted from free experience text.
// It is derived, ephemeral and never persisted; built fresh from text on every call.
type ExperienceProfile struct {
	Years            int            `json:"years"`
	Domains          []string       `json:"domains"`
	Seniority        SeniorityLevel `json:"seniorityLevel"`
	Roles            []string       `json:"roles"`
	Technologies     []string       `json:"technologies"`
	Responsibilities []string       `json:"responsibilities"`
}
