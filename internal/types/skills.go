// Package types defines the shared data structures for the match scoring engine.
package types

import "github.com/google/uuid"

// SkillCategory classifies a skill within the taxonomy.
type SkillCategory string

// Skill categories used by the built-in taxonomy.
const (
	CategoryProgrammingLanguages SkillCategory = "Programming Languages"
	CategoryFrameworks           SkillCategory = "Frameworks & Libraries"
	CategoryDatabases            SkillCategory = "Databases"
	CategoryCloudDevOps          SkillCategory = "Cloud & DevOps"
	CategoryDataScience          SkillCategory = "Data Science & AI"
	CategoryPharmaceutical       SkillCategory = "Pharmaceutical & Clinical"
	CategorySoftSkills           SkillCategory = "Soft Skills"
	CategoryOther                SkillCategory = "Other"
)

// SkillRecord is a canonical skill owned by the taxonomy store.
// Records are immutable once created; the scoring engine only reads them.
type SkillRecord struct {
	ID             uuid.UUID     `json:"id,omitempty"`
	Name           string        `json:"name"`
	NormalizedName string        `json:"normalized_name"`
	Category       SkillCategory `json:"category"`
	Aliases        []string      `json:"aliases,omitempty"`
	Related        []string      `json:"related,omitempty"`
	Embedding      []float64     `json:"embedding,omitempty"`
}

// MatchType describes how a skill was matched or resolved.
type MatchType string

// Match types, from strongest to weakest.
const (
	MatchTypeExact    MatchType = "exact"
	MatchTypeAlias    MatchType = "alias"
	MatchTypeFuzzy    MatchType = "fuzzy"
	MatchTypeSemantic MatchType = "semantic"
	MatchTypeNone     MatchType = "none"
)

// SkillMatch is the result of resolving one skill against a candidate's skill list.
// Invariants: Matched == false implies Score == 0 and MatchType == MatchTypeNone;
// entries with Required == false are bonus skills and always have Matched == true.
type SkillMatch struct {
	Skill     string        `json:"skill"`
	Required  bool          `json:"required"`
	Matched   bool          `json:"matched"`
	MatchType MatchType     `json:"matchType"`
	Score     int           `json:"score"`
	Category  SkillCategory `json:"category,omitempty"`
}
