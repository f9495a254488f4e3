package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// SkillJudgment is the structured verdict on whether a string names a real skill.
type SkillJudgment struct {
	IsSkill   bool   `json:"is_skill"`
	Canonical string `json:"canonical_name"`
	Category  string `json:"category"`
	Reasoning string `json:"reasoning"`
}

const validatePromptTemplate = `You are maintaining a skill taxonomy for a resume matching system.
Judge whether the following string names a genuine professional skill, technology or competency.

String: %q

Respond with JSON only:
{"is_skill": true|false, "canonical_name": "<canonical display name, empty if not a skill>", "category": "<one of: Programming Languages, Frameworks & Libraries, Databases, Cloud & DevOps, Data Science & AI, Pharmaceutical & Clinical, Soft Skills, Other>", "reasoning": "<one sentence>"}`

// ValidateSkill asks the LLM whether the given string is a genuine skill and
// what its canonical form is. Used as a diagnostic tie-breaker during skill
// discovery; failures propagate to the caller, which treats the judgment as
// unavailable.
func ValidateSkill(ctx context.Context, client Client, rawSkill string) (*SkillJudgment, error) {
	if rawSkill == "" {
		return nil, fmt.Errorf("skill text is empty")
	}

	response, err := client.GenerateJSON(ctx, fmt.Sprintf(validatePromptTemplate, rawSkill))
	if err != nil {
		return nil, fmt.Errorf("skill validation call failed: %w", err)
	}

	var judgment SkillJudgment
	if err := json.Unmarshal([]byte(response), &judgment); err != nil {
		return nil, fmt.Errorf("failed to parse skill judgment: %w", err)
	}
	return &judgment, nil
}
