package llm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned response or error.
type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateJSON(context.Context, string) (string, error) {
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func TestValidateSkill_ParsesJudgment(t *testing.T) {
	client := &stubClient{response: `{"is_skill": true, "canonical_name": "Kubernetes", "category": "Cloud & DevOps", "reasoning": "Container orchestration platform."}`}

	judgment, err := ValidateSkill(context.Background(), client, "k8s admin")
	require.NoError(t, err)
	assert.True(t, judgment.IsSkill)
	assert.Equal(t, "Kubernetes", judgment.Canonical)
}

func TestValidateSkill_ClientFailure(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("quota exceeded")}

	_, err := ValidateSkill(context.Background(), client, "k8s")
	assert.Error(t, err)
}

func TestValidateSkill_MalformedResponse(t *testing.T) {
	client := &stubClient{response: "not json"}

	_, err := ValidateSkill(context.Background(), client, "k8s")
	assert.Error(t, err)
}

func TestValidateSkill_EmptyInput(t *testing.T) {
	_, err := ValidateSkill(context.Background(), &stubClient{}, "")
	assert.Error(t, err)
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSONBlock(`{"a":1}`))
}
