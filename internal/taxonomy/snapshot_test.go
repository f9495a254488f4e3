package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puneetrinity/evalmatch/internal/types"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "javascript", Normalize("  JavaScript "))
	assert.Equal(t, "machine learning", Normalize("Machine   Learning"))
	assert.Equal(t, "", Normalize("   "))
}

func TestSnapshot_LookupByNormalizedName(t *testing.T) {
	snapshot := NewSnapshot([]types.SkillRecord{
		{Name: "JavaScript", Category: types.CategoryProgrammingLanguages, Aliases: []string{"js"}},
	})

	rec, ok := snapshot.LookupByNormalizedName("JavaScript")
	require.True(t, ok)
	assert.Equal(t, "JavaScript", rec.Name)
	assert.Equal(t, "javascript", rec.NormalizedName)

	_, ok = snapshot.LookupByNormalizedName("cobol")
	assert.False(t, ok)
}

func TestSnapshot_LookupByAlias(t *testing.T) {
	snapshot := NewSnapshot([]types.SkillRecord{
		{Name: "Kubernetes", Category: types.CategoryCloudDevOps, Aliases: []string{"K8s"}},
	})

	rec, ok := snapshot.LookupByAlias("k8s")
	require.True(t, ok)
	assert.Equal(t, "Kubernetes", rec.Name)

	_, ok = snapshot.LookupByAlias("kube")
	assert.False(t, ok)
}

func TestSnapshot_DuplicateNormalizedNamesKeepFirst(t *testing.T) {
	snapshot := NewSnapshot([]types.SkillRecord{
		{Name: "Go", Category: types.CategoryProgrammingLanguages},
		{Name: "go", Category: types.CategoryOther},
	})

	assert.Equal(t, 1, snapshot.Len())
	rec, ok := snapshot.LookupByNormalizedName("go")
	require.True(t, ok)
	assert.Equal(t, types.CategoryProgrammingLanguages, rec.Category)
}

func TestSnapshot_RelatedNames(t *testing.T) {
	snapshot := NewSnapshot([]types.SkillRecord{
		{Name: "TypeScript", Category: types.CategoryProgrammingLanguages, Related: []string{"Node.js", "JavaScript"}},
	})

	assert.Equal(t, []string{"javascript", "node.js"}, snapshot.RelatedNames("typescript"))
	assert.Nil(t, snapshot.RelatedNames("unknown"))
}

func TestSeed_CoreSkillsPresent(t *testing.T) {
	snapshot := Seed()

	for _, name := range []string{"javascript", "typescript", "react", "node.js", "docker", "aws", "clinical research", "pharmacovigilance"} {
		_, ok := snapshot.LookupByNormalizedName(name)
		assert.True(t, ok, "seed taxonomy should contain %q", name)
	}

	rec, ok := snapshot.LookupByAlias("k8s")
	require.True(t, ok)
	assert.Equal(t, "Kubernetes", rec.Name)

	rec, ok = snapshot.LookupByAlias("gmp")
	require.True(t, ok)
	assert.Equal(t, "Good Manufacturing Practice", rec.Name)
}
