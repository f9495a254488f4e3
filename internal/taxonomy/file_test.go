package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTaxonomyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Valid(t *testing.T) {
	path := writeTaxonomyFile(t, `[
		{"name": "JavaScript", "category": "Programming Languages", "aliases": ["js"], "related": ["typescript"]},
		{"name": "TypeScript", "category": "Programming Languages"}
	]`)

	snapshot, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Len())

	rec, ok := snapshot.LookupByAlias("js")
	require.True(t, ok)
	assert.Equal(t, "JavaScript", rec.Name)
}

func TestLoadFile_MissingRequiredField(t *testing.T) {
	path := writeTaxonomyFile(t, `[{"aliases": ["js"], "category": "Programming Languages"}]`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestLoadFile_UnknownField(t *testing.T) {
	path := writeTaxonomyFile(t, `[{"name": "Go", "category": "Programming Languages", "rank": 1}]`)

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFile_NotJSON(t *testing.T) {
	path := writeTaxonomyFile(t, `name: Go`)

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
