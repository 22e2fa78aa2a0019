package csv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goherit/domain/core"
	"goherit/internal/testkit"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSourceLoadsTrio(t *testing.T) {
	kit := testkit.NewTestKit()
	path := filepath.Join(t.TempDir(), "family.csv")
	require.NoError(t, kit.WriteCSVFile(path, kit.Trio()))

	src := NewSource(path)
	reg, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Harry", "James", "Lily"}, reg.Names())
	assert.Equal(t, 2, reg.Founders())
	assert.Equal(t, 2, reg.Observations())

	james, err := reg.ByName("James")
	require.NoError(t, err)
	assert.True(t, james.Trait.Present())
}

func TestSourceTrimsCellsAndPadding(t *testing.T) {
	path := writeFile(t, "family.csv", "name, mother ,father,trait\n"+
		"Harry , Lily, James,\n"+
		"James\n"+
		"Lily,,,0\n")

	reg, err := NewSource(path).Load(context.Background())
	require.NoError(t, err)

	harry, err := reg.ByName("Harry")
	require.NoError(t, err)
	assert.Equal(t, "Lily", harry.Mother)
	assert.Equal(t, "James", harry.Father)

	james, err := reg.ByName("James")
	require.NoError(t, err)
	assert.True(t, james.IsFounder())
	assert.False(t, james.Trait.Observed())
}

func TestSourceMissingFile(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "absent.csv"))
	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open csv file")
}

func TestSourceRejectsBadHeader(t *testing.T) {
	path := writeFile(t, "family.csv", "person,mom,dad,trait\nHarry,,,1\n")
	_, err := NewSource(path).Load(context.Background())
	assert.ErrorIs(t, err, core.ErrMalformedHeader)
	assert.Contains(t, err.Error(), path)
}

func TestSourceRejectsMalformedTrait(t *testing.T) {
	path := writeFile(t, "family.csv", "name,mother,father,trait\nHarry,,,yes\n")
	_, err := NewSource(path).Load(context.Background())
	assert.ErrorIs(t, err, core.ErrMalformedTrait)
}

func TestSourceRejectsInvalidPedigree(t *testing.T) {
	path := writeFile(t, "family.csv", "name,mother,father,trait\nHarry,Lily,,\nLily,,,0\n")
	_, err := NewSource(path).Load(context.Background())
	assert.ErrorIs(t, err, core.ErrSingleParent)
}

func TestSourceDescribe(t *testing.T) {
	assert.Equal(t, "csv:data/family.csv", NewSource("data/family.csv").Describe())
}
