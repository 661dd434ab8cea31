package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	paths := WriteFiles(t, []string{"b.json", "nested/a.json", "empty.json"}, map[string]string{
		"b.json":        `{"b": 1}`,
		"nested/a.json": `[]`,
	})

	require.Len(t, paths, 3)
	assert.Equal(t, "b.json", filepath.Base(paths[0]), "paths follow the order of names")
	assert.Equal(t, filepath.Dir(paths[0]), filepath.Dir(filepath.Dir(paths[1])))

	content, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "[]", string(content))

	content, err = os.ReadFile(paths[2])
	require.NoError(t, err)
	assert.Empty(t, content, "a name without content is written empty")
}

func TestWriteFiles_NoNames(t *testing.T) {
	assert.Empty(t, WriteFiles(t, nil, nil))
}
