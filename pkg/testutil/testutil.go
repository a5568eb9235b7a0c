package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/deckgen/deckgen/pkg/filesystem"
	"github.com/deckgen/deckgen/pkg/types"
)

// NewMemoryFS returns an in-memory filesystem for tests.
func NewMemoryFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFile writes a file through the FS, failing the test on error.
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// WriteFileBytes writes raw bytes through the FS, failing the test on error.
func WriteFileBytes(t *testing.T, fsys types.FS, path string, content []byte) {
	t.Helper()
	require.NoError(t, fsys.WriteFile(path, content, 0644))
}

// ReadFile reads a file through the FS, failing the test on error.
func ReadFile(t *testing.T, fsys types.FS, path string) []byte {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return data
}
