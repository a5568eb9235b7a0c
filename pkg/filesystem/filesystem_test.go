package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckgen/deckgen/pkg/types"
)

func TestImplementations(t *testing.T) {
	tests := []struct {
		name string
		fs   func(t *testing.T) (types.FS, string)
	}{
		{
			name: "os",
			fs: func(t *testing.T) (types.FS, string) {
				return NewOS(), t.TempDir()
			},
		},
		{
			name: "afero memory",
			fs: func(t *testing.T) (types.FS, string) {
				return NewAferoFS(afero.NewMemMapFs()), "/base"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys, base := tt.fs(t)
			dir := filepath.Join(base, "a", "b")
			path := filepath.Join(dir, "file.txt")

			require.NoError(t, fsys.MkdirAll(dir, 0755))
			// MkdirAll is idempotent.
			require.NoError(t, fsys.MkdirAll(dir, 0755))

			require.NoError(t, fsys.WriteFile(path, []byte("content"), 0644))

			data, err := fsys.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, []byte("content"), data)

			info, err := fsys.Stat(path)
			require.NoError(t, err)
			assert.False(t, info.IsDir())

			_, err = fsys.ReadFile(filepath.Join(base, "missing"))
			assert.Error(t, err)
		})
	}
}

func TestAferoReadFileOnDir(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/dir", 0755))

	_, err := fsys.ReadFile("/dir")
	assert.Error(t, err)
}
