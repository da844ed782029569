package playlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tinywave/internal/player"
)

func touch(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
}

func TestFromPaths_Directory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.mp3"), 10)
	touch(t, filepath.Join(dir, "a.flac"), 20)
	touch(t, filepath.Join(dir, "cover.jpg"), 5)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	touch(t, filepath.Join(dir, "sub", "c.mp3"), 5)

	tracks, err := FromPaths([]string{dir})

	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, filepath.Join(dir, "a.flac"), tracks[0].Link)
	assert.Equal(t, "a", tracks[0].Name)
	assert.Equal(t, int64(20), tracks[0].Size)
	assert.Equal(t, filepath.Join(dir, "b.mp3"), tracks[1].Link)
}

func TestFromPaths_KeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	z := filepath.Join(dir, "z.mp3")
	a := filepath.Join(dir, "a.mp3")
	touch(t, z, 1)
	touch(t, a, 1)

	tracks, err := FromPaths([]string{z, a})

	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, z, tracks[0].Link)
	assert.Equal(t, a, tracks[1].Link)
}

func TestFromPaths_Errors(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.txt")
	touch(t, notes, 1)

	t.Run("missing path", func(t *testing.T) {
		_, err := FromPaths([]string{filepath.Join(dir, "missing.mp3")})
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported file", func(t *testing.T) {
		_, err := FromPaths([]string{notes})
		require.ErrorIs(t, err, player.ErrUnsupportedFormat)
	})
}

func TestFromPaths_EmptyDirectory(t *testing.T) {
	tracks, err := FromPaths([]string{t.TempDir()})

	require.NoError(t, err)
	assert.Empty(t, tracks)
}
