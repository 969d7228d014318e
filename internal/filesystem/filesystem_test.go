package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_Exists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_file.txt")
	fsys := NewOS()

	assert.False(t, fsys.Exists(path))
	require.NoError(t, os.WriteFile(path, []byte("test content"), 0o600))
	assert.True(t, fsys.Exists(path))
}

func TestOS_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_file.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello, world!"), 0o600))

	got, err := NewOS().ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", got)

	_, err = NewOS().ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOS_WriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")
	fsys := NewOS()

	require.NoError(t, fsys.WriteFile(path, "first"))
	require.NoError(t, fsys.WriteFile(path, "second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestOS_WriteFileTruncatesAndReportsErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	fsys := NewOS()

	require.NoError(t, fsys.WriteFile(path, "a much longer first document"))
	require.NoError(t, fsys.WriteFile(path, "short"))

	got, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", got)

	assert.Error(t, fsys.WriteFile(dir, "contents"), "writing over a directory must fail")
}

func TestMemory_RecordsWrites(t *testing.T) {
	m := NewMemory()
	m.Seed("/seeded", "x")

	assert.True(t, m.Exists("/seeded"))
	assert.Empty(t, m.Writes())

	require.NoError(t, m.WriteFile("/a", "1"))
	got, err := m.ReadFile("/a")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Equal(t, []string{"/a"}, m.Writes())

	_, err = m.ReadFile("/missing")
	assert.ErrorIs(t, err, os.ErrNotExist)

	m.WriteErr = errors.New("disk full")
	assert.EqualError(t, m.WriteFile("/b", "2"), "disk full")
	assert.False(t, m.Exists("/b"))
}
