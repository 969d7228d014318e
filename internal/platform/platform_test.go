package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndFixFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	ok, err := CheckFilePermissions(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, FixFilePermissions(path))
	ok, err = CheckFilePermissions(path)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckFilePermissions_Missing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}

	_, err := CheckFilePermissions(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMkdirSecure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".config", "dotty")
	require.NoError(t, MkdirSecure(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
	}
}
