package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byterings/dotty/internal/filesystem"
)

// fakeLoader wraps the TOML codec around a fixed base path
type fakeLoader struct {
	*TOMLLoader
	basePath  string
	baseErr   error
	decodeErr error
	decoded   []string
}

func newFakeLoader(basePath string) *fakeLoader {
	return &fakeLoader{TOMLLoader: NewTOMLLoader(), basePath: basePath}
}

func (f *fakeLoader) BasePath() (string, error) {
	return f.basePath, f.baseErr
}

func (f *fakeLoader) Unmarshal(content string) (*Config, error) {
	f.decoded = append(f.decoded, content)
	if f.decodeErr != nil {
		return nil, f.decodeErr
	}
	return f.TOMLLoader.Unmarshal(content)
}

func TestStore_LoadOrDefaultCreatesFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	store := NewStore(fsys, newFakeLoader("/test"), nil)

	cfg, err := store.LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, NewConfig("/test"), cfg)

	path := filepath.Join("/test", "config.toml")
	assert.Equal(t, []string{path}, fsys.Writes())
	assert.True(t, fsys.Exists(path))
}

func TestStore_LoadOrDefaultIsIdempotent(t *testing.T) {
	fsys := filesystem.NewMemory()
	store := NewStore(fsys, newFakeLoader("/test"), nil)

	first, err := store.LoadOrDefault()
	require.NoError(t, err)
	path := filepath.Join("/test", "config.toml")
	before, err := fsys.ReadFile(path)
	require.NoError(t, err)

	second, err := store.LoadOrDefault()
	require.NoError(t, err)
	after, err := fsys.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, after)
	assert.Len(t, fsys.Writes(), 1, "an existing config must not be rewritten")
}

func TestStore_LoadOrDefaultReadsExistingFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	loader := newFakeLoader("/test")
	fsys.Seed(filepath.Join("/test", "config.toml"), `
base_path = "/elsewhere"
log_level = "DEBUG"
active_profile = "a"

[profiles.a]
branch = "alpha"
`)

	cfg, err := NewStore(fsys, loader, nil).LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", cfg.BasePath, "stored base path is kept, not recomputed")
	assert.Equal(t, LogDebug, cfg.LogLevel)
	assert.Equal(t, Profiles{"a": {Branch: "alpha"}}, cfg.Profiles)
	assert.Empty(t, fsys.Writes())
	assert.Len(t, loader.decoded, 1)
}

func TestStore_LoadOrDefaultFillsMissingBasePath(t *testing.T) {
	fsys := filesystem.NewMemory()
	fsys.Seed(filepath.Join("/test", "config.toml"), `log_level = "warn"`)

	cfg, err := NewStore(fsys, newFakeLoader("/test"), nil).LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, "/test", cfg.BasePath)
}

func TestStore_LoadOrDefaultErrors(t *testing.T) {
	path := filepath.Join("/test", "config.toml")

	t.Run("base path", func(t *testing.T) {
		loader := newFakeLoader("")
		loader.baseErr = ErrStartup
		_, err := NewStore(filesystem.NewMemory(), loader, nil).LoadOrDefault()
		assert.ErrorIs(t, err, ErrStartup)
	})

	t.Run("read", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		fsys.Seed(path, "valid_config_content")
		fsys.ReadErr = os.ErrPermission

		_, err := NewStore(fsys, newFakeLoader("/test"), nil).LoadOrDefault()
		assert.ErrorIs(t, err, ErrConfigRead)
		assert.ErrorIs(t, err, os.ErrPermission)
		assert.Empty(t, fsys.Writes())
	})

	t.Run("parse", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		fsys.Seed(path, "invalid_config_content")

		_, err := NewStore(fsys, newFakeLoader("/test"), nil).LoadOrDefault()
		assert.ErrorIs(t, err, ErrConfigParse)
		assert.Empty(t, fsys.Writes(), "a broken config must never be overwritten")

		contents, err := fsys.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "invalid_config_content", contents)
	})

	t.Run("profiles not a table", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		original := "base_path = \"/test\"\nactive_profile = \"a\"\nprofiles = \"a,b\"\n"
		fsys.Seed(path, original)

		_, err := NewStore(fsys, newFakeLoader("/test"), nil).LoadOrDefault()
		assert.ErrorIs(t, err, ErrConfigParse)
		assert.Empty(t, fsys.Writes())

		contents, err := fsys.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, original, contents)
	})

	t.Run("loader rejects", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		fsys.Seed(path, "valid_config_content")
		loader := newFakeLoader("/test")
		loader.decodeErr = errors.New("Invalid config")

		_, err := NewStore(fsys, loader, nil).LoadOrDefault()
		assert.ErrorIs(t, err, ErrConfigParse)
		assert.Equal(t, []string{"valid_config_content"}, loader.decoded)
	})

	t.Run("write default", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		fsys.WriteErr = errors.New("read-only file system")

		_, err := NewStore(fsys, newFakeLoader("/test"), nil).LoadOrDefault()
		assert.ErrorIs(t, err, ErrConfigWrite)
	})
}

func TestStore_SaveWritesWholeDocument(t *testing.T) {
	fsys := filesystem.NewMemory()
	store := NewStore(fsys, newFakeLoader("/ignored"), nil)

	cfg := NewConfig("/base")
	cfg.Profiles["b"] = ProfileConfig{Branch: "b"}
	require.NoError(t, store.Save(cfg))

	contents, err := fsys.ReadFile(filepath.Join("/base", "config.toml"))
	require.NoError(t, err)

	got, err := NewTOMLLoader().Unmarshal(contents)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestStore_SaveInvalidDocument(t *testing.T) {
	fsys := filesystem.NewMemory()
	cfg := NewConfig("/base")
	cfg.LogLevel = "loud"

	err := NewStore(fsys, newFakeLoader("/base"), nil).Save(cfg)
	assert.ErrorIs(t, err, ErrConfigWrite)
	assert.Empty(t, fsys.Writes())
}

func TestStore_OnDisk(t *testing.T) {
	base := filepath.Join(t.TempDir(), ".config", "dotty")
	store := NewStore(filesystem.NewOS(), newFakeLoader(base), nil)

	cfg, err := store.LoadOrDefault()
	require.NoError(t, err)

	path := ConfigPath(base)
	info, err := os.Stat(path)
	require.NoError(t, err)
	modTime := info.ModTime()

	time.Sleep(10 * time.Millisecond)
	again, err := store.LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)

	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, modTime, info.ModTime())
}
