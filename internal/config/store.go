package config

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/byterings/dotty/internal/filesystem"
)

// Store loads and saves the configuration document through a FileSystem
type Store struct {
	fs     filesystem.FileSystem
	loader Loader
	log    *zap.Logger
}

// NewStore creates a Store. A nil logger discards log output.
func NewStore(fs filesystem.FileSystem, loader Loader, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{fs: fs, loader: loader, log: log}
}

// WithLogger returns a copy of the store logging to log
func (s *Store) WithLogger(log *zap.Logger) *Store {
	clone := *s
	if log != nil {
		clone.log = log
	}
	return &clone
}

// LoadOrDefault reads the existing document, or creates, saves and returns
// a default one when there is no config file yet. An existing file that
// cannot be read or parsed is never replaced.
func (s *Store) LoadOrDefault() (*Config, error) {
	basePath, err := s.loader.BasePath()
	if err != nil {
		return nil, err
	}
	path := ConfigPath(basePath)

	if !s.fs.Exists(path) {
		cfg := NewConfig(basePath)
		if err := s.Save(cfg); err != nil {
			return nil, err
		}
		s.log.Info("created default config", zap.String("path", path))
		return cfg, nil
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		s.log.Error("error reading config", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w at %s: %w", ErrConfigRead, path, err)
	}

	cfg, err := s.loader.Unmarshal(content)
	if err != nil {
		s.log.Error("error parsing config", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w at %s: %w", ErrConfigParse, path, err)
	}
	if cfg.BasePath == "" {
		cfg.BasePath = basePath
	}

	s.log.Debug("loaded config",
		zap.String("path", path),
		zap.Int("profiles", len(cfg.Profiles)),
		zap.String("active_profile", cfg.ActiveProfile),
	)
	return cfg, nil
}

// Save overwrites <base_path>/config.toml with the whole document
func (s *Store) Save(cfg *Config) error {
	path := ConfigPath(cfg.BasePath)

	contents, err := s.loader.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigWrite, err)
	}
	if err := s.fs.WriteFile(path, contents); err != nil {
		s.log.Error("error writing config", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w at %s: %w", ErrConfigWrite, path, err)
	}

	s.log.Debug("saved config", zap.String("path", path))
	return nil
}
