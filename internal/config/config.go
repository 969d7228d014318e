package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/byterings/dotty/internal/platform"
)

const (
	ConfigFileName = "config.toml"
	LogFileName    = "dotty.log"

	// EnvMode set to "development" keeps all dotty files inside the working directory
	EnvMode         = "DOTTY_ENV"
	DevelopmentMode = "development"
)

// Loader resolves where dotty keeps its files and converts the document to and from text
type Loader interface {
	BasePath() (string, error)
	Unmarshal(content string) (*Config, error)
	Marshal(cfg *Config) (string, error)
}

// TOMLLoader is the production Loader
type TOMLLoader struct {
	getwd  func() (string, error)
	home   func() (string, error)
	getenv func(string) string
	mkdir  func(string) error
}

// NewTOMLLoader returns a Loader reading the process environment
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{
		getwd:  os.Getwd,
		home:   os.UserHomeDir,
		getenv: os.Getenv,
		mkdir:  platform.MkdirSecure,
	}
}

// Development reports whether DOTTY_ENV selects the project-local directory
func (l *TOMLLoader) Development() bool {
	return strings.EqualFold(strings.TrimSpace(l.getenv(EnvMode)), DevelopmentMode)
}

// Dir returns <cwd>/.config/dotty in development mode and
// <home>/.config/dotty otherwise. Nothing is created.
func (l *TOMLLoader) Dir() (string, error) {
	root, err := l.home()
	if l.Development() {
		root, err = l.getwd()
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStartup, err)
	}
	if root == "" {
		return "", fmt.Errorf("%w: empty root directory", ErrStartup)
	}
	return filepath.Join(root, platform.GetConfigDirName()), nil
}

// BasePath returns Dir, creating the directory if needed
func (l *TOMLLoader) BasePath() (string, error) {
	path, err := l.Dir()
	if err != nil {
		return "", err
	}
	if err := l.mkdir(path); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrStartup, path, err)
	}
	return path, nil
}

// Unmarshal decodes a TOML document. Missing settings take their defaults;
// a missing base_path is left empty for the caller to fill in.
func (l *TOMLLoader) Unmarshal(content string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := checkProfileTables(md); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = LogWarn
	}
	if cfg.Profiles == nil {
		cfg.Profiles = Profiles{}
	}
	return &cfg, nil
}

// checkProfileTables rejects a profiles key, or a profile entry, that is not a
// table. The decoder skips such values without an error.
func checkProfileTables(md toml.MetaData) error {
	if md.IsDefined("profiles") && md.Type("profiles") != "Hash" {
		return fmt.Errorf("profiles: expected a table, found %s", md.Type("profiles"))
	}
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "profiles" {
			continue
		}
		if typ := md.Type(key...); typ != "Hash" {
			return fmt.Errorf("profiles.%s: expected a table, found %s", key[1], typ)
		}
	}
	return nil
}

// Marshal encodes the whole document as TOML
func (l *TOMLLoader) Marshal(cfg *Config) (string, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.String(), nil
}

// ConfigPath returns the config file inside basePath
func ConfigPath(basePath string) string {
	return filepath.Join(basePath, ConfigFileName)
}

// LogPath returns the log file inside basePath
func LogPath(basePath string) string {
	return filepath.Join(basePath, LogFileName)
}
