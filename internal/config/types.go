package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultBranch is bound to a profile created without explicit input
const DefaultBranch = "main"

// ProfileID names a profile. It is the key of the profiles table.
type ProfileID = string

// ProfileConfig binds a profile to the git branch holding its content
type ProfileConfig struct {
	Branch string `toml:"branch"`
}

// NewProfileConfig returns a profile bound to DefaultBranch
func NewProfileConfig() ProfileConfig {
	return ProfileConfig{Branch: DefaultBranch}
}

// Profiles maps profile IDs to their settings
type Profiles map[ProfileID]ProfileConfig

// LogLevel filters what is written to dotty.log
type LogLevel string

const (
	LogOff   LogLevel = "off"
	LogError LogLevel = "error"
	LogWarn  LogLevel = "warn"
	LogInfo  LogLevel = "info"
	LogDebug LogLevel = "debug"
)

// LogLevels lists every level from quietest to most verbose
func LogLevels() []LogLevel {
	return []LogLevel{LogOff, LogError, LogWarn, LogInfo, LogDebug}
}

// ParseLogLevel accepts a level name in any case
func ParseLogLevel(s string) (LogLevel, error) {
	level := LogLevel(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(LogLevels(), level) {
		return "", fmt.Errorf("unknown log level '%s' (expected off, error, warn, info or debug)", s)
	}
	return level, nil
}

func (l LogLevel) String() string {
	return string(l)
}

// MarshalText writes the level in upper case, as dotty has always stored it
func (l LogLevel) MarshalText() ([]byte, error) {
	if _, err := ParseLogLevel(string(l)); err != nil {
		return nil, err
	}
	return []byte(strings.ToUpper(string(l))), nil
}

// UnmarshalText parses a level name in any case
func (l *LogLevel) UnmarshalText(text []byte) error {
	level, err := ParseLogLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// Config is the document stored in <base_path>/config.toml
type Config struct {
	BasePath      string    `toml:"base_path"`
	LogLevel      LogLevel  `toml:"log_level"`
	ActiveProfile ProfileID `toml:"active_profile"` // empty means no active profile
	Profiles      Profiles  `toml:"profiles"`
}

// NewConfig creates the default document rooted at basePath
func NewConfig(basePath string) *Config {
	return &Config{
		BasePath:      basePath,
		LogLevel:      LogWarn,
		ActiveProfile: "",
		Profiles:      Profiles{},
	}
}

// Clone returns a deep copy of the document
func (c *Config) Clone() *Config {
	clone := *c
	clone.Profiles = maps.Clone(c.Profiles)
	if clone.Profiles == nil {
		clone.Profiles = Profiles{}
	}
	return &clone
}

// ProfileIDs returns every profile ID in sorted order
func (c *Config) ProfileIDs() []ProfileID {
	return slices.Sorted(maps.Keys(c.Profiles))
}

// HasProfile reports whether id is a configured profile
func (c *Config) HasProfile(id ProfileID) bool {
	_, ok := c.Profiles[id]
	return ok
}

// Branches returns the branches of all profiles except the excluded ones,
// ordered by profile ID
func (c *Config) Branches(exclude ...ProfileID) []string {
	branches := make([]string, 0, len(c.Profiles))
	for _, id := range c.ProfileIDs() {
		if slices.Contains(exclude, id) {
			continue
		}
		branches = append(branches, c.Profiles[id].Branch)
	}
	return branches
}

// ActiveProfileConfig returns the active profile, or false when none is set
// or the active ID no longer names a profile
func (c *Config) ActiveProfileConfig() (ProfileConfig, bool) {
	if c.ActiveProfile == "" {
		return ProfileConfig{}, false
	}
	profile, ok := c.Profiles[c.ActiveProfile]
	return profile, ok
}
