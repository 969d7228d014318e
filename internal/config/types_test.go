package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("/home/me/.config/dotty")

	assert.Equal(t, "/home/me/.config/dotty", cfg.BasePath)
	assert.Equal(t, LogWarn, cfg.LogLevel)
	assert.Empty(t, cfg.ActiveProfile)
	assert.NotNil(t, cfg.Profiles)
	assert.Empty(t, cfg.Profiles)
}

func TestNewProfileConfig(t *testing.T) {
	assert.Equal(t, ProfileConfig{Branch: "main"}, NewProfileConfig())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{input: "off", want: LogOff},
		{input: "ERROR", want: LogError},
		{input: "Warn", want: LogWarn},
		{input: " info ", want: LogInfo},
		{input: "debug", want: LogDebug},
		{input: "trace", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogLevel_TextRoundTrip(t *testing.T) {
	for _, level := range LogLevels() {
		text, err := level.MarshalText()
		require.NoError(t, err)

		var got LogLevel
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, level, got)
	}

	_, err := LogLevel("loud").MarshalText()
	assert.Error(t, err)
}

func TestConfig_ProfileIDsSorted(t *testing.T) {
	cfg := NewConfig("/base")
	cfg.Profiles = Profiles{
		"work":       {Branch: "work"},
		"nord-theme": {Branch: "nord"},
		"a":          {Branch: "a"},
	}

	assert.Equal(t, []ProfileID{"a", "nord-theme", "work"}, cfg.ProfileIDs())
	assert.Empty(t, NewConfig("/base").ProfileIDs())
}

func TestConfig_Branches(t *testing.T) {
	cfg := NewConfig("/base")
	cfg.Profiles = Profiles{
		"a": {Branch: "old"},
		"b": {Branch: "new"},
		"c": {Branch: "main"},
	}

	assert.Equal(t, []string{"old", "new", "main"}, cfg.Branches())
	assert.Equal(t, []string{"new", "main"}, cfg.Branches("a"))
	assert.Equal(t, []string{"main"}, cfg.Branches("a", "b"))
	assert.Empty(t, NewConfig("/base").Branches())
}

func TestConfig_Clone(t *testing.T) {
	cfg := NewConfig("/base")
	cfg.Profiles["a"] = ProfileConfig{Branch: "a"}
	cfg.ActiveProfile = "a"

	clone := cfg.Clone()
	clone.Profiles["b"] = ProfileConfig{Branch: "b"}
	clone.ActiveProfile = "b"

	assert.Equal(t, Profiles{"a": {Branch: "a"}}, cfg.Profiles)
	assert.Equal(t, "a", cfg.ActiveProfile)
	assert.Len(t, clone.Profiles, 2)

	empty := (&Config{}).Clone()
	assert.NotNil(t, empty.Profiles)
}

func TestConfig_ActiveProfileConfig(t *testing.T) {
	cfg := NewConfig("/base")
	_, ok := cfg.ActiveProfileConfig()
	assert.False(t, ok)

	cfg.Profiles["a"] = ProfileConfig{Branch: "alpha"}
	cfg.ActiveProfile = "a"
	profile, ok := cfg.ActiveProfileConfig()
	assert.True(t, ok)
	assert.Equal(t, "alpha", profile.Branch)

	cfg.ActiveProfile = "gone"
	_, ok = cfg.ActiveProfileConfig()
	assert.False(t, ok)
	assert.True(t, cfg.HasProfile("a"))
	assert.False(t, cfg.HasProfile("gone"))
}
