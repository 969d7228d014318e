// Package profile implements the profile workflows: create, activate,
// delete, update and the first-run setup.
//
// Every workflow works on a copy of the document. The caller's document is
// replaced and persisted only once all prompts have been answered, so an
// interrupted workflow never writes anything.
package profile

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/byterings/dotty/internal/config"
	"github.com/byterings/dotty/internal/git"
	"github.com/byterings/dotty/internal/ui"
)

var (
	// ErrDuplicateProfile is returned for a profile ID that is already taken
	ErrDuplicateProfile = errors.New("profile with this ID already exists")
	// ErrEmptyProfileID is returned for a blank profile ID
	ErrEmptyProfileID = errors.New("profile ID cannot be empty")
	// ErrNoProfiles is returned by workflows that need at least one profile
	ErrNoProfiles = errors.New("no profiles configured")
	// ErrUnknownProfile is returned for an ID that names no profile
	ErrUnknownProfile = errors.New("profile not found")
)

// Saver persists the whole document
type Saver interface {
	Save(cfg *config.Config) error
}

// Manager runs the profile workflows
type Manager struct {
	prompt ui.Prompter
	git    git.Validator
	store  Saver
	log    *zap.Logger
}

// NewManager creates a Manager. A nil logger discards log output.
func NewManager(prompt ui.Prompter, validator git.Validator, store Saver, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{prompt: prompt, git: validator, store: store, log: log}
}

// Create asks for a new profile ID and branch, optionally activates the
// profile, and saves.
func (m *Manager) Create(cfg *config.Config) (config.ProfileID, error) {
	next := cfg.Clone()

	id, err := m.prompt.Input(
		"Assign a unique identifier for this profile (e.g. nord-theme):",
		"",
		func(input string) error { return validateNewID(next, input) },
	)
	if err != nil {
		return "", err
	}

	profile, err := m.askBranch(config.NewProfileConfig(), next.Branches())
	if err != nil {
		return "", err
	}

	activate, err := m.prompt.Confirm("Would you like to set this profile as your main choice for dotty?", false)
	if err != nil {
		return "", err
	}

	next.Profiles[id] = profile
	if activate {
		next.ActiveProfile = id
	}

	if err := m.commit(cfg, next); err != nil {
		return "", err
	}
	m.log.Info("profile created",
		zap.String("profile", id),
		zap.String("branch", profile.Branch),
		zap.Bool("activated", activate),
	)
	return id, nil
}

// Activate lets the operator pick the active profile. The document is only
// saved when the selection changed.
func (m *Manager) Activate(cfg *config.Config) (bool, error) {
	if len(cfg.Profiles) == 0 {
		return false, ErrNoProfiles
	}

	selected, err := m.prompt.Select(
		"Select a profile to activate as your default dotty profile:",
		ui.ProfileOptions(cfg),
		cfg.ActiveProfile,
	)
	if err != nil {
		return false, err
	}

	return m.activate(cfg, selected)
}

// Delete removes every profile the operator selects. The active profile is
// left as it is, even when it was deleted.
func (m *Manager) Delete(cfg *config.Config) ([]config.ProfileID, error) {
	if len(cfg.Profiles) == 0 {
		return nil, ErrNoProfiles
	}

	selected, err := m.prompt.MultiSelect("Select one or more profiles to delete:", ui.ProfileOptions(cfg), true)
	if err != nil {
		return nil, err
	}

	return m.remove(cfg, selected)
}

// Update rebinds the selected profile to a new branch, offering the current
// branch as the default.
func (m *Manager) Update(cfg *config.Config) (config.ProfileID, error) {
	if len(cfg.Profiles) == 0 {
		return "", ErrNoProfiles
	}

	id, err := m.prompt.Select("Select a profile to update:", ui.ProfileOptions(cfg), "")
	if err != nil {
		return "", err
	}

	next := cfg.Clone()
	current, ok := next.Profiles[id]
	if !ok {
		return "", fmt.Errorf("%w: '%s'", ErrUnknownProfile, id)
	}

	profile, err := m.askBranch(current, next.Branches(id))
	if err != nil {
		return "", err
	}
	next.Profiles[id] = profile

	if err := m.commit(cfg, next); err != nil {
		return "", err
	}
	m.log.Info("profile updated",
		zap.String("profile", id),
		zap.String("from", current.Branch),
		zap.String("to", profile.Branch),
	)
	return id, nil
}

// Setup runs the first-run wizard: choose the log level and, when no profile
// exists yet, offer to create one. The base path is never changed here.
func (m *Manager) Setup(cfg *config.Config) error {
	next := cfg.Clone()

	options := []ui.Option{
		{Key: string(config.LogOff), Label: "Off", Description: "Disable logging"},
		{Key: string(config.LogDebug), Label: "Debug", Description: "Show all possible details"},
		{Key: string(config.LogInfo), Label: "Info", Description: "Show general updates and information"},
		{Key: string(config.LogWarn), Label: "Warn", Description: "Show potential issues and concerns"},
		{Key: string(config.LogError), Label: "Error", Description: "Show serious problems that need attention"},
	}
	initial := next.LogLevel
	if initial == "" {
		initial = config.LogWarn
	}
	level, err := m.prompt.Select("How much detail do you want in dotty's activity reports?", options, string(initial))
	if err != nil {
		return err
	}
	next.LogLevel, err = config.ParseLogLevel(level)
	if err != nil {
		return err
	}

	if len(next.Profiles) > 0 {
		return m.commit(cfg, next)
	}

	create, err := m.prompt.Confirm("Do you want to create a profile?", true)
	if err != nil {
		return err
	}
	if !create {
		return m.commit(cfg, next)
	}

	// Create saves the document, level included
	_, err = m.Create(next)
	if err != nil {
		return err
	}
	*cfg = *next
	return nil
}

// Add creates a profile without prompting. It enforces the same rules as Create.
func (m *Manager) Add(cfg *config.Config, id config.ProfileID, branch string, activate bool) error {
	if err := validateNewID(cfg, id); err != nil {
		return err
	}
	if branch == "" {
		branch = config.DefaultBranch
	}
	if err := git.ValidateBranch(m.git, cfg.Branches(), branch); err != nil {
		return err
	}

	next := cfg.Clone()
	next.Profiles[id] = config.ProfileConfig{Branch: branch}
	if activate {
		next.ActiveProfile = id
	}

	if err := m.commit(cfg, next); err != nil {
		return err
	}
	m.log.Info("profile created", zap.String("profile", id), zap.String("branch", branch), zap.Bool("activated", activate))
	return nil
}

// SetBranch rebinds id to branch without prompting
func (m *Manager) SetBranch(cfg *config.Config, id config.ProfileID, branch string) error {
	current, ok := cfg.Profiles[id]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownProfile, id)
	}
	if err := git.ValidateBranch(m.git, cfg.Branches(id), branch); err != nil {
		return err
	}

	next := cfg.Clone()
	next.Profiles[id] = config.ProfileConfig{Branch: branch}
	if err := m.commit(cfg, next); err != nil {
		return err
	}
	m.log.Info("profile updated", zap.String("profile", id), zap.String("from", current.Branch), zap.String("to", branch))
	return nil
}

// Use activates id without prompting. It reports whether anything changed.
func (m *Manager) Use(cfg *config.Config, id config.ProfileID) (bool, error) {
	if !cfg.HasProfile(id) {
		return false, fmt.Errorf("%w: '%s'", ErrUnknownProfile, id)
	}
	return m.activate(cfg, id)
}

// Remove deletes the named profiles without prompting
func (m *Manager) Remove(cfg *config.Config, ids []config.ProfileID) ([]config.ProfileID, error) {
	for _, id := range ids {
		if !cfg.HasProfile(id) {
			return nil, fmt.Errorf("%w: '%s'", ErrUnknownProfile, id)
		}
	}
	return m.remove(cfg, ids)
}

func (m *Manager) activate(cfg *config.Config, id config.ProfileID) (bool, error) {
	if id == cfg.ActiveProfile {
		m.log.Debug("active profile unchanged", zap.String("profile", id))
		return false, nil
	}

	next := cfg.Clone()
	previous := next.ActiveProfile
	next.ActiveProfile = id
	if err := m.commit(cfg, next); err != nil {
		return false, err
	}
	m.log.Info("active profile changed", zap.String("from", previous), zap.String("to", id))
	return true, nil
}

func (m *Manager) remove(cfg *config.Config, ids []config.ProfileID) ([]config.ProfileID, error) {
	next := cfg.Clone()
	removed := make([]config.ProfileID, 0, len(ids))
	for _, id := range ids {
		if _, ok := next.Profiles[id]; !ok {
			continue
		}
		delete(next.Profiles, id)
		removed = append(removed, id)
	}
	if len(removed) == 0 {
		return removed, nil
	}

	if err := m.commit(cfg, next); err != nil {
		return nil, err
	}
	m.log.Info("profiles deleted", zap.Strings("profiles", removed))
	if next.ActiveProfile != "" && !next.HasProfile(next.ActiveProfile) {
		m.log.Warn("active profile no longer exists", zap.String("profile", next.ActiveProfile))
	}
	return removed, nil
}

// askBranch prompts for a branch until it passes both validator checks
func (m *Manager) askBranch(profile config.ProfileConfig, branches []string) (config.ProfileConfig, error) {
	branch, err := m.prompt.Input(
		"Give a unique name for this profile's storage space in git (a 'branch'):",
		profile.Branch,
		func(input string) error { return git.ValidateBranch(m.git, branches, input) },
	)
	if err != nil {
		return config.ProfileConfig{}, err
	}
	profile.Branch = branch
	return profile, nil
}

// commit saves next and, once it is on disk, makes it the caller's document
func (m *Manager) commit(cfg, next *config.Config) error {
	if err := m.store.Save(next); err != nil {
		return err
	}
	*cfg = *next
	return nil
}

func validateNewID(cfg *config.Config, id config.ProfileID) error {
	if id == "" {
		return ErrEmptyProfileID
	}
	if cfg.HasProfile(id) {
		return fmt.Errorf("%w: '%s'", ErrDuplicateProfile, id)
	}
	return nil
}
