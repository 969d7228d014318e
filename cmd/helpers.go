package cmd

import (
	"go.uber.org/zap"

	"github.com/byterings/dotty/internal/config"
	"github.com/byterings/dotty/internal/filesystem"
	"github.com/byterings/dotty/internal/git"
	"github.com/byterings/dotty/internal/logging"
	"github.com/byterings/dotty/internal/profile"
	"github.com/byterings/dotty/internal/ui"
)

// app is everything one command run needs: the loaded document and the
// collaborators that mutate and persist it
type app struct {
	cfg      *config.Config
	store    *config.Store
	manager  *profile.Manager
	log      *zap.Logger
	closeLog func()
}

// newPrompter builds the prompter used by interactive commands. Tests replace it.
var newPrompter = func() ui.Prompter {
	return ui.NewSurveyPrompter()
}

// requireTerminal guards interactive commands. Tests replace it.
var requireTerminal = ui.RequireTerminal

// loadApp loads or initializes the config and wires the profile manager.
// The config file is created on first use.
func loadApp() (*app, error) {
	loader := config.NewTOMLLoader()
	store := config.NewStore(filesystem.NewOS(), loader, nil)

	cfg, err := store.LoadOrDefault()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if flagLogLevel != "" {
		if level, err = config.ParseLogLevel(flagLogLevel); err != nil {
			return nil, err
		}
	}

	log, closeLog, err := logging.New(logging.Options{
		Path:        config.LogPath(cfg.BasePath),
		Level:       level,
		Development: loader.Development(),
	})
	if err != nil {
		return nil, err
	}
	if loader.Development() {
		ui.DevelopmentBanner()
	}

	store = store.WithLogger(log)
	return &app{
		cfg:      cfg,
		store:    store,
		manager:  profile.NewManager(newPrompter(), git.NewClient(), store, log),
		log:      log,
		closeLog: closeLog,
	}, nil
}

// withApp runs fn with a loaded app and closes the log afterwards
func withApp(fn func(a *app) error) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.closeLog()
	return fn(a)
}

// interactive is withApp for commands that prompt
func interactive(fn func(a *app) error) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	return withApp(fn)
}
