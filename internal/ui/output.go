package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/byterings/dotty/internal/config"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow)
)

// Out is where the helpers below print. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

// PrintProfilesList prints the profiles in ID order, marking the active one
func PrintProfilesList(cfg *config.Config) {
	ids := cfg.ProfileIDs()
	if len(ids) == 0 {
		fmt.Fprintln(Out, "No profiles configured yet.")
		fmt.Fprintln(Out, "\nCreate your first profile with: dotty profile create")
		return
	}

	fmt.Fprintln(Out, "\nProfiles:")
	fmt.Fprintln(Out)

	for _, id := range ids {
		indicator := " "
		if id == cfg.ActiveProfile {
			indicator = "→"
		}
		fmt.Fprintf(Out, "%s %-24s %s\n", indicator, id, cfg.Profiles[id].Branch)
	}

	fmt.Fprintln(Out)
	if cfg.ActiveProfile == "" {
		fmt.Fprintln(Out, "No active profile set. Use 'dotty profile use <id>' to set one.")
	} else if !cfg.HasProfile(cfg.ActiveProfile) {
		Warning(fmt.Sprintf("Active profile '%s' no longer exists", cfg.ActiveProfile))
	}
}

// ProfileOptions turns profile IDs into select options showing their branch
func ProfileOptions(cfg *config.Config) []Option {
	ids := cfg.ProfileIDs()
	options := make([]Option, 0, len(ids))
	for _, id := range ids {
		options = append(options, Option{
			Key:         id,
			Label:       id,
			Description: "branch " + cfg.Profiles[id].Branch,
		})
	}
	return options
}

// Success prints a success message with checkmark
func Success(message string) {
	successColor.Fprintf(Out, "✓ %s\n", message)
}

// Error prints an error message
func Error(message string) {
	errorColor.Fprintf(Out, "✗ %s\n", message)
}

// Info prints an info message
func Info(message string) {
	infoColor.Fprintf(Out, "ℹ %s\n", message)
}

// Warning prints a warning message
func Warning(message string) {
	warningColor.Fprintf(Out, "⚠ %s\n", message)
}

// DevelopmentBanner announces that files are kept in the working directory
func DevelopmentBanner() {
	errorColor.Fprintln(Out, "dotty is running in development mode.")
}
