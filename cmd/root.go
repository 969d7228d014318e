package cmd

import (
	"github.com/spf13/cobra"
)

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:   "dotty",
	Short: "Manage dotfile profiles backed by git branches",
	Long: `dotty keeps named profiles of your settings. Each profile is stored on
its own git branch and one profile is active at a time.

Configuration lives in ~/.config/dotty/config.toml (or ./.config/dotty when
DOTTY_ENV=development).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Override the configured log level for this run (off, error, warn, info, debug)")
}

// Execute runs the command selected by os.Args
func Execute() error {
	return rootCmd.Execute()
}
