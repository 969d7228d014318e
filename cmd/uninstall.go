package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/byterings/dotty/internal/config"
	"github.com/byterings/dotty/internal/ui"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove dotty configuration and logs",
	Long: `Remove the dotty configuration directory, including config.toml
and the activity log.

Profiles are not recoverable once removed.`,
	Example: `  # Uninstall dotty
  dotty uninstall

  # After running this command, manually delete the binary:
  # Linux/macOS: sudo rm /usr/local/bin/dotty`,
	Args: cobra.NoArgs,
	RunE: runUninstall,
}

var uninstallForce bool

func init() {
	rootCmd.AddCommand(uninstallCmd)
	uninstallCmd.Flags().BoolVar(&uninstallForce, "force", false, "Skip confirmation prompt")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	configDir, err := config.NewTOMLLoader().Dir()
	if err != nil {
		return err
	}

	fmt.Fprintln(ui.Out, "dotty Uninstall")
	fmt.Fprintln(ui.Out, "===============")
	fmt.Fprintln(ui.Out)

	if !uninstallForce {
		if err := requireTerminal(); err != nil {
			return err
		}
		fmt.Fprintf(ui.Out, "This will remove %s\n\n", configDir)

		confirmed, err := newPrompter().Confirm("Continue?", false)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(ui.Out, "Operation cancelled.")
			return nil
		}
		fmt.Fprintln(ui.Out)
	}

	if err := os.RemoveAll(configDir); err != nil {
		return fmt.Errorf("failed to remove config: %w", err)
	}
	ui.Success(fmt.Sprintf("Removed %s", configDir))

	fmt.Fprintln(ui.Out)
	fmt.Fprintln(ui.Out, "Final step - manually remove the dotty binary:")
	if runtime.GOOS == "windows" {
		fmt.Fprintln(ui.Out, "  Remove-Item \"$env:LOCALAPPDATA\\dotty\" -Recurse -Force")
	} else {
		fmt.Fprintln(ui.Out, "  sudo rm /usr/local/bin/dotty")
	}
	fmt.Fprintln(ui.Out)

	return nil
}
