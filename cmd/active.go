package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/dotty/internal/ui"
)

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active profile",
	Args:  cobra.NoArgs,
	RunE:  runActive,
}

func init() {
	profileCmd.AddCommand(activeCmd)
}

func runActive(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		if a.cfg.ActiveProfile == "" {
			fmt.Fprintln(ui.Out, "No active profile set")
			fmt.Fprintln(ui.Out, "\nSet one with: dotty profile use <id>")
			return nil
		}

		profile, ok := a.cfg.ActiveProfileConfig()
		if !ok {
			ui.Warning(fmt.Sprintf("Active profile '%s' no longer exists", a.cfg.ActiveProfile))
			fmt.Fprintln(ui.Out, "\nPick another with: dotty profile use")
			return nil
		}

		fmt.Fprintf(ui.Out, "Active profile: %s\n", a.cfg.ActiveProfile)
		fmt.Fprintf(ui.Out, "  Branch: %s\n", profile.Branch)
		return nil
	})
}
