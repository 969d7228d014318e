package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/dotty/internal/ui"
)

var useCmd = &cobra.Command{
	Use:     "use [id]",
	Aliases: []string{"activate", "switch"},
	Short:   "Switch the active profile",
	Long:    `Switch the active profile. Without an argument, pick one from the list.`,
	Args:    cobra.MaximumNArgs(1),
	Example: `  dotty profile use            # Pick from a list
  dotty profile use nord-theme # By ID`,
	RunE: runUse,
}

func init() {
	profileCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return withApp(func(a *app) error {
			changed, err := a.manager.Use(a.cfg, args[0])
			if err != nil {
				return fmt.Errorf("%w\nRun: dotty profile list", err)
			}
			reportActivated(a.cfg.ActiveProfile, changed)
			return nil
		})
	}

	return interactive(runActivate)
}

// runActivate is the list-and-select workflow shared with 'config profile list'
func runActivate(a *app) error {
	changed, err := a.manager.Activate(a.cfg)
	if err != nil {
		return err
	}
	reportActivated(a.cfg.ActiveProfile, changed)
	return nil
}

func reportActivated(id string, changed bool) {
	if !changed {
		ui.Info(fmt.Sprintf("'%s' is already the active profile", id))
		return
	}
	ui.Success(fmt.Sprintf("Active profile has been changed to: %s", id))
}
