package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/byterings/dotty/internal/ui"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete [id...]",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete one or more profiles",
	Long: `Remove profiles from the dotty configuration. Without arguments, pick
them from a list. The profile branches in git are left untouched.`,
	Example: `  dotty profile delete
  dotty profile delete nord-theme work`,
	RunE: runDelete,
}

func init() {
	profileCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return interactive(func(a *app) error {
			removed, err := a.manager.Delete(a.cfg)
			if err != nil {
				return err
			}
			reportDeleted(removed, a.cfg.ActiveProfile)
			return nil
		})
	}

	run := withApp
	if !deleteForce {
		run = interactive
	}
	return run(func(a *app) error {
		if !deleteForce {
			confirmed, err := newPrompter().Confirm(fmt.Sprintf("Delete profile(s) %s?", strings.Join(args, ", ")), false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(ui.Out, "Cancelled")
				return nil
			}
		}

		removed, err := a.manager.Remove(a.cfg, args)
		if err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		reportDeleted(removed, a.cfg.ActiveProfile)
		return nil
	})
}

func reportDeleted(removed []string, active string) {
	ui.Success(fmt.Sprintf("%d profile(s) have been deleted", len(removed)))
	for _, id := range removed {
		if id == active {
			ui.Warning(fmt.Sprintf("'%s' was the active profile. Pick another with: dotty profile use", id))
		}
	}
}
