package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/dotty/internal/ui"
)

var updateBranch string

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Change the branch of a profile",
	Long:  `Rebind an existing profile to another git branch.`,
	Args:  cobra.MaximumNArgs(1),
	Example: `  dotty profile update
  dotty profile update nord-theme --branch nord-v2`,
	RunE: runUpdate,
}

func init() {
	profileCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateBranch, "branch", "", "New git branch for the profile")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && updateBranch != "" {
		return withApp(func(a *app) error {
			if err := a.manager.SetBranch(a.cfg, args[0], updateBranch); err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}
			ui.Success(fmt.Sprintf("Profile '%s' now uses branch '%s'", args[0], updateBranch))
			return nil
		})
	}
	if len(args) == 1 || updateBranch != "" {
		return fmt.Errorf("use both a profile ID and --branch, or neither for interactive mode")
	}

	return interactive(runUpdateWizard)
}

func runUpdateWizard(a *app) error {
	id, err := a.manager.Update(a.cfg)
	if err != nil {
		return err
	}
	ui.Success(fmt.Sprintf("Profile '%s' has been updated", id))
	return nil
}
