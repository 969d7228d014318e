package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/dotty/internal/ui"
)

var (
	createFlagID       string
	createFlagBranch   string
	createFlagActivate bool
)

var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"add", "new"},
	Short:   "Create a new profile",
	Long:    `Create a new profile bound to its own git branch.`,
	Example: `  # Interactive mode
  dotty profile create

  # Using flags
  dotty profile create --id nord-theme --branch nord --activate`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	profileCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createFlagID, "id", "", "Unique identifier for the profile (e.g., nord-theme)")
	createCmd.Flags().StringVar(&createFlagBranch, "branch", "", "Git branch storing the profile (default: main)")
	createCmd.Flags().BoolVar(&createFlagActivate, "activate", false, "Make the new profile the active one")
}

func runCreate(cmd *cobra.Command, args []string) error {
	// Flag mode
	if createFlagID != "" {
		return withApp(func(a *app) error {
			if err := a.manager.Add(a.cfg, createFlagID, createFlagBranch, createFlagActivate); err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
			reportCreated(createFlagID, a.cfg.ActiveProfile == createFlagID)
			return nil
		})
	}

	return interactive(func(a *app) error {
		fmt.Fprintln(ui.Out, "Creating a new profile")
		fmt.Fprintln(ui.Out)
		ui.Info("Each profile is stored on a separate git branch, like a separate folder for each set of settings.")

		id, err := a.manager.Create(a.cfg)
		if err != nil {
			return err
		}
		reportCreated(id, a.cfg.ActiveProfile == id)
		return nil
	})
}

func reportCreated(id string, active bool) {
	fmt.Fprintln(ui.Out)
	ui.Success(fmt.Sprintf("Profile '%s' created", id))
	if !active {
		fmt.Fprintf(ui.Out, "\nNext: dotty profile use %s\n", id)
	}
}
