package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/dotty/internal/config"
	"github.com/byterings/dotty/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure dotty system settings and profiles",
}

var setupCmd = &cobra.Command{
	Use:     "setup",
	Aliases: []string{"init"},
	Short:   "Set up dotty through an interactive wizard",
	Long: `Walk through the dotty settings and create a first profile.
dotty initializes itself on first use, so running this is optional.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

var configProfileCmd = &cobra.Command{
	Use:       "profile [list|create|delete|update]",
	Short:     "Set up and manage profiles through interactive wizards",
	Long:      `Run one of the profile wizards. 'list' (the default) lists all profiles and lets you select the one to activate.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"list", "create", "delete", "update"},
	RunE:      runConfigProfile,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(setupCmd)
	configCmd.AddCommand(configProfileCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return interactive(func(a *app) error {
		ui.Info("Welcome! We'll ask you a few simple questions to help dotty work best for you.")
		fmt.Fprintf(ui.Out, "Files are kept in: %s\n\n", a.cfg.BasePath)

		if err := a.manager.Setup(a.cfg); err != nil {
			return err
		}

		ui.Success(fmt.Sprintf("dotty configured at: %s", config.ConfigPath(a.cfg.BasePath)))
		return nil
	})
}

func runConfigProfile(cmd *cobra.Command, args []string) error {
	command := "list"
	if len(args) == 1 {
		command = args[0]
	}

	return interactive(func(a *app) error {
		switch command {
		case "create":
			id, err := a.manager.Create(a.cfg)
			if err != nil {
				return err
			}
			reportCreated(id, a.cfg.ActiveProfile == id)
			return nil
		case "delete":
			removed, err := a.manager.Delete(a.cfg)
			if err != nil {
				return err
			}
			reportDeleted(removed, a.cfg.ActiveProfile)
			return nil
		case "update":
			return runUpdateWizard(a)
		default:
			return runActivate(a)
		}
	})
}
