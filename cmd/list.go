package cmd

import (
	"github.com/spf13/cobra"

	"github.com/byterings/dotty/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"profiles"},
	Short:   "Create, switch, update and delete profiles",
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all profiles",
	Long:    `Display all profiles with their branch and highlight the active one.`,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		ui.PrintProfilesList(a.cfg)
		return nil
	})
}
