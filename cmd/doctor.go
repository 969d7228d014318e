package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/dotty/internal/config"
	"github.com/byterings/dotty/internal/filesystem"
	"github.com/byterings/dotty/internal/git"
	"github.com/byterings/dotty/internal/platform"
	"github.com/byterings/dotty/internal/profile"
	"github.com/byterings/dotty/internal/ui"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration issues",
	Long: `Check dotty configuration health and diagnose common issues.

Runs checks on:
- Config file existence, validity and permissions
- Profiles: active profile, branch names, shared branches
- Git installation

Examples:
  dotty doctor        # Run diagnostics
  dotty doctor --fix  # Auto-fix permission issues`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVarP(&doctorFix, "fix", "f", false, "Auto-fix permission issues")
}

type doctorSummary struct {
	errors   int
	warnings int
	fixed    int
}

func (s *doctorSummary) add(f profile.Finding) {
	printFinding(f)
	switch f.Severity {
	case profile.SeverityError:
		s.errors++
	case profile.SeverityWarning:
		s.warnings++
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(ui.Out)
	fmt.Fprintln(ui.Out, "Checking dotty configuration...")
	fmt.Fprintln(ui.Out)

	var summary doctorSummary

	fmt.Fprintln(ui.Out, "Config")
	fmt.Fprintln(ui.Out, "──────")
	cfg := checkConfig(&summary)

	if cfg != nil {
		fmt.Fprintln(ui.Out)
		fmt.Fprintln(ui.Out, "Profiles")
		fmt.Fprintln(ui.Out, "────────")
		for _, f := range profile.Diagnose(cfg, git.NewClient()) {
			summary.add(f)
		}
	}

	fmt.Fprintln(ui.Out)
	fmt.Fprintln(ui.Out, "Git")
	fmt.Fprintln(ui.Out, "───")
	if git.IsGitInstalled() {
		summary.add(profile.Finding{Severity: profile.SeverityOK, Message: git.Version()})
	} else {
		summary.add(profile.Finding{
			Severity: profile.SeverityError,
			Message:  "git is not installed",
			Fix:      "Install git and make sure it is on your PATH",
		})
	}

	fmt.Fprintln(ui.Out)
	fmt.Fprintln(ui.Out, "─────────")

	if summary.fixed > 0 {
		ui.Success(fmt.Sprintf("Auto-fixed %d issue(s)", summary.fixed))
	}

	if summary.errors == 0 && summary.warnings == 0 {
		ui.Success("All checks passed!")
	} else if summary.errors == 0 {
		ui.Warning(fmt.Sprintf("%d warning(s)", summary.warnings))
	} else {
		ui.Error(fmt.Sprintf("%d error(s), %d warning(s)", summary.errors, summary.warnings))
	}

	return nil
}

func printFinding(f profile.Finding) {
	switch f.Severity {
	case profile.SeverityOK:
		fmt.Fprintf(ui.Out, "  ✓ %s\n", f.Message)
	case profile.SeverityWarning:
		fmt.Fprintf(ui.Out, "  ⚠ %s\n", f.Message)
	default:
		fmt.Fprintf(ui.Out, "  ✗ %s\n", f.Message)
	}
	if f.Severity != profile.SeverityOK && f.Fix != "" {
		fmt.Fprintf(ui.Out, "    → %s\n", f.Fix)
	}
}

// checkConfig reports on config.toml without creating it. It returns the
// parsed document, or nil when it is missing or broken.
func checkConfig(summary *doctorSummary) *config.Config {
	loader := config.NewTOMLLoader()
	fsys := filesystem.NewOS()
	store := config.NewStore(fsys, loader, nil)

	if loader.Development() {
		summary.add(profile.Finding{Severity: profile.SeverityOK, Message: "Development mode (DOTTY_ENV=development)"})
	}
	summary.add(profile.Finding{Severity: profile.SeverityOK, Message: "Platform: " + platform.GetPlatformName()})

	dir, err := loader.Dir()
	if err != nil {
		summary.add(profile.Finding{Severity: profile.SeverityError, Message: fmt.Sprintf("Cannot determine config path: %v", err)})
		return nil
	}

	path := config.ConfigPath(dir)
	if !fsys.Exists(path) {
		summary.add(profile.Finding{
			Severity: profile.SeverityWarning,
			Message:  "Config file not found",
			Fix:      "Run: dotty config setup",
		})
		return nil
	}
	summary.add(profile.Finding{Severity: profile.SeverityOK, Message: "Config file exists: " + path})

	cfg, err := store.LoadOrDefault()
	if err != nil {
		summary.add(profile.Finding{
			Severity: profile.SeverityError,
			Message:  fmt.Sprintf("Config file invalid: %v", err),
			Fix:      fmt.Sprintf("Edit config: %s %s", platform.GetEditorSuggestion(), path),
		})
		return nil
	}
	summary.add(profile.Finding{Severity: profile.SeverityOK, Message: "Config file valid"})

	secure, err := platform.CheckFilePermissions(path)
	switch {
	case err != nil:
		summary.add(profile.Finding{Severity: profile.SeverityError, Message: fmt.Sprintf("Cannot check permissions: %v", err)})
	case secure:
		summary.add(profile.Finding{Severity: profile.SeverityOK, Message: "Config file permissions OK"})
	case doctorFix && platform.FixFilePermissions(path) == nil:
		summary.fixed++
		summary.add(profile.Finding{Severity: profile.SeverityOK, Message: "Config file permissions fixed (600)"})
	default:
		summary.add(profile.Finding{
			Severity: profile.SeverityWarning,
			Message:  "Config file is readable by other users",
			Fix:      platform.GetPermissionFixCommand(path),
		})
	}

	return cfg
}
