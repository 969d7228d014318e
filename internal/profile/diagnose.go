package profile

import (
	"fmt"

	"github.com/byterings/dotty/internal/config"
	"github.com/byterings/dotty/internal/git"
)

// Severity ranks a Finding
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityError
)

// Finding is the outcome of one health check
type Finding struct {
	Severity Severity
	Message  string
	Fix      string // Suggested fix command
}

// Diagnose checks the profiles of cfg for problems the workflows let through:
// a dangling active profile, branch names that no longer pass validation and
// branches bound to more than one profile.
func Diagnose(cfg *config.Config, validator git.Validator) []Finding {
	var findings []Finding

	if len(cfg.Profiles) == 0 {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message:  "No profiles configured",
			Fix:      "Run: dotty profile create",
		})
	} else {
		findings = append(findings, Finding{
			Severity: SeverityOK,
			Message:  fmt.Sprintf("%d profile(s) configured", len(cfg.Profiles)),
		})
	}

	switch {
	case cfg.ActiveProfile == "":
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message:  "No active profile set",
			Fix:      "Run: dotty profile use <id>",
		})
	case !cfg.HasProfile(cfg.ActiveProfile):
		findings = append(findings, Finding{
			Severity: SeverityError,
			Message:  fmt.Sprintf("Active profile '%s' not found in config", cfg.ActiveProfile),
			Fix:      "Run: dotty profile list",
		})
	default:
		findings = append(findings, Finding{
			Severity: SeverityOK,
			Message:  fmt.Sprintf("Active profile: %s", cfg.ActiveProfile),
		})
	}

	owners := map[string][]config.ProfileID{}
	for _, id := range cfg.ProfileIDs() {
		branch := cfg.Profiles[id].Branch
		owners[branch] = append(owners[branch], id)

		if err := validator.IsValidBranchName(branch); err != nil {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Message:  fmt.Sprintf("Profile '%s' has an invalid branch '%s': %v", id, branch, err),
				Fix:      "Run: dotty profile update",
			})
		}
	}

	for _, id := range cfg.ProfileIDs() {
		branch := cfg.Profiles[id].Branch
		ids := owners[branch]
		// report each shared branch once, on its first owner
		if len(ids) < 2 || ids[0] != id {
			continue
		}
		findings = append(findings, Finding{
			Severity: SeverityError,
			Message:  fmt.Sprintf("Branch '%s' is shared by profiles %v", branch, ids),
			Fix:      "Run: dotty profile update",
		})
	}

	return findings
}
