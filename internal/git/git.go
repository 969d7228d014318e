package git

import (
	"os/exec"
	"strings"
)

// IsGitInstalled checks if git is installed
func IsGitInstalled() bool {
	cmd := exec.Command("git", "--version")
	return cmd.Run() == nil
}

// Version returns the output of git --version, or an empty string when git is missing
func Version() string {
	out, err := exec.Command("git", "--version").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
