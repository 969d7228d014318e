package git

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

var (
	// ErrInvalidBranchName is wrapped by every syntax rejection
	ErrInvalidBranchName = errors.New("invalid branch name")
	// ErrDuplicateBranch is returned when a branch is already bound to another profile
	ErrDuplicateBranch = errors.New("branch name already used")
)

// reservedChars may not appear anywhere in a branch name
const reservedChars = `~^:?*[\`

// Validator checks proposed branch names before a profile is bound to them
type Validator interface {
	IsValidBranchName(name string) error
	IsBranchUnique(branches []string, name string) error
}

// Client is the Validator used by the CLI
type Client struct{}

// NewClient returns the default branch name validator
func NewClient() *Client {
	return &Client{}
}

type branchRule struct {
	broken  func(name string) bool
	message string
}

var branchRules = []branchRule{
	{
		broken:  func(name string) bool { return strings.TrimSpace(name) == "" },
		message: "branch name cannot be empty",
	},
	{
		broken:  func(name string) bool { return strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") },
		message: "branch name cannot start or end with '/'",
	},
	{
		broken:  func(name string) bool { return strings.Contains(name, "..") },
		message: "branch name cannot contain two consecutive dots '..'",
	},
	{
		broken:  func(name string) bool { return strings.IndexFunc(name, unicode.IsSpace) >= 0 },
		message: "branch name cannot contain spaces",
	},
	{
		broken:  func(name string) bool { return strings.IndexFunc(name, unicode.IsControl) >= 0 },
		message: "branch name cannot contain control characters",
	},
	{
		broken:  func(name string) bool { return strings.ContainsAny(name, reservedChars) },
		message: fmt.Sprintf("branch name cannot contain any of %q", reservedChars),
	},
}

// IsValidBranchName reports whether name is usable as a git branch name.
// Every rule is evaluated; the first broken one decides the message.
func (c *Client) IsValidBranchName(name string) error {
	var first *branchRule
	for i := range branchRules {
		if branchRules[i].broken(name) && first == nil {
			first = &branchRules[i]
		}
	}
	if first != nil {
		return fmt.Errorf("%w: %s", ErrInvalidBranchName, first.message)
	}
	return nil
}

// IsBranchUnique fails when name exactly matches one of branches
func (c *Client) IsBranchUnique(branches []string, name string) error {
	if slices.Contains(branches, name) {
		return fmt.Errorf("%w: '%s' is already used, please choose a different one", ErrDuplicateBranch, name)
	}
	return nil
}

// ValidateBranch runs both checks, syntax first
func ValidateBranch(v Validator, branches []string, name string) error {
	if err := v.IsValidBranchName(name); err != nil {
		return err
	}
	return v.IsBranchUnique(branches, name)
}
