package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// MkdirSecure creates a directory with appropriate permissions for the platform
func MkdirSecure(path string) error {
	if runtime.GOOS == "windows" {
		// Windows doesn't use Unix permissions
		return os.MkdirAll(path, 0755)
	}
	return os.MkdirAll(path, 0700)
}

// OpenFileSecure opens a file for writing with appropriate permissions
func OpenFileSecure(path string, flag int) (*os.File, error) {
	if runtime.GOOS == "windows" {
		return os.OpenFile(path, flag, 0644)
	}
	return os.OpenFile(path, flag, 0600)
}

// CheckFilePermissions checks if a file has secure permissions (Unix only)
// Returns true if permissions are OK, false if they need fixing
func CheckFilePermissions(path string) (bool, error) {
	if runtime.GOOS == "windows" {
		return true, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	// Other users must not read or write (0077)
	if info.Mode()&0077 != 0 {
		return false, nil
	}
	return true, nil
}

// FixFilePermissions sets secure permissions on a file (Unix only)
func FixFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, 0600)
}

// GetPermissionFixCommand returns the appropriate command to fix file permissions
func GetPermissionFixCommand(path string) string {
	if runtime.GOOS == "windows" {
		return "File permissions are not applicable on Windows"
	}
	return fmt.Sprintf("chmod 600 %s", path)
}

// GetEditorSuggestion returns the suggested text editor command for the platform
func GetEditorSuggestion() string {
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "nano"
}

// GetConfigDirName returns the dotty directory, relative to the home or project directory
func GetConfigDirName() string {
	return filepath.Join(".config", "dotty")
}

// GetPlatformName returns a user-friendly platform name
func GetPlatformName() string {
	switch runtime.GOOS {
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	default:
		return runtime.GOOS
	}
}
