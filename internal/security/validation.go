// Package security validates configured values before they reach a command line.
package security

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ValidPackageNameRegex allows alphanumeric, plus, dash, underscore, and dot
	ValidPackageNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9.+_-]*$`)

	// DangerousPathPatterns contains patterns that should not appear in a shell path
	DangerousPathPatterns = []string{
		"..",
		"~",
		"$",
		"`",
		"|",
		"&",
		";",
		" ",
		"\n",
		"\r",
		"\x00",
	}
)

// ValidatePackageName validates a package name handed to pacman, apt or dnf.
// A leading dash is rejected so the name is never parsed as an option.
func ValidatePackageName(name string) error {
	if name == "" {
		return fmt.Errorf("package name cannot be empty")
	}

	if len(name) > 255 {
		return fmt.Errorf("package name too long (max 255 characters)")
	}

	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("package name cannot start with a dash: %q", name)
	}

	if !ValidPackageNameRegex.MatchString(name) {
		return fmt.Errorf("invalid package name %q: must contain only alphanumeric, plus, dash, underscore, or dot characters", name)
	}

	return nil
}

// ValidateShellPath validates the login shell path given to chsh
func ValidateShellPath(path string) error {
	if path == "" {
		return fmt.Errorf("shell path cannot be empty")
	}

	if len(path) >= 4096 {
		return fmt.Errorf("shell path too long (max 4096 characters)")
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("shell path must be absolute, got %q", path)
	}

	for _, pattern := range DangerousPathPatterns {
		if strings.Contains(path, pattern) {
			return fmt.Errorf("shell path contains dangerous pattern: %q", pattern)
		}
	}

	if filepath.Clean(path) != path {
		return fmt.Errorf("shell path is not clean: %q", path)
	}

	return nil
}
