// Package validation checks user-supplied paths, formats and files.
package validation

import (
	"fmt"
	"os"
	"strings"
)

// IsValidDirectory checks that path exists and is a directory.
func IsValidDirectory(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %s is not a directory", path)
	}
	return nil
}

// IsValidOutputFormat checks that format is one of supported.
func IsValidOutputFormat(format string, supported ...string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s", format, strings.Join(supported, ", "))
}

// IsValidFilePermissions checks that mode grants nothing to others. Files
// holding the Flex token should be 0600.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0o007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600", mode.Perm().String())
	}
	return nil
}

// CheckSecretFile checks the permissions of a file that may hold credentials.
func CheckSecretFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error checking %s: %w", path, err)
	}
	if err := IsValidFilePermissions(info.Mode()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
