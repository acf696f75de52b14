// Package paths resolves user-supplied file locations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// Expand replaces a leading ~ with the user's home directory.
func Expand(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
