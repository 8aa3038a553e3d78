package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/slviewer-tools/firestorm-wine-installer/internal/config"
)

// WriteLauncher writes the launcher script with executable permissions,
// creating the target directory when needed.
func WriteLauncher(path, content string) error {
	return write(path, content, config.DefaultExecutablePermissions)
}

// WriteDesktopEntry writes the menu entry file, creating the target
// directory when needed.
func WriteDesktopEntry(path, content string) error {
	return write(path, content, config.DefaultFilePermissions)
}

// write creates the parent directory and writes the file with the given mode.
func write(path, content string, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	// WriteFile does not change the mode of an already existing file.
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}

	return nil
}

// EnsurePathEntry appends a PATH export for dir to the shell profile when dir
// is absent from pathEnv. It reports whether the profile was changed. The
// profile line is only added once, so repeated runs stay idempotent.
func EnsurePathEntry(profilePath, dir, pathEnv string) (bool, error) {
	if slices.Contains(filepath.SplitList(pathEnv), dir) {
		return false, nil
	}

	line := fmt.Sprintf(`export PATH="$PATH:%s"`, dir)

	existing, err := os.ReadFile(profilePath)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read shell profile: %w", err)
	}

	if strings.Contains(string(existing), line) {
		return false, nil
	}

	profile, err := os.OpenFile(profilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, config.DefaultFilePermissions)
	if err != nil {
		return false, fmt.Errorf("open shell profile: %w", err)
	}
	defer func() {
		_ = profile.Close()
	}()

	if _, err = fmt.Fprintf(profile, "\n%s\n", line); err != nil {
		return false, fmt.Errorf("append to shell profile: %w", err)
	}

	return true, nil
}
