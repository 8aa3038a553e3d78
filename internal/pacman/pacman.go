package pacman

import (
	"context"
	"fmt"
	"strings"

	"github.com/slviewer-tools/firestorm-wine-installer/internal/logger"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/shell"
)

// Manager defines the package-manager operations the installer needs.
type Manager interface {
	Installed(ctx context.Context) (map[string]struct{}, error)
	Install(ctx context.Context, packages []string) error
}

// CLI drives the pacman command line. Queries run unprivileged; installs go
// through sudo so only that one step asks for elevation.
type CLI struct {
	runner shell.Runner
}

// NewCLI returns a Manager backed by the pacman binary.
func NewCLI(runner shell.Runner) *CLI {
	return &CLI{runner: runner}
}

// Installed returns the set of currently installed package names (pacman -Qq).
func (c *CLI) Installed(ctx context.Context) (map[string]struct{}, error) {
	out, err := c.runner.Output(ctx, nil, "pacman", "-Qq")
	if err != nil {
		return nil, fmt.Errorf("query installed packages: %w", err)
	}

	installed := make(map[string]struct{})

	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		if name != "" {
			installed[name] = struct{}{}
		}
	}

	return installed, nil
}

// Install installs the given packages in one batch without a confirmation
// prompt. The sudo invocation stays attached to the terminal for the
// password prompt.
func (c *CLI) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	logger.Infof(ctx, "Installing packages: %s", strings.Join(packages, " "))

	args := append([]string{"pacman", "-S", "--noconfirm", "--needed"}, packages...)
	if err := c.runner.Run(ctx, nil, "sudo", args...); err != nil {
		return fmt.Errorf("install packages: %w", err)
	}

	return nil
}

// Missing returns the required packages absent from installed, preserving
// the order of required.
func Missing(required []string, installed map[string]struct{}) []string {
	missing := make([]string, 0, len(required))

	for _, name := range required {
		if _, ok := installed[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}
