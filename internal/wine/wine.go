package wine

import (
	"context"
	"fmt"
	"os"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/slviewer-tools/firestorm-wine-installer/internal/logger"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/shell"
)

// Toolchain drives wine, wineboot and winetricks against one prefix. The
// prefix location and architecture are passed to every child process through
// the environment; the installer's own environment is never mutated.
type Toolchain struct {
	runner shell.Runner
	prefix string
	arch   string
}

// New returns a Toolchain bound to the given prefix directory and architecture.
func New(runner shell.Runner, prefix, arch string) *Toolchain {
	return &Toolchain{
		runner: runner,
		prefix: prefix,
		arch:   arch,
	}
}

// Prefix returns the prefix directory this toolchain operates on.
func (t *Toolchain) Prefix() string {
	return t.prefix
}

// env returns the prefix environment for child processes.
func (t *Toolchain) env() []string {
	return []string{
		"WINEPREFIX=" + t.prefix,
		"WINEARCH=" + t.arch,
	}
}

// ResetPrefix wipes any existing prefix directory and bootstraps a fresh one.
// A pre-existing prefix is always treated as stale. The wipe is refused while
// Wine processes are still alive, since wineserver keeps state under the
// prefix and would corrupt the fresh bootstrap.
func (t *Toolchain) ResetPrefix(ctx context.Context) error {
	running, err := RunningProcesses()
	if err != nil {
		return fmt.Errorf("inspect processes: %w", err)
	}

	if len(running) > 0 {
		return fmt.Errorf("wine processes still running (%s), close the viewer and retry",
			strings.Join(running, ", "))
	}

	if _, err = os.Stat(t.prefix); err == nil {
		logger.Infof(ctx, "Removing stale prefix at %s", t.prefix)

		if err = os.RemoveAll(t.prefix); err != nil {
			return fmt.Errorf("remove stale prefix: %w", err)
		}
	}

	logger.Infof(ctx, "Bootstrapping %s prefix at %s", t.arch, t.prefix)

	if err = t.runner.Run(ctx, t.env(), "wineboot", "--init"); err != nil {
		return fmt.Errorf("bootstrap prefix: %w", err)
	}

	return nil
}

// InstallRedistributable installs one winetricks verb into the prefix.
func (t *Toolchain) InstallRedistributable(ctx context.Context, verb string) error {
	logger.Infof(ctx, "Installing redistributable %s", verb)

	if err := t.runner.Run(ctx, t.env(), "winetricks", "-q", verb); err != nil {
		return fmt.Errorf("winetricks %s: %w", verb, err)
	}

	return nil
}

// RunInstaller runs a Windows installer executable inside the prefix and
// blocks until it exits.
func (t *Toolchain) RunInstaller(ctx context.Context, path string) error {
	logger.Infof(ctx, "Running installer %s inside the prefix", path)

	if err := t.runner.Run(ctx, t.env(), "wine", path); err != nil {
		return fmt.Errorf("run installer: %w", err)
	}

	return nil
}

// CheckVersion verifies the installed Wine release against a minimum. An
// empty minimum disables the gate.
func (t *Toolchain) CheckVersion(ctx context.Context, minimum string) error {
	if minimum == "" {
		return nil
	}

	out, err := t.runner.Output(ctx, nil, "wine", "--version")
	if err != nil {
		return fmt.Errorf("query wine version: %w", err)
	}

	current, err := parseVersion(out)
	if err != nil {
		return err
	}

	want, err := goversion.NewVersion(minimum)
	if err != nil {
		return fmt.Errorf("parse minimum wine version %q: %w", minimum, err)
	}

	logger.InfoKV(ctx, "Wine version check", "installed", current.String(), "minimum", want.String())

	if current.LessThan(want) {
		return fmt.Errorf("wine %s is older than the required %s", current, want)
	}

	return nil
}

// parseVersion extracts a semantic version from `wine --version` output,
// which looks like "wine-9.0" or "wine-9.0 (Staging)".
func parseVersion(out string) (*goversion.Version, error) {
	raw := strings.TrimSpace(out)
	if fields := strings.Fields(raw); len(fields) > 0 {
		raw = fields[0]
	}

	raw = strings.TrimPrefix(raw, "wine-")

	parsed, err := goversion.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parse wine version %q: %w", out, err)
	}

	return parsed, nil
}
