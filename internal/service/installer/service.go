package installer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/slviewer-tools/firestorm-wine-installer/internal/artifacts"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/config"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/dialog"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/logger"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/pacman"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/platform"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/shell"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/waitfile"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/wine"
)

// Fixed presentation values for the generated menu entry.
const (
	viewerDisplayName = "Firestorm Viewer"
	viewerComment     = "Second Life viewer running under Wine"
)

//nolint:gochecknoglobals // Static menu entry categories.
var viewerCategories = []string{"Game", "Network"}

// Options controls a single installation run.
type Options struct {
	// ConfigPath is the optional settings YAML file; empty means defaults.
	ConfigPath string
}

// PackageManager is the package-manager surface the pipeline depends on.
type PackageManager interface {
	Installed(ctx context.Context) (map[string]struct{}, error)
	Install(ctx context.Context, packages []string) error
}

// Toolchain is the Wine toolchain surface the pipeline depends on.
type Toolchain interface {
	ResetPrefix(ctx context.Context) error
	InstallRedistributable(ctx context.Context, verb string) error
	RunInstaller(ctx context.Context, path string) error
	CheckVersion(ctx context.Context, minimum string) error
}

// Service runs the installation pipeline: platform preflight, OS packages,
// Wine prefix, redistributables, the viewer installer, and finally the
// launcher script and menu entry. Steps run strictly in order and the first
// failure aborts the whole run.
type Service struct {
	opts     *Options
	cfg      *config.Config
	packages PackageManager
	wine     Toolchain
	prompter dialog.Prompter

	// Seams for tests; production defaults are set by New.
	newPackageManager  func(shell.Runner) PackageManager
	newToolchain       func(shell.Runner, *config.Config) Toolchain
	verifyDistribution func(ctx context.Context, id string) error
	verifyUnprivileged func() error
	verifyTools        func(ctx context.Context, names ...string) error
	waitForFile        func(ctx context.Context, path string, interval, timeout time.Duration) error
	pathEnv            func() string
}

// New creates a Service with production collaborators.
func New(opts *Options) *Service {
	runner := shell.NewExecRunner()

	return &Service{
		opts:     opts,
		prompter: dialog.NewZenity(runner),
		newPackageManager: func(r shell.Runner) PackageManager {
			return pacman.NewCLI(r)
		},
		newToolchain: func(r shell.Runner, cfg *config.Config) Toolchain {
			return wine.New(r, cfg.Prefix, cfg.WineArch)
		},
		verifyDistribution: platform.VerifyDistribution,
		verifyUnprivileged: platform.VerifyUnprivileged,
		verifyTools:        platform.VerifyToolsPresent,
		waitForFile:        waitfile.Wait,
		pathEnv:            func() string { return os.Getenv("PATH") },
	}
}

// Run executes the full installation with production collaborators.
func Run(ctx context.Context, opts *Options) error {
	return New(opts).Run(ctx)
}

// step couples a human-readable step name with its implementation.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// Run loads the configuration, verifies preconditions and executes the
// pipeline, short-circuiting on the first failing step.
func (s *Service) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "installer")

	cfg, err := config.Load(s.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	s.cfg = cfg

	if err = s.verifyDistribution(ctx, cfg.DistributionID); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedPlatform, err)
	}

	if err = s.verifyUnprivileged(); err != nil {
		return fmt.Errorf("%w: %w", ErrElevatedPrivileges, err)
	}

	// Not a pipeline step: a failed profile write only warns.
	s.extendPath(ctx)

	runner := shell.NewExecRunner()
	s.packages = s.newPackageManager(runner)
	s.wine = s.newToolchain(runner, cfg)

	steps := []step{
		{"install dependencies", s.installDependencies},
		{"initialize prefix", s.initializePrefix},
		{"install redistributables", s.installRedistributables},
		{"install viewer", s.installViewer},
		{"generate launcher", s.generateLauncher},
		{"generate menu entry", s.generateDesktopEntry},
	}

	for _, st := range steps {
		logger.Infof(ctx, "Step: %s", st.name)

		if err = st.run(ctx); err != nil {
			return err
		}
	}

	logger.Infof(ctx, "Installation complete, start the viewer with %q or from the application menu",
		cfg.LauncherPath())

	return nil
}

// extendPath appends the launcher directory to the shell profile when it is
// missing from PATH. Best effort only.
func (s *Service) extendPath(ctx context.Context) {
	changed, err := artifacts.EnsurePathEntry(s.cfg.ShellProfile, s.cfg.LauncherDir, s.pathEnv())
	if err != nil {
		logger.Warnf(ctx, "Could not update shell profile: %v", err)
		return
	}

	if changed {
		logger.Warnf(ctx, "Added %s to PATH in %s, restart your shell for it to take effect",
			s.cfg.LauncherDir, s.cfg.ShellProfile)
	}
}

// installDependencies installs missing OS packages in one batch, then checks
// the Wine toolchain that the packages were supposed to provide.
func (s *Service) installDependencies(ctx context.Context) error {
	installed, err := s.packages.Installed(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDependencyInstall, err)
	}

	missing := pacman.Missing(s.cfg.Packages, installed)
	if len(missing) == 0 {
		logger.Info(ctx, "All required packages already installed")
	} else if err = s.packages.Install(ctx, missing); err != nil {
		return fmt.Errorf("%w: %w", ErrDependencyInstall, err)
	}

	if err = s.verifyTools(ctx, "wine", "winetricks"); err != nil {
		return fmt.Errorf("%w: %w", ErrDependencyInstall, err)
	}

	if err = s.wine.CheckVersion(ctx, s.cfg.MinWineVersion); err != nil {
		return fmt.Errorf("%w: %w", ErrDependencyInstall, err)
	}

	return nil
}

// initializePrefix recreates the Wine prefix from scratch.
func (s *Service) initializePrefix(ctx context.Context) error {
	if err := s.wine.ResetPrefix(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPrefixInit, err)
	}

	return nil
}

// installRedistributables installs the configured winetricks verbs in order.
func (s *Service) installRedistributables(ctx context.Context) error {
	for _, verb := range s.cfg.Redistributables {
		if err := s.wine.InstallRedistributable(ctx, verb); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRedistributable, verb, err)
		}
	}

	return nil
}

// installViewer asks the user to download the viewer installer, waits for the
// file to appear and runs it inside the prefix.
func (s *Service) installViewer(ctx context.Context) error {
	text := fmt.Sprintf(
		"Download the viewer installer from the Firestorm website and save it as %s. "+
			"Installation continues automatically once the file appears.",
		s.cfg.InstallerPath())

	if err := s.prompter.Info(ctx, "Download the viewer", text); err != nil {
		logger.Warnf(ctx, "Could not show download prompt: %v", err)
	}

	if err := s.waitForFile(ctx, s.cfg.InstallerPath(), s.cfg.WaitInterval, s.cfg.WaitTimeout); err != nil {
		return fmt.Errorf("wait for installer: %w", err)
	}

	if err := s.wine.RunInstaller(ctx, s.cfg.InstallerPath()); err != nil {
		return fmt.Errorf("%w: %w", ErrInstallerRun, err)
	}

	return nil
}

// generateLauncher renders and writes the launcher script. The prefix is not
// required to exist at this point; the script itself verifies the support
// files at run time.
func (s *Service) generateLauncher(ctx context.Context) error {
	content, err := artifacts.RenderLauncher(artifacts.LauncherData{
		Prefix:       s.cfg.Prefix,
		WineArch:     s.cfg.WineArch,
		AppDir:       s.cfg.AppPath(),
		AppExe:       s.cfg.AppExe,
		SupportFiles: s.cfg.SupportFilePaths(),
		EnvToggles: []artifacts.EnvToggle{
			{Name: "DXVK_STATE_CACHE", Value: "1"},
			{Name: "WINEESYNC", Value: "1"},
		},
	})
	if err != nil {
		return fmt.Errorf("render launcher: %w", err)
	}

	if err = artifacts.WriteLauncher(s.cfg.LauncherPath(), content); err != nil {
		return err
	}

	logger.Infof(ctx, "Launcher written to %s", s.cfg.LauncherPath())

	return nil
}

// generateDesktopEntry renders and writes the application menu entry
// pointing at the launcher written in this run.
func (s *Service) generateDesktopEntry(ctx context.Context) error {
	content, err := artifacts.RenderDesktopEntry(artifacts.DesktopEntryData{
		Name:       viewerDisplayName,
		Comment:    viewerComment,
		Exec:       s.cfg.LauncherPath(),
		Icon:       s.cfg.IconPath(),
		Categories: viewerCategories,
	})
	if err != nil {
		return fmt.Errorf("render menu entry: %w", err)
	}

	if err = artifacts.WriteDesktopEntry(s.cfg.DesktopPath(), content); err != nil {
		return err
	}

	logger.Infof(ctx, "Menu entry written to %s", s.cfg.DesktopPath())

	return nil
}
