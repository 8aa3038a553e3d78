package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Config holds every knob of the installation: the host requirements, the
// Wine prefix layout and the artifacts generated at the end. Defaults
// reproduce the stock Firestorm-on-Arch installation; a YAML file can
// override any field.
type Config struct {
	// DistributionID is the /etc/os-release ID the host must report.
	DistributionID string `yaml:"distribution_id"`
	// Packages are the OS packages required before anything else runs.
	Packages []string `yaml:"packages"`
	// MinWineVersion is the lowest Wine release the viewer is known to run on.
	MinWineVersion string `yaml:"min_wine_version"`
	// Prefix is the Wine prefix directory, recreated on every run.
	Prefix string `yaml:"prefix"`
	// WineArch is the prefix architecture, win64 for the 64-bit viewer.
	WineArch string `yaml:"wine_arch"`
	// Redistributables are winetricks verbs installed into the prefix, in order.
	Redistributables []string `yaml:"redistributables"`
	// DownloadsDir is where the user is asked to place the viewer installer.
	DownloadsDir string `yaml:"downloads_dir"`
	// InstallerFile is the expected installer filename inside DownloadsDir.
	InstallerFile string `yaml:"installer_file"`
	// WaitInterval is the poll interval while waiting for the installer file.
	WaitInterval time.Duration `yaml:"wait_interval"`
	// WaitTimeout bounds the wait for the installer file; zero waits forever.
	WaitTimeout time.Duration `yaml:"wait_timeout"`
	// AppDir is the viewer directory relative to the prefix root.
	AppDir string `yaml:"app_dir"`
	// AppExe is the viewer executable inside AppDir.
	AppExe string `yaml:"app_exe"`
	// IconFile is the icon filename inside AppDir, referenced by the menu entry.
	IconFile string `yaml:"icon_file"`
	// SupportFiles are files relative to the prefix root that the generated
	// launcher verifies before starting the viewer.
	SupportFiles []string `yaml:"support_files"`
	// LauncherDir is where the launcher script is written.
	LauncherDir string `yaml:"launcher_dir"`
	// LauncherName is the launcher script filename.
	LauncherName string `yaml:"launcher_name"`
	// DesktopDir is where the desktop menu entry is written.
	DesktopDir string `yaml:"desktop_dir"`
	// DesktopFile is the menu entry filename.
	DesktopFile string `yaml:"desktop_file"`
	// ShellProfile is appended to when LauncherDir is missing from PATH.
	ShellProfile string `yaml:"shell_profile"`
}

const (
	// DefaultWaitInterval is the poll interval for the installer file.
	DefaultWaitInterval = time.Second

	// DefaultFilePermissions is the permission for files written by the installer.
	DefaultFilePermissions os.FileMode = 0o644

	// DefaultExecutablePermissions is the permission for the generated launcher.
	DefaultExecutablePermissions os.FileMode = 0o755
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownWineArch is returned for architectures Wine does not know.
	errUnknownWineArch = errors.New("wine architecture must be win32 or win64")
	// errNoPackages is returned when the required package list is empty.
	errNoPackages = errors.New("at least one required package must be listed")
	// errNoRedistributables is returned when no winetricks verbs are configured.
	errNoRedistributables = errors.New("at least one redistributable must be listed")
)

// Default returns the stock configuration for installing Firestorm on Arch.
func Default() *Config {
	return &Config{
		DistributionID:   "arch",
		Packages:         []string{"wine", "winetricks", "zenity", "wget"},
		MinWineVersion:   "7.0",
		Prefix:           "~/.firestorm",
		WineArch:         "win64",
		Redistributables: []string{"d3dx9", "vcrun2019"},
		DownloadsDir:     "~/Downloads",
		InstallerFile:    "Phoenix-FirestormOS-Releasex64-Setup.exe",
		WaitInterval:     DefaultWaitInterval,
		WaitTimeout:      0,
		AppDir:           "drive_c/Program Files/Firestorm-Releasex64",
		AppExe:           "FirestormOS-Releasex64.exe",
		IconFile:         "firestorm_icon.png",
		SupportFiles: []string{
			"drive_c/windows/system32/d3dx9_43.dll",
			"drive_c/windows/system32/d3dcompiler_43.dll",
		},
		LauncherDir:  "~/.local/bin",
		LauncherName: "firestorm",
		DesktopDir:   "~/.local/share/applications",
		DesktopFile:  "firestorm.desktop",
		ShellProfile: "~/.bashrc",
	}
}

// Load returns the defaults overlaid with the YAML file at path, validated
// and with every `~` expanded. An empty path yields plain defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		contents, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}

		if err = yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	if err := expandPaths(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err = os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks required fields and fills derived defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if len(cfg.Packages) == 0 {
		return errNoPackages
	}

	if len(cfg.Redistributables) == 0 {
		return errNoRedistributables
	}

	if cfg.WineArch != "win32" && cfg.WineArch != "win64" {
		return errUnknownWineArch
	}

	if cfg.WaitInterval <= 0 {
		cfg.WaitInterval = DefaultWaitInterval
	}

	for _, field := range []struct {
		name, value string
	}{
		{"distribution_id", cfg.DistributionID},
		{"prefix", cfg.Prefix},
		{"downloads_dir", cfg.DownloadsDir},
		{"installer_file", cfg.InstallerFile},
		{"app_dir", cfg.AppDir},
		{"app_exe", cfg.AppExe},
		{"launcher_dir", cfg.LauncherDir},
		{"launcher_name", cfg.LauncherName},
		{"desktop_dir", cfg.DesktopDir},
		{"desktop_file", cfg.DesktopFile},
	} {
		if field.value == "" {
			return fmt.Errorf("setting %s must not be empty", field.name)
		}
	}

	return nil
}

// InstallerPath is the absolute path the viewer installer is expected at.
func (c *Config) InstallerPath() string {
	return filepath.Join(c.DownloadsDir, c.InstallerFile)
}

// AppPath is the absolute viewer directory inside the prefix.
func (c *Config) AppPath() string {
	return filepath.Join(c.Prefix, filepath.FromSlash(c.AppDir))
}

// IconPath is the absolute icon path referenced by the menu entry.
func (c *Config) IconPath() string {
	return filepath.Join(c.AppPath(), c.IconFile)
}

// LauncherPath is the absolute path of the generated launcher script.
func (c *Config) LauncherPath() string {
	return filepath.Join(c.LauncherDir, c.LauncherName)
}

// DesktopPath is the absolute path of the generated menu entry.
func (c *Config) DesktopPath() string {
	return filepath.Join(c.DesktopDir, c.DesktopFile)
}

// SupportFilePaths are the absolute paths the launcher verifies at startup.
func (c *Config) SupportFilePaths() []string {
	paths := make([]string, 0, len(c.SupportFiles))
	for _, rel := range c.SupportFiles {
		paths = append(paths, filepath.Join(c.Prefix, filepath.FromSlash(rel)))
	}

	return paths
}

// expandPaths resolves `~` in every user-facing path field.
func expandPaths(cfg *Config) error {
	for _, field := range []*string{
		&cfg.Prefix,
		&cfg.DownloadsDir,
		&cfg.LauncherDir,
		&cfg.DesktopDir,
		&cfg.ShellProfile,
	} {
		expanded, err := homedir.Expand(*field)
		if err != nil {
			return fmt.Errorf("expand path %q: %w", *field, err)
		}

		*field = expanded
	}

	return nil
}
