package installer

import "errors"

// Step failures are terminal: each aborts the pipeline, is reported once and
// the process exits non-zero. Nothing is retried and nothing is rolled back.
var (
	// ErrUnsupportedPlatform indicates the host is not the supported distribution.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrElevatedPrivileges indicates the installer was started as root.
	ErrElevatedPrivileges = errors.New("refusing to run with elevated privileges")
	// ErrDependencyInstall indicates the OS package installation failed.
	ErrDependencyInstall = errors.New("dependency installation failed")
	// ErrPrefixInit indicates the Wine prefix could not be (re)created.
	ErrPrefixInit = errors.New("prefix initialization failed")
	// ErrRedistributable indicates a winetricks redistributable failed to install.
	ErrRedistributable = errors.New("redistributable installation failed")
	// ErrInstallerRun indicates the viewer installer exited with an error.
	ErrInstallerRun = errors.New("viewer installer failed")
)
