// Package installer runs the installation pipeline end to end: platform
// preflight, OS package installation, Wine prefix bootstrap, redistributable
// installation, the viewer's own installer, and generation of the launcher
// script and desktop menu entry.
//
// Execution is strictly sequential and fail-fast: the first failing step
// aborts the run with one of the sentinel errors from errors.go, and nothing
// is rolled back.
package installer
