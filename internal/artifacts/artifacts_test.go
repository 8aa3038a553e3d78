package artifacts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func launcherFixture() LauncherData {
	return LauncherData{
		Prefix:   "/home/resident/.firestorm",
		WineArch: "win64",
		AppDir:   "/home/resident/.firestorm/drive_c/Program Files/Firestorm-Releasex64",
		AppExe:   "FirestormOS-Releasex64.exe",
		SupportFiles: []string{
			"/home/resident/.firestorm/drive_c/windows/system32/d3dx9_43.dll",
			"/home/resident/.firestorm/drive_c/windows/system32/d3dcompiler_43.dll",
		},
		EnvToggles: []EnvToggle{
			{Name: "DXVK_STATE_CACHE", Value: "1"},
			{Name: "WINEESYNC", Value: "1"},
		},
	}
}

// TestRenderLauncher checks the script sets the prefix environment, verifies
// support files and execs the viewer from its directory.
func TestRenderLauncher(t *testing.T) {
	t.Parallel()

	script, err := RenderLauncher(launcherFixture())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(script, "#!/usr/bin/env bash"))
	require.Contains(t, script, `export WINEPREFIX="/home/resident/.firestorm"`)
	require.Contains(t, script, `export WINEARCH="win64"`)
	require.Contains(t, script, "export DXVK_STATE_CACHE=1")
	require.Contains(t, script, "export WINEESYNC=1")
	require.Contains(t, script, "d3dx9_43.dll")
	require.Contains(t, script, "d3dcompiler_43.dll")
	require.Contains(t, script, `cd "/home/resident/.firestorm/drive_c/Program Files/Firestorm-Releasex64"`)
	require.Contains(t, script, `exec wine "FirestormOS-Releasex64.exe" "$@"`)

	// Each support file gets its own visible failure path.
	require.Equal(t, 2, strings.Count(script, "Missing runtime component")/2)
}

// TestRenderDesktopEntry checks the menu entry fields and category joining.
func TestRenderDesktopEntry(t *testing.T) {
	t.Parallel()

	entry, err := RenderDesktopEntry(DesktopEntryData{
		Name:       "Firestorm Viewer",
		Comment:    "Second Life viewer running under Wine",
		Exec:       "/home/resident/.local/bin/firestorm",
		Icon:       "/home/resident/.firestorm/drive_c/Program Files/Firestorm-Releasex64/firestorm_icon.png",
		Categories: []string{"Game", "Network"},
	})
	require.NoError(t, err)

	require.Contains(t, entry, "[Desktop Entry]")
	require.Contains(t, entry, "Exec=/home/resident/.local/bin/firestorm")
	require.Contains(t, entry, "Categories=Game;Network;")
	require.Contains(t, entry, "Terminal=false")
	require.Contains(t, entry, "Type=Application")
}

// TestWriteLauncher_SetsExecutableBit writes the script with 0755.
func TestWriteLauncher_SetsExecutableBit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bin", "firestorm")
	require.NoError(t, WriteLauncher(path, "#!/usr/bin/env bash\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

// TestWriteDesktopEntry_CreatesDirectories writes through a missing directory tree.
func TestWriteDesktopEntry_CreatesDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "share", "applications", "firestorm.desktop")
	require.NoError(t, WriteDesktopEntry(path, "[Desktop Entry]\n"))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "Desktop Entry")
}

// TestEnsurePathEntry covers the append, the already-on-PATH case and idempotency.
func TestEnsurePathEntry(t *testing.T) {
	t.Parallel()

	profile := filepath.Join(t.TempDir(), ".bashrc")
	binDir := "/home/resident/.local/bin"

	// Dir already on PATH: nothing written.
	changed, err := EnsurePathEntry(profile, binDir, "/usr/bin:"+binDir)
	require.NoError(t, err)
	require.False(t, changed)
	_, err = os.Stat(profile)
	require.True(t, os.IsNotExist(err))

	// Dir missing: line appended, profile created.
	changed, err = EnsurePathEntry(profile, binDir, "/usr/bin:/bin")
	require.NoError(t, err)
	require.True(t, changed)

	contents, err := os.ReadFile(profile)
	require.NoError(t, err)
	require.Contains(t, string(contents), binDir)

	// Second run leaves the profile untouched.
	changed, err = EnsurePathEntry(profile, binDir, "/usr/bin:/bin")
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, 1, strings.Count(string(contents), binDir))
}
