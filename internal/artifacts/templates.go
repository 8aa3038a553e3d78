package artifacts

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// EnvToggle is one environment variable exported by the launcher script.
type EnvToggle struct {
	Name  string
	Value string
}

// LauncherData are the inputs of the launcher script template. All paths are
// absolute; SupportFiles are verified by the script before the viewer starts.
type LauncherData struct {
	Prefix       string
	WineArch     string
	AppDir       string
	AppExe       string
	SupportFiles []string
	EnvToggles   []EnvToggle
}

// DesktopEntryData are the inputs of the desktop menu entry template.
type DesktopEntryData struct {
	Name       string
	Comment    string
	Exec       string
	Icon       string
	Categories []string
}

const launcherTemplate = `#!/usr/bin/env bash
# Generated by firestorm-installer. Re-running the installer rewrites this file.
export WINEPREFIX="{{.Prefix}}"
export WINEARCH="{{.WineArch}}"
{{- range .EnvToggles}}
export {{.Name}}={{.Value}}
{{- end}}
{{range .SupportFiles}}
if [ ! -f "{{.}}" ]; then
    zenity --error --title="Firestorm" --width=360 \
        --text="Missing runtime component: {{.}}. Re-run firestorm-installer." 2>/dev/null \
        || echo "Missing runtime component: {{.}}" >&2
    exit 1
fi
{{- end}}

cd "{{.AppDir}}" || exit 1
exec wine "{{.AppExe}}" "$@"
`

const desktopEntryTemplate = `[Desktop Entry]
Name={{.Name}}
Comment={{.Comment}}
Exec={{.Exec}}
Type=Application
Categories={{join ";" .Categories}};
Icon={{.Icon}}
Terminal=false
`

// RenderLauncher renders the launcher script for the given inputs. It is a
// pure function over its inputs and never touches the filesystem.
func RenderLauncher(data LauncherData) (string, error) {
	return render("launcher", launcherTemplate, data)
}

// RenderDesktopEntry renders the desktop menu entry for the given inputs.
func RenderDesktopEntry(data DesktopEntryData) (string, error) {
	return render("desktop-entry", desktopEntryTemplate, data)
}

// render executes a template with the shared helper functions.
func render(name, text string, data any) (string, error) {
	functions := template.FuncMap{
		"join": func(sep string, input []string) string { return strings.Join(input, sep) },
	}

	parsed, err := template.New(name).Funcs(functions).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err = parsed.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	return buf.String(), nil
}
