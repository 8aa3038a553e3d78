// Package config defines the installation settings and provides helpers to
// load, validate and save them in YAML format.
//
// Defaults reproduce the stock Firestorm-on-Arch installation: package list,
// Wine prefix location and architecture, winetricks verbs, installer
// filename and the paths of the generated launcher and menu entry.
package config
