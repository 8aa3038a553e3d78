// Package wine wraps the Wine toolchain for one prefix: bootstrapping a
// fresh prefix with wineboot, installing winetricks redistributables,
// running Windows installers, and gating on a minimum Wine release.
package wine
