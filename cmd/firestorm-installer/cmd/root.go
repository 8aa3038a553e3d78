package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/slviewer-tools/firestorm-wine-installer/internal/logger"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/service/installer"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/version"
)

var (
	// configPath stores the path to the optional settings YAML file.
	configPath string
	// logLevel stores the textual log level flag.
	logLevel string

	// rootCmd runs the whole installation pipeline; there are no subcommands
	// beyond `version`.
	rootCmd = &cobra.Command{
		Use:   "firestorm-installer",
		Short: "Install the Firestorm viewer under Wine on Arch Linux.",
		Long: `Install the Firestorm Second Life viewer under Wine on Arch Linux.

Runs the full installation in one pass: verifies the host distribution,
installs missing OS packages with pacman, recreates a 64-bit Wine prefix,
installs the required redistributables with winetricks, waits for you to
download the viewer installer into ~/Downloads, runs it inside the prefix,
and finally writes a launcher script to ~/.local/bin plus an application
menu entry.

The process must run as a regular user; sudo is invoked only for the
package installation step. Any failure aborts the installation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Ctrl-C aborts the pipeline, including the download wait.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			return installer.Run(ctx, &installer.Options{
				ConfigPath: configPath,
			})
		},
	}
)

// Execute runs the installer CLI and exits with status 1 on any failure.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, color.RedString("✗ %v", err))
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to settings file (defaults are built in)")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "log level: debug, info, warn, error")
}
