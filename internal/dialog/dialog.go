package dialog

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/slviewer-tools/firestorm-wine-installer/internal/logger"
	"github.com/slviewer-tools/firestorm-wine-installer/internal/shell"
)

// Prompter shows blocking messages to the user.
type Prompter interface {
	Info(ctx context.Context, title, text string) error
	Error(ctx context.Context, title, text string) error
}

// Zenity shows modal dialogs via the zenity binary, falling back to plain
// terminal output when no display is available.
type Zenity struct {
	runner shell.Runner
	out    io.Writer
}

// NewZenity returns a Prompter backed by zenity with a terminal fallback.
func NewZenity(runner shell.Runner) *Zenity {
	return &Zenity{
		runner: runner,
		out:    os.Stderr,
	}
}

// Info shows a blocking informational dialog.
func (z *Zenity) Info(ctx context.Context, title, text string) error {
	return z.show(ctx, "--info", title, text)
}

// Error shows a blocking error dialog.
func (z *Zenity) Error(ctx context.Context, title, text string) error {
	return z.show(ctx, "--error", title, text)
}

// show runs zenity and degrades to the terminal when it cannot be used.
// The message itself is never lost: dialogs are a convenience, not a step.
func (z *Zenity) show(ctx context.Context, kind, title, text string) error {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		z.print(title, text)
		return nil
	}

	err := z.runner.Run(ctx, nil, "zenity", kind,
		"--title="+title, "--text="+text, "--width=360")
	if err != nil {
		logger.Warnf(ctx, "Dialog unavailable, falling back to terminal: %v", err)
		z.print(title, text)
	}

	return nil
}

// print writes the message to the terminal with a press-enter pause, keeping
// the blocking behavior of a modal dialog.
func (z *Zenity) print(title, text string) {
	_, _ = fmt.Fprintf(z.out, "\n[%s] %s\nPress Enter to continue...", title, text)
	_, _ = fmt.Fscanln(os.Stdin)
}
