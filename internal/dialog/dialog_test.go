package dialog

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and returns a canned error.
type fakeRunner struct {
	runErr error
	runs   [][]string
}

func (f *fakeRunner) Run(_ context.Context, _ []string, name string, args ...string) error {
	f.runs = append(f.runs, append([]string{name}, args...))
	return f.runErr
}

func (f *fakeRunner) Output(_ context.Context, _ []string, _ string, _ ...string) (string, error) {
	return "", nil
}

// TestInfo_UsesZenityWhenDisplayPresent invokes zenity with the message.
func TestInfo_UsesZenityWhenDisplayPresent(t *testing.T) {
	t.Setenv("DISPLAY", ":0")

	runner := &fakeRunner{}
	prompter := NewZenity(runner)

	require.NoError(t, prompter.Info(context.Background(), "Download", "Place the installer in Downloads."))
	require.Len(t, runner.runs, 1)
	require.Equal(t, "zenity", runner.runs[0][0])
	require.Contains(t, runner.runs[0], "--info")
}

// TestInfo_FallsBackToTerminal prints to the terminal without a display.
func TestInfo_FallsBackToTerminal(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	runner := &fakeRunner{}
	var buf bytes.Buffer

	prompter := NewZenity(runner)
	prompter.out = &buf

	require.NoError(t, prompter.Error(context.Background(), "Firestorm", "Missing runtime component."))
	require.Empty(t, runner.runs)
	require.Contains(t, buf.String(), "Missing runtime component.")
}

// TestShow_ZenityFailureDegrades never fails the caller when zenity breaks.
func TestShow_ZenityFailureDegrades(t *testing.T) {
	t.Setenv("DISPLAY", ":0")

	runner := &fakeRunner{runErr: errors.New("zenity not found")}
	var buf bytes.Buffer

	prompter := NewZenity(runner)
	prompter.out = &buf

	require.NoError(t, prompter.Info(context.Background(), "Download", "text"))
	require.Contains(t, buf.String(), "Download")
}
