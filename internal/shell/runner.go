package shell

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/slviewer-tools/firestorm-wine-installer/internal/logger"
)

// Runner executes external commands. Run attaches the command to the
// installer's terminal so interactive tools (sudo, installers) work; Output
// captures stdout for query-style commands.
type Runner interface {
	Run(ctx context.Context, env []string, name string, args ...string) error
	Output(ctx context.Context, env []string, name string, args ...string) (string, error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command attached to the current terminal. The provided
// environment entries are appended to the inherited environment.
func (r *ExecRunner) Run(ctx context.Context, env []string, name string, args ...string) error {
	logger.Debugf(ctx, "Running: %s", commandLine(name, args))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", commandLine(name, args), err)
	}

	return nil
}

// Output executes the command and returns its trimmed stdout. Stderr is
// captured and included in the error on failure.
func (r *ExecRunner) Output(ctx context.Context, env []string, name string, args ...string) (string, error) {
	logger.Debugf(ctx, "Querying: %s", commandLine(name, args))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("%s: %w, stderr: %s",
			commandLine(name, args), err, strings.TrimSpace(errOut.String()))
	}

	return strings.TrimSpace(out.String()), nil
}

// commandLine renders a command and its arguments for log and error messages.
func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}

	return name + " " + strings.Join(args, " ")
}
