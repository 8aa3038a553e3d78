package waitfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestWait_ImmediateWhenPresent returns without ticking for an existing file.
func TestWait_ImmediateWhenPresent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "setup.exe")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	start := time.Now()
	require.NoError(t, Wait(context.Background(), path, time.Second, 0))
	require.Less(t, time.Since(start), 500*time.Millisecond)
}

// TestWait_PicksUpLateFile sees a file created after the wait started.
func TestWait_PicksUpLateFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "setup.exe")

	go func() {
		time.Sleep(30 * time.Millisecond)
		_ = os.WriteFile(path, []byte("x"), 0o644)
	}()

	require.NoError(t, Wait(context.Background(), path, 10*time.Millisecond, 0))
}

// TestWait_Timeout returns ErrTimeout when the file never appears.
func TestWait_Timeout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "never.exe")

	err := Wait(context.Background(), path, 5*time.Millisecond, 30*time.Millisecond)
	require.ErrorIs(t, err, ErrTimeout)
}

// TestWait_ContextCancel aborts the otherwise unbounded wait.
func TestWait_ContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := Wait(ctx, filepath.Join(t.TempDir(), "never.exe"), 5*time.Millisecond, 0)
	require.ErrorIs(t, err, context.Canceled)
}
