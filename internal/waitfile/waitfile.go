package waitfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/slviewer-tools/firestorm-wine-installer/internal/logger"
)

// ErrTimeout is returned when the file does not appear within the deadline.
var ErrTimeout = errors.New("timed out waiting for file")

// Wait blocks until the file at path exists, polling at the given interval.
// A zero timeout waits indefinitely; cancelling the context aborts the wait.
// The path is checked once before the first tick so an already-present file
// returns immediately.
func Wait(ctx context.Context, path string, interval, timeout time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}

	if exists(path) {
		return nil
	}

	logger.Infof(ctx, "Waiting for %s", path)

	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()

		deadline = timer.C
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for %s: %w", path, ctx.Err())
		case <-deadline:
			return fmt.Errorf("wait for %s: %w", path, ErrTimeout)
		case <-ticker.C:
			if exists(path) {
				return nil
			}
		}
	}
}

// exists reports whether the path can be stat'ed.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
