package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/slviewer-tools/firestorm-wine-installer/internal/logger"
)

// Seams for tests.
var (
	hostInfo         = host.InfoWithContext
	effectiveUserID  = os.Geteuid
	lookupExecutable = lookPath
)

// VerifyDistribution checks that the host reports the expected distribution ID.
func VerifyDistribution(ctx context.Context, wantID string) error {
	info, err := hostInfo(ctx)
	if err != nil {
		return fmt.Errorf("identify host: %w", err)
	}

	logger.InfoKV(ctx, "Host identified",
		"os", info.OS, "platform", info.Platform, "version", info.PlatformVersion)

	if info.OS != "linux" || !strings.EqualFold(info.Platform, wantID) {
		return fmt.Errorf("host reports %s/%s, this installer supports %s linux only",
			info.OS, info.Platform, wantID)
	}

	return nil
}

// VerifyUnprivileged fails when the process runs as root. Elevation is
// requested per-step via sudo where actually needed.
func VerifyUnprivileged() error {
	if effectiveUserID() == 0 {
		return errors.New("effective uid is 0, start the installer as a regular user")
	}

	return nil
}

// VerifyToolsPresent checks that the named executables resolve on PATH.
func VerifyToolsPresent(ctx context.Context, names ...string) error {
	for _, name := range names {
		path, err := lookupExecutable(name)
		if err != nil {
			return fmt.Errorf("required tool %s not found on PATH: %w", name, err)
		}

		logger.Debugf(ctx, "Found %s at %s", name, path)
	}

	return nil
}
