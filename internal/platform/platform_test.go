package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/require"
)

// stubHost replaces the host info seam for the duration of a test.
func stubHost(t *testing.T, info *host.InfoStat, err error) {
	t.Helper()

	prev := hostInfo
	hostInfo = func(context.Context) (*host.InfoStat, error) {
		return info, err
	}
	t.Cleanup(func() { hostInfo = prev })
}

// TestVerifyDistribution_Match accepts the configured distribution, case-insensitively.
func TestVerifyDistribution_Match(t *testing.T) {
	stubHost(t, &host.InfoStat{OS: "linux", Platform: "Arch"}, nil)

	require.NoError(t, VerifyDistribution(context.Background(), "arch"))
}

// TestVerifyDistribution_Mismatch rejects other distributions and other OSes.
func TestVerifyDistribution_Mismatch(t *testing.T) {
	stubHost(t, &host.InfoStat{OS: "linux", Platform: "debian"}, nil)
	require.Error(t, VerifyDistribution(context.Background(), "arch"))

	stubHost(t, &host.InfoStat{OS: "darwin", Platform: "arch"}, nil)
	require.Error(t, VerifyDistribution(context.Background(), "arch"))
}

// TestVerifyDistribution_ProbeError surfaces host identification failures.
func TestVerifyDistribution_ProbeError(t *testing.T) {
	stubHost(t, nil, errors.New("no os-release"))

	require.Error(t, VerifyDistribution(context.Background(), "arch"))
}

// TestVerifyUnprivileged rejects an effective UID of zero.
func TestVerifyUnprivileged(t *testing.T) {
	prev := effectiveUserID
	t.Cleanup(func() { effectiveUserID = prev })

	effectiveUserID = func() int { return 0 }
	require.Error(t, VerifyUnprivileged())

	effectiveUserID = func() int { return 1000 }
	require.NoError(t, VerifyUnprivileged())
}

// TestVerifyToolsPresent reports the first missing executable by name.
func TestVerifyToolsPresent(t *testing.T) {
	prev := lookupExecutable
	t.Cleanup(func() { lookupExecutable = prev })

	lookupExecutable = func(name string) (string, error) {
		if name == "winetricks" {
			return "", errors.New("not found")
		}

		return "/usr/bin/" + name, nil
	}

	require.NoError(t, VerifyToolsPresent(context.Background(), "wine"))

	err := VerifyToolsPresent(context.Background(), "wine", "winetricks")
	require.Error(t, err)
	require.Contains(t, err.Error(), "winetricks")
}
