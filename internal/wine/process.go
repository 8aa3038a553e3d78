package wine

import (
	"github.com/mitchellh/go-ps"
)

// listProcesses is a seam for tests.
var listProcesses = ps.Processes

// processNames are executables that indicate a live Wine session.
//
//nolint:gochecknoglobals // Static lookup table.
var processNames = map[string]struct{}{
	"wine":           {},
	"wine64":         {},
	"wineserver":     {},
	"wineboot":       {},
	"winedevice.exe": {},
	"services.exe":   {},
}

// RunningProcesses returns the names of Wine processes currently alive on
// the host, excluding this process.
func RunningProcesses() ([]string, error) {
	processes, err := listProcesses()
	if err != nil {
		return nil, err
	}

	var running []string

	for _, process := range processes {
		if _, ok := processNames[process.Executable()]; ok {
			running = append(running, process.Executable())
		}
	}

	return running, nil
}
