package platform

import "os/exec"

// lookPath thinly wraps exec.LookPath so tests can substitute it.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}
