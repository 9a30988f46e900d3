package launch

import (
	"errors"
	"os/exec"
)

// ExitStatus reports the exit code the launcher should adopt for a child
// that ran and terminated. ok is false when err does not describe a child
// exit (lookup failures, spawn failures).
func ExitStatus(err error) (code int, ok bool) {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, false
	}
	return exitCode(exitErr), true
}
