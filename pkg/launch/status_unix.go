//go:build unix

package launch

import (
	"os/exec"
	"syscall"
)

// A signaled child maps to the conventional 128+signal shell encoding.
func exitCode(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return err.ExitCode()
}
