//go:build windows

package launch

import "os/exec"

func exitCode(err *exec.ExitError) int {
	return err.ExitCode()
}
