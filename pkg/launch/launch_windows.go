//go:build windows

package launch

import (
	"os"
	"os/exec"
)

// Exec emulates process replacement. Windows has no exec syscall, so the
// child runs with inherited stdio and the caller adopts its exit status from
// the returned *exec.ExitError.
func (e *RealExecutor) Exec(name string, args []string) error {
	binary, err := lookPath(name)
	if err != nil {
		return err
	}

	// #nosec G204 -- launching the configured server binary is the whole point.
	cmd := exec.Command(binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
