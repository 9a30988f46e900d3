//go:build unix

package launch

import (
	"syscall"
)

// Swappable so tests can observe the exec call without leaving the process.
var execFunc = syscall.Exec

// Exec replaces the current process image with the server binary.
// argv[0] must be the program name by convention.
func (e *RealExecutor) Exec(name string, args []string) error {
	binary, err := lookPath(name)
	if err != nil {
		return err
	}

	argv := append([]string{name}, args...)
	return execFunc(binary, argv, environ())
}
