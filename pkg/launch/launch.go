// Package launch builds the server argument vector and hands the process
// over to the server binary.
package launch

import (
	"os"
	"os/exec"
)

// Executor transfers control to the server binary.
type Executor interface {
	// Exec runs the named binary with args. On Unix the current process is
	// replaced and the call never returns on success. On platforms without
	// process replacement the child runs with inherited stdio and any
	// termination error is returned after it exits.
	Exec(name string, args []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// Locator resolves the server binary without launching it.
type Locator interface {
	LookPath(name string) (string, error)
}

// RealLocator searches the actual PATH.
type RealLocator struct{}

func (RealLocator) LookPath(name string) (string, error) {
	return lookPath(name)
}

// lookPath finds the executable in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// environ returns the current environment.
func environ() []string {
	return os.Environ()
}
