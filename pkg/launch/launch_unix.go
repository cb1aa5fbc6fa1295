//go:build unix

package launch

import (
	"syscall"
)

// execFunc is replaceable in tests; syscall.Exec never returns on success.
var execFunc = syscall.Exec

// Launch replaces the current process with the interpreter.
func (e *RealExecutor) Launch(name string, args []string) error {
	binary, err := lookPath(name)
	if err != nil {
		return err
	}

	// argv[0] must be the program name by convention.
	argv := append([]string{name}, args...)
	// #nosec G204 -- This is intentional: the command comes from the
	// script's own header line, which is under user control.
	return execFunc(binary, argv, environ())
}
