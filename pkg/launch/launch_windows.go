//go:build windows

package launch

import (
	"errors"
	"os"
	"os/exec"
)

// Launch emulates process replacement by spawn-and-wait: Windows has no
// exec syscall, so the interpreter runs as a child with inherited stdio
// and its exact exit code is reported via *ExitStatusError.
func (e *RealExecutor) Launch(name string, args []string) error {
	binary, err := lookPath(name)
	if err != nil {
		return err
	}

	// #nosec G204 -- This is intentional: the command comes from the
	// script's own header line, which is under user control.
	cmd := exec.Command(binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = environ()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitStatusError{Code: exitErr.ExitCode()}
		}
		return err
	}
	return nil
}
