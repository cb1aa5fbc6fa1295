// Package launch hands the process over to a resolved interpreter.
package launch

import (
	"os"
	"os/exec"
	"strconv"
)

// Executor launches the interpreter command assembled from a directive.
type Executor interface {
	// Launch invokes name with args. On Unix the current process image
	// is replaced via syscall.Exec and the call does not return on
	// success. On Windows the interpreter runs as a child with inherited
	// stdio; a nonzero child exit is reported as *ExitStatusError so the
	// caller can propagate the exact code.
	Launch(name string, args []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// ExitStatusError carries the exit code of an interpreter that ran by
// spawn-and-wait rather than process replacement.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return "interpreter exited with status " + strconv.Itoa(e.Code)
}

// Argv assembles the argument vector the interpreter receives: the
// directive's own arguments, then the script path, then the arguments
// the script was invoked with.
func Argv(directiveArgs []string, script string, scriptArgs []string) []string {
	argv := make([]string, 0, len(directiveArgs)+1+len(scriptArgs))
	argv = append(argv, directiveArgs...)
	argv = append(argv, script)
	argv = append(argv, scriptArgs...)
	return argv
}

// lookPath finds the executable in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// environ returns the current environment.
func environ() []string {
	return os.Environ()
}
