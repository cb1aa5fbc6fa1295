package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/sbang/pkg/interpreter"
	"github.com/vertti/sbang/pkg/launch"
)

var runCmd = &cobra.Command{
	Use:   "run <script> [args...]",
	Short: "Resolve a script's interpreter and launch it",
	Args:  cobra.MinimumNArgs(1),
	// Everything after the script belongs to the interpreter, so no
	// flag parsing here.
	DisableFlagParsing: true,
	RunE: func(_ *cobra.Command, args []string) error {
		runScript(args[0], args[1:])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runScript resolves the script's interpreter and hands the process
// over to it. It never returns: on Unix the process image is replaced,
// everywhere else it exits with the interpreter's exact exit code.
func runScript(script string, scriptArgs []string) {
	os.Exit(launchScript(script, scriptArgs, &launch.RealExecutor{}, os.Stderr))
}

// launchScript resolves and launches, reporting failures to stderr and
// returning the process exit code for the cases where the process image
// was not replaced.
func launchScript(script string, scriptArgs []string, executor launch.Executor, stderr io.Writer) int {
	directive, err := interpreter.Resolve(script)
	if err != nil {
		if errors.Is(err, interpreter.ErrNoInterpreter) {
			fmt.Fprintf(stderr, "error: sbang found no interpreter in %s\n", script)
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}

	name, directiveArgs := directive.Command()

	err = executor.Launch(name, launch.Argv(directiveArgs, script, scriptArgs))
	if err != nil {
		var exitErr *launch.ExitStatusError
		if errors.As(err, &exitErr) {
			// Spawn-and-wait platforms: propagate the child's code.
			return exitErr.Code
		}
		fmt.Fprintf(stderr, "error: failed to launch %q: %v\n", name, err)
		return 1
	}

	// Spawn-and-wait platforms reach here when the interpreter exits zero.
	return 0
}
