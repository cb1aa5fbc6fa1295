package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "sbang",
	Short: "Run scripts whose interpreter path is too long for a shebang line",
	Long: `sbang works around the OS limit on shebang line length.

Scripts whose interpreter lives too deep in a directory tree put a short
sbang path on line 1 and the real interpreter directive on line 2:

  #!/bin/sh /opt/sbang/bin/sbang
  #!/very/long/prefix/bin/python3

The kernel invokes sbang, sbang reads the second line and execs the real
interpreter with the script and all trailing arguments. Lua scripts use
"--!" on line 2 since Lua comments cannot start with '#'.`,
	Version: Version,
}

// fileChecker reports whether a path names an existing regular file.
type fileChecker func(path string) bool

func realFileChecker(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// dispatchScript decides whether argv names a script to dispatch rather
// than a subcommand. Script invocations bypass cobra entirely: trailing
// arguments must reach the interpreter untouched, not be parsed as flags.
func dispatchScript(args []string, exists fileChecker) (string, []string) {
	if len(args) < 2 {
		return "", nil
	}

	first := args[1]
	if strings.HasPrefix(first, "-") {
		return "", nil
	}

	knownSubcommands := []string{"run", "resolve", "version", "help", "completion"}
	for _, sub := range knownSubcommands {
		if first == sub {
			return "", nil
		}
	}

	if !exists(first) {
		return "", nil
	}
	return first, args[2:]
}

func main() {
	if script, scriptArgs := dispatchScript(os.Args, realFileChecker); script != "" {
		runScript(script, scriptArgs)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
