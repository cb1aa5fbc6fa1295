package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vertti/sbang/pkg/interpreter"
	"github.com/vertti/sbang/pkg/launch"
	"github.com/vertti/sbang/pkg/output"
)

var (
	resolveJSON    bool
	resolveVerbose bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <script>",
	Short: "Show the interpreter a script would be launched with",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "print the resolved command as JSON")
	resolveCmd.Flags().BoolVarP(&resolveVerbose, "verbose", "v", false, "log resolution steps to stderr")
	rootCmd.AddCommand(resolveCmd)
}

// resolvedCommand is the shape emitted with --json.
type resolvedCommand struct {
	Script      string   `json:"script"`
	Interpreter string   `json:"interpreter"`
	Args        []string `json:"args"`
	Argv        []string `json:"argv"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	script := args[0]

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if resolveVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	logger.Debug("scanning script header", "script", script)
	directive, err := interpreter.Resolve(script)
	if err != nil {
		if errors.Is(err, interpreter.ErrNoInterpreter) {
			return fmt.Errorf("sbang found no interpreter in %s", script)
		}
		return err
	}
	logger.Debug("directive found", "raw", directive.Raw)

	name, directiveArgs := directive.Command()
	logger.Debug("assembled command", "interpreter", name, "args", directiveArgs)

	if resolveJSON {
		if directiveArgs == nil {
			directiveArgs = []string{}
		}
		out, err := json.Marshal(resolvedCommand{
			Script:      script,
			Interpreter: name,
			Args:        directiveArgs,
			Argv:        launch.Argv(directiveArgs, script, nil),
		})
		if err != nil {
			return err
		}
		cmd.Println(string(out))
		return nil
	}

	output.PrintResolved(script, name, directiveArgs)
	return nil
}
