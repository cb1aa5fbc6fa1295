// Package output prints resolved interpreter commands for the resolve
// subcommand, with colors when the terminal supports them.
package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"
)

var (
	green = "\033[32m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, dim, reset = "", "", ""
	}
}

// PrintResolved outputs the interpreter resolved for a script.
func PrintResolved(script, name string, args []string) {
	fmt.Printf("%s[OK]%s %s\n", green, reset, script)
	fmt.Printf("     %s %s\n", label("interpreter:"), name)
	if len(args) > 0 {
		fmt.Printf("     %s %s\n", label("args:"), strings.Join(args, " "))
	}
}

func label(s string) string {
	return dim + s + reset
}
