// Package interpreter resolves the real interpreter directive from a
// script's header lines.
//
// Shebang lines have an OS-imposed length limit, so scripts whose
// interpreter lives deep in a directory tree put sbang on line 1 and
// the real interpreter on line 2. This package finds that directive.
package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// headerLines is how many lines are scanned for a directive.
const headerLines = 2

// maxLineLen caps how long a header line may be.
const maxLineLen = 1024 * 1024

// ErrNoInterpreter is returned when no directive appears in the
// scanned header lines.
var ErrNoInterpreter = errors.New("no interpreter found")

// Directive is an interpreter command extracted from a header line.
// Raw is the line with its marker stripped, whitespace preserved.
type Directive struct {
	Script string
	Raw    string
}

// Command word-splits the directive into an executable name and its
// arguments. Args is nil when the directive has no arguments. An empty
// directive yields an empty name; the launcher rejects it when it fails
// to look the name up.
func (d Directive) Command() (string, []string) {
	fields := strings.Fields(d.Raw)
	if len(fields) == 0 {
		return "", nil
	}
	if len(fields) == 1 {
		return fields[0], nil
	}
	return fields[0], fields[1:]
}

// Resolve scans the first two lines of the script at path and returns
// the last interpreter directive found. A line starting with "#!"
// always carries a directive. A line starting with "--!" carries one
// only when the line also contains "lua" (Lua comments cannot start
// with '#', so Lua scripts use "--!" for their second-line directive).
// The "lua" substring is matched anywhere in the line, unanchored.
func Resolve(path string) (Directive, error) {
	f, err := os.Open(path) //nolint:gosec // intentional: reading the script being dispatched
	if err != nil {
		return Directive{}, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	var raw string
	found := false

	scanner := bufio.NewScanner(f)
	// Deep interpreter paths are the reason this tool exists, so allow
	// header lines well past bufio's default 64KiB token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for i := 0; i < headerLines && scanner.Scan(); i++ {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "#!"):
			raw = line[len("#!"):]
			found = true
		case strings.HasPrefix(line, "--!") && strings.Contains(line, "lua"):
			raw = line[len("--!"):]
			found = true
		}
	}
	if err := scanner.Err(); err != nil {
		return Directive{}, fmt.Errorf("failed to read script: %w", err)
	}

	if !found {
		return Directive{}, fmt.Errorf("%w in %s", ErrNoInterpreter, path)
	}
	return Directive{Script: path, Raw: raw}, nil
}
