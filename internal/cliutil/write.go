// Package cliutil provides output helpers for the keycase CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines ...string) {
	for _, line := range lines {
		Writef(w, "%s\n", line)
	}
}

// WriteError reports a command failure in the CLI's "Error: ..." form.
func WriteError(w io.Writer, err error) {
	Writef(w, "Error: %v\n", err)
}
