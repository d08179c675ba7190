// Package commands provides CLI command handlers for keycase.
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/keycase/humps"
	"github.com/erraggy/keycase/internal/fileutil"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ErrCheckFailed is returned by HandleCheck when at least one key is not in
// the requested case. The command has already reported which keys failed.
var ErrCheckFailed = errors.New("one or more keys failed the case check")

// Streams bundles the standard streams a command reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// FormatInputPath returns a display-friendly path for an input file.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// NewLogger returns a text logger writing diagnostics to w. Debug messages
// are only emitted when verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// converterOptions builds humps options shared by the commands.
func converterOptions(logger *slog.Logger, strict bool, maxDepth int) []humps.Option {
	return []humps.Option{
		humps.WithLogger(humps.NewSlogAdapter(logger)),
		humps.WithStrictKeys(strict),
		humps.WithMaxDepth(maxDepth),
	}
}

// readKeys returns the keys named on the command line. A lone "-" (or no
// arguments at all) reads newline-separated keys from in; blank lines are
// skipped.
func readKeys(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == StdinFilePath) {
		return args, nil
	}
	var keys []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading keys from stdin: %w", err)
	}
	return keys, nil
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath, inputPath string) error {
	if inputPath == StdinFilePath {
		inputPath = ""
	}
	return fileutil.ValidateOutputPath(outputPath, inputPath)
}
