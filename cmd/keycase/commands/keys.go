package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/keycase/humps"
	"github.com/erraggy/keycase/internal/cliutil"
)

// KeyFlags contains flags for the camelize and decamelize commands
type KeyFlags struct {
	Verbose bool
}

// SetupKeyFlags creates and configures a FlagSet for a key conversion
// command named name ("camelize" or "decamelize").
func SetupKeyFlags(name string) (*flag.FlagSet, *KeyFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &KeyFlags{}

	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug diagnostics to stderr")

	example := "user_name item-id"
	if name == "decamelize" {
		example = "userName APIResponse"
	}

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: keycase %s [flags] <key>... | -\n\n", name)
		cliutil.Writef(fs.Output(), "Convert keys and print one result per line.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  keycase %s %s\n", name, example)
		cliutil.Writef(fs.Output(), "  cut -d, -f1 columns.csv | keycase %s -\n", name)
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - All-uppercase and numeric keys (HTTP, 123) are returned unchanged\n")
		cliutil.Writef(fs.Output(), "  - With no keys or '-', keys are read from stdin, one per line\n")
	}

	return fs, flags
}

// HandleCamelize executes the camelize command
func HandleCamelize(args []string, s Streams) error {
	return handleKeys("camelize", humps.ToCamel, args, s)
}

// HandleDecamelize executes the decamelize command
func HandleDecamelize(args []string, s Streams) error {
	return handleKeys("decamelize", humps.ToSnake, args, s)
}

func handleKeys(name string, dir humps.Direction, args []string, s Streams) error {
	fs, flags := SetupKeyFlags(name)
	fs.SetOutput(s.Err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	keys, err := readKeys(fs.Args(), s.In)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fs.Usage()
		return fmt.Errorf("%s command requires at least one key", name)
	}

	logger := NewLogger(s.Err, flags.Verbose)
	results := make([]string, 0, len(keys))
	for _, key := range keys {
		converted := humps.CamelizeKey(key)
		if dir == humps.ToSnake {
			converted = humps.DecamelizeKey(key)
		}
		logger.Debug("converted key", "direction", dir.String(), "from", key, "to", converted)
		results = append(results, converted)
	}
	cliutil.WriteLines(s.Out, results...)
	return nil
}
