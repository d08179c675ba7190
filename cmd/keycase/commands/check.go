package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/keycase/humps"
	"github.com/erraggy/keycase/internal/cliutil"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	Case  string
	Quiet bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.StringVar(&flags.Case, "c", "", "expected case: camel or snake (required)")
	fs.StringVar(&flags.Case, "case", "", "expected case: camel or snake (required)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: print nothing, only set the exit code")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: print nothing, only set the exit code")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: keycase check --case camel|snake [flags] <key>... | -\n\n")
		cliutil.Writef(fs.Output(), "Report whether each key is already in the requested case.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  keycase check --case camel userName user_name\n")
		cliutil.Writef(fs.Output(), "  keycase check -q -c snake created_at && echo ok\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - A key is in a case when converting it to that case changes nothing\n")
		cliutil.Writef(fs.Output(), "  - HTTP and 123 are therefore both camel and snake case\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Every key is in the requested case\n")
		cliutil.Writef(fs.Output(), "  1    At least one key is not, or the command failed\n")
	}

	return fs, flags
}

// HandleCheck executes the check command. It returns ErrCheckFailed when
// any key is not in the requested case.
func HandleCheck(args []string, s Streams) error {
	fs, flags := SetupCheckFlags()
	fs.SetOutput(s.Err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Case == "" {
		fs.Usage()
		return fmt.Errorf("case is required (use -c or --case)")
	}
	dir, err := humps.ParseDirection(flags.Case)
	if err != nil {
		return err
	}

	keys, err := readKeys(fs.Args(), s.In)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fs.Usage()
		return fmt.Errorf("check command requires at least one key")
	}

	failed := 0
	for _, key := range keys {
		ok := humps.IsCamelCase(key)
		if dir == humps.ToSnake {
			ok = humps.IsSnakeCase(key)
		}
		if !ok {
			failed++
		}
		if !flags.Quiet {
			cliutil.Writef(s.Out, "%s: %t\n", key, ok)
		}
	}

	if failed > 0 {
		return ErrCheckFailed
	}
	return nil
}
