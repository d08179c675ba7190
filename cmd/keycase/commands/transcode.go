package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/erraggy/keycase/codec"
	"github.com/erraggy/keycase/humps"
	"github.com/erraggy/keycase/internal/cliutil"
	"github.com/erraggy/keycase/internal/fileutil"
)

// TranscodeFlags contains flags for the transcode command
type TranscodeFlags struct {
	To           string
	From         string
	Format       string
	Output       string
	Indent       int
	Strict       bool
	MaxDepth     int
	MaxInputSize int64
	Verbose      bool
}

// SetupTranscodeFlags creates and configures a FlagSet for the transcode command.
// Returns the FlagSet and a TranscodeFlags struct with bound flag variables.
func SetupTranscodeFlags() (*flag.FlagSet, *TranscodeFlags) {
	fs := flag.NewFlagSet("transcode", flag.ContinueOnError)
	flags := &TranscodeFlags{}
	formats := strings.Join(codec.ValidFormats(), ", ")

	fs.StringVar(&flags.To, "t", "", "target key case: camel or snake (required)")
	fs.StringVar(&flags.To, "to", "", "target key case: camel or snake (required)")
	fs.StringVar(&flags.From, "from", "", "input format: "+formats+" (default: from file extension, else json)")
	fs.StringVar(&flags.Format, "format", "", "output format (default: same as input)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.IntVar(&flags.Indent, "indent", 0, "indent JSON and YAML output by this many spaces")
	fs.BoolVar(&flags.Strict, "strict", false, "fail when two keys of one object convert to the same key")
	fs.IntVar(&flags.MaxDepth, "max-depth", 0, "maximum container nesting depth (0 = unlimited)")
	fs.Int64Var(&flags.MaxInputSize, "max-size", 0, "maximum input size in bytes (0 = unlimited)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug diagnostics to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: keycase transcode --to camel|snake [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Convert every object key in a payload, leaving values untouched.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  keycase transcode --to snake request.json\n")
		cliutil.Writef(fs.Output(), "  keycase transcode --to camel --format json --indent 2 -o response.json rows.yaml\n")
		cliutil.Writef(fs.Output(), "  curl -s $URL | keycase transcode --to snake -\n")
		cliutil.Writef(fs.Output(), "  keycase transcode --to camel --from msgpack --format json - < payload.bin\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - JSON and YAML output keeps the input key order; comments survive YAML to YAML\n")
		cliutil.Writef(fs.Output(), "  - When keys collide the last one wins and a warning is logged, unless --strict\n")
	}

	return fs, flags
}

// HandleTranscode executes the transcode command
func HandleTranscode(args []string, s Streams) error {
	fs, flags := SetupTranscodeFlags()
	fs.SetOutput(s.Err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("transcode command requires exactly one file path or '-' for stdin")
	}
	inputPath := fs.Arg(0)

	if flags.To == "" {
		fs.Usage()
		return fmt.Errorf("target case is required (use -t or --to)")
	}
	dir, err := humps.ParseDirection(flags.To)
	if err != nil {
		return err
	}

	from, err := inputFormat(flags.From, inputPath)
	if err != nil {
		return err
	}

	logger := NewLogger(s.Err, flags.Verbose)
	conv, err := humps.New(converterOptions(logger, flags.Strict, flags.MaxDepth)...)
	if err != nil {
		return err
	}
	defer conv.Close()

	opts := []codec.Option{
		codec.WithConverter(conv),
		codec.WithIndent(flags.Indent),
		codec.WithMaxInputSize(flags.MaxInputSize),
	}
	if flags.Format != "" {
		to, err := codec.ParseFormat(flags.Format)
		if err != nil {
			return err
		}
		opts = append(opts, codec.WithOutputFormat(to))
	}
	t, err := codec.New(opts...)
	if err != nil {
		return err
	}

	startTime := time.Now()
	var data []byte
	if inputPath == StdinFilePath {
		data, err = t.TranscodeReader(s.In, from, dir)
	} else {
		data, err = transcodeFile(t, inputPath, from, dir)
	}
	if err != nil {
		return fmt.Errorf("transcoding %s: %w", FormatInputPath(inputPath), err)
	}
	logger.Debug("transcoded payload",
		"input", FormatInputPath(inputPath),
		"from", string(from),
		"to", string(t.OutputFormat(from)),
		"direction", dir.String(),
		"bytes", len(data),
		"elapsed", time.Since(startTime),
	)

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, inputPath); err != nil {
			return err
		}
		if err := fileutil.WriteOutput(flags.Output, data); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		logger.Debug("output written", "path", flags.Output)
		return nil
	}

	if _, err := s.Out.Write(data); err != nil {
		return fmt.Errorf("writing transcoded payload to stdout: %w", err)
	}
	return nil
}

func transcodeFile(t *codec.Transcoder, path string, from codec.Format, dir humps.Direction) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // G304 - user-supplied input path is the point of a CLI
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return t.TranscodeReader(f, from, dir)
}

// inputFormat resolves the input format from the --from flag, then the file
// extension, falling back to JSON.
func inputFormat(name, path string) (codec.Format, error) {
	if name != "" {
		return codec.ParseFormat(name)
	}
	if f, ok := codec.FormatFromPath(path); ok {
		return f, nil
	}
	return codec.FormatJSON, nil
}
