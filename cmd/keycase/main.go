package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agnivade/levenshtein"

	"github.com/erraggy/keycase"
	"github.com/erraggy/keycase/cmd/keycase/commands"
	"github.com/erraggy/keycase/internal/cliutil"
	"github.com/erraggy/keycase/internal/mcpserver"
)

// commandNames lists the subcommands offered as typo suggestions.
var commandNames = []string{
	"camelize",
	"decamelize",
	"check",
	"transcode",
	"mcp",
	"version",
	"help",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]
	streams := commands.StdStreams()

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("keycase v%s\n", keycase.Version())
		if len(args) > 0 && (args[0] == "-l" || args[0] == "--long") {
			fmt.Println(keycase.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "camelize":
		exitOnError(commands.HandleCamelize(args, streams))
	case "decamelize":
		exitOnError(commands.HandleDecamelize(args, streams))
	case "check":
		exitOnError(commands.HandleCheck(args, streams))
	case "transcode":
		exitOnError(commands.HandleTranscode(args, streams))
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := mcpserver.Run(ctx)
		stop()
		exitOnError(err)
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	// check has already reported its failures; only the exit code is left.
	if !errors.Is(err, commands.ErrCheckFailed) {
		cliutil.WriteError(os.Stderr, err)
	}
	os.Exit(1)
}

// suggestCommand returns the closest known command within an edit distance
// of 2, or "" when nothing is that close.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDistance {
			best = name
			bestDistance = d
		}
	}
	return best
}

func printUsage() {
	fmt.Println(`keycase - camelCase / snake_case key transcoder

Usage:
  keycase <command> [options]

Commands:
  camelize    Convert keys to camelCase
  decamelize  Convert keys to snake_case
  check       Report whether keys are already camelCase or snake_case
  transcode   Convert every object key in a JSON, YAML, MessagePack or CBOR payload
  mcp         Start the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  keycase camelize user_name hello-world_test
  keycase decamelize APIResponse
  keycase check --case snake created_at
  keycase transcode --to snake --indent 2 request.json
  keycase transcode --to camel --from yaml --format json - < rows.yaml

Run 'keycase <command> --help' for more information on a command.`)
}
