// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes keycase conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/keycase"
	"github.com/erraggy/keycase/humps"
)

const serverInstructions = `keycase MCP server: converts object keys between camelCase and snake_case.

Conversion rules: only object keys change, never string values. All-uppercase keys (HTTP, API_V2) and numeric keys (123) are left as they are. Leading acronyms survive camelize (HTTPServer stays HTTPServer); decamelize lower-cases them (APIResponse becomes api_response). When two keys of one object convert to the same key the last one wins, unless strict mode is enabled.

Configuration: All defaults are configurable via KEYCASE_* environment variables set in your MCP client config.

Key settings:
- KEYCASE_STRICT_KEYS (default: false) - fail on key collisions instead of keeping the last key
- KEYCASE_MAX_DEPTH (default: 512) - maximum nesting depth of converted values
- KEYCASE_KEY_CACHE_ENABLED (default: true) - memoize key conversions
- KEYCASE_KEY_CACHE_SIZE (default: 10000) - maximum cached key conversions
- KEYCASE_KEY_CACHE_TTL (default: 10m) - lifetime of a cached key conversion
- KEYCASE_MAX_INPUT_SIZE (default: 10485760) - maximum payload size in bytes
- KEYCASE_MAX_KEYS (default: 1000) - maximum keys per camelize/decamelize/detect_case call
- KEYCASE_ALLOW_PRIVATE_IPS (default: false) - allow url payloads on private networks`

// keycaseServer holds the state shared by every tool call.
type keycaseServer struct {
	conv *humps.Converter
}

func newKeycaseServer(c *serverConfig) (*keycaseServer, error) {
	conv, err := humps.New(c.converterOptions()...)
	if err != nil {
		return nil, err
	}
	return &keycaseServer{conv: conv}, nil
}

// close releases the key cache.
func (s *keycaseServer) close() {
	s.conv.Close()
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	ks, err := newKeycaseServer(cfg)
	if err != nil {
		return err
	}
	defer ks.close()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "keycase", Version: keycase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	ks.registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func (s *keycaseServer) registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "camelize",
		Description: "Convert keys to camelCase. Pass keys for a list of key strings, or value for a JSON value whose object keys are converted recursively (string values are never changed). user_name becomes userName; hello-world_test becomes helloWorldTest.",
	}, s.handleCamelize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "decamelize",
		Description: "Convert keys to snake_case. Pass keys for a list of key strings, or value for a JSON value whose object keys are converted recursively (string values are never changed). userName becomes user_name; APIResponse becomes api_response.",
	}, s.handleDecamelize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_case",
		Description: "Report whether keys (or every object key in a JSON value) are already camelCase and/or snake_case. A key is in a case when converting it to that case changes nothing, so HTTP and 123 are both.",
	}, s.handleDetectCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "transcode",
		Description: "Convert every object key in a JSON, JSONC, YAML, MessagePack or CBOR payload. Provide the payload as exactly one of file, url, or content. JSON and YAML output keeps the input key order and number formatting. Binary output is returned base64 encoded unless output names a file.",
	}, s.handleTranscode)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
