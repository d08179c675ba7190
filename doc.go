// Package keycase converts object keys between camelCase and snake_case.
//
// Web services commonly speak camelCase JSON to their clients while their
// own data structures use snake_case names. keycase converts the keys of
// whole payloads in either direction and leaves every value alone.
//
// # Overview
//
// The module consists of these packages:
//
//   - humps: key conversion over Go values (maps, slices, scalars) and
//     ordered YAML documents, plus case detection
//   - codec: payload transcoding for JSON, JSONC, YAML, MessagePack and
//     CBOR, and request/response helpers for HTTP handlers
//   - caseerrors: typed errors shared by the packages above
//
// The keycase command wraps these packages for shell use and as an MCP
// server.
//
// # Quick Start
//
// Convert a decoded JSON value:
//
//	import "github.com/erraggy/keycase/humps"
//
//	out, err := humps.Decamelize(map[string]any{
//		"userName": "a",
//		"items":    []any{map[string]any{"itemId": 1}},
//	})
//	// out: map[string]any{"user_name": "a", "items": []any{map[string]any{"item_id": 1}}}
//
// Convert keys one at a time:
//
//	humps.CamelizeKey("hello-world_test") // "helloWorldTest"
//	humps.DecamelizeKey("APIResponse")    // "api_response"
//
// Transcode a payload while keeping key order:
//
//	import "github.com/erraggy/keycase/codec"
//
//	t, _ := codec.New(codec.WithIndent(2))
//	out, err := t.Transcode(body, codec.FormatJSON, humps.ToSnake)
//
// # Conversion Rules
//
// Only mapping keys change. String values inside containers are never
// touched; a bare top-level string is converted as a key. All-uppercase
// keys (HTTP, API_V2) and numeric keys (123) are fixed points of both
// directions. Acronyms do not round-trip: decamelize lower-cases them, so
// camelize cannot recover their case.
//
// When two keys of one mapping convert to the same key, the last one wins
// and a warning is logged; humps.WithStrictKeys turns that into an error.
//
// # Command Line
//
//	keycase camelize user_name item-id
//	keycase decamelize APIResponse
//	keycase check --case snake created_at
//	keycase transcode --to snake --indent 2 request.json
//	keycase mcp
package keycase
