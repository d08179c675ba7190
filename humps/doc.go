// Package humps transcodes the keys of JSON-compatible values between
// camelCase and snake_case.
//
// # Overview
//
// An API layer typically calls [Decamelize] on decoded request bodies (the
// frontend speaks camelCase) and [Camelize] on response data before encoding
// it. Only mapping keys are rewritten: string values, numbers, booleans and
// nulls inside a structure pass through untouched, and sequences keep their
// length and order.
//
//	in := map[string]any{
//	    "user_name": "a",
//	    "items":     []any{map[string]any{"item_id": 1}},
//	}
//	out, err := humps.Camelize(in)
//	// out: {"userName": "a", "items": [{"itemId": 1}]}
//
// A bare string is converted directly, which is how single keys are handled:
//
//	humps.CamelizeKey("hello-world_test") // "helloWorldTest"
//	humps.DecamelizeKey("APIResponse")    // "api_response"
//
// All-uppercase strings ("HTTP", "API_KEY") and purely numeric strings are
// fixed points of both directions. A bare nil is treated as the empty string.
//
// # Supported values
//
// Scalars: nil, string, bool, all integer and float kinds, json.Number,
// []byte and time.Time. Sequences: []any, []string and []map[string]any.
// Mappings: map[string]any. Ordered documents: *yaml.Node from
// go.yaml.in/yaml/v4, whose mapping keys keep their document order. Anything
// else fails with a *caseerrors.TypeError naming the offending location.
//
// # Detection
//
// [IsCamelCase] and [IsSnakeCase] are defined as idempotence checks: a value
// is camelCase when camelizing it changes nothing, so detection can never
// disagree with conversion.
//
// # Collisions
//
// Distinct keys can collapse into one ("a-b" and "a_b" both camelize to "aB").
// The last key wins: plain maps are walked in sorted key order, YAML mapping
// nodes in document order. Each collision is reported to the Logger at warn
// level. With [WithStrictKeys] the call fails with a *caseerrors.CollisionError
// instead.
//
// # Configuration
//
// The package-level functions use a default converter. Use [New] with
// options for logging, strict keys, a nesting limit or a key cache:
//
//	conv, err := humps.New(
//	    humps.WithLogger(humps.NewSlogAdapter(slog.Default())),
//	    humps.WithMaxDepth(64),
//	    humps.WithKeyCache(4096, time.Hour),
//	)
//	if err != nil {
//	    return err
//	}
//	defer conv.Close()
//
// Converters are safe for concurrent use and never modify their input.
package humps
