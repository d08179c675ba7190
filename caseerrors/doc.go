// Package caseerrors provides structured error types for the keycase library.
//
// Import path: github.com/erraggy/keycase/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a programmer error (an unsupported Go type handed to
// the transcoder) apart from bad input data or a misconfigured converter.
//
// # Error Types
//
//   - [TypeError]: a value outside the transcodable set (scalars, slices, string-keyed maps, YAML nodes)
//   - [CollisionError]: two keys of one mapping transcode to the same key (strict mode only)
//   - [ResourceLimitError]: nesting deeper than the configured maximum
//   - [ParseError]: a payload that could not be decoded in the declared format
//   - [ConfigError]: invalid options or inputs
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrUnsupportedType]: Matches any [TypeError]
//   - [ErrKeyCollision]: Matches any [CollisionError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	out, err := humps.Camelize(payload)
//	if err != nil {
//	    var typeErr *caseerrors.TypeError
//	    if errors.As(err, &typeErr) {
//	        log.Printf("cannot transcode %s at %s", typeErr.Type, typeErr.Path)
//	    }
//	}
package caseerrors
