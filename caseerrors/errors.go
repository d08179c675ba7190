package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrUnsupportedType indicates a value the transcoder does not know how to walk.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrKeyCollision indicates two keys collapsed into one.
	ErrKeyCollision = errors.New("key collision")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrParse indicates a payload could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// TypeError reports a value outside the set of transcodable shapes.
// It is a programmer error: the caller handed over something that is not
// JSON-compatible data.
type TypeError struct {
	// Path is the location of the value (e.g., "$.items[0].price")
	Path string
	// Type is the Go type of the offending value
	Type string
}

// Error returns a human-readable error message.
func (e *TypeError) Error() string {
	msg := "unsupported type"
	if e.Type != "" {
		msg += " " + e.Type
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Unwrap returns nil as TypeError has no underlying cause.
func (e *TypeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *TypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// CollisionError reports that distinct keys of one mapping produced the same
// transcoded key.
type CollisionError struct {
	// Path is the location of the mapping
	Path string
	// Key is the transcoded key both sources collapsed into
	Key string
	// Sources are the original keys, in the order they were visited
	Sources []string
}

// Error returns a human-readable error message.
func (e *CollisionError) Error() string {
	msg := "key collision"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Key != "" {
		msg += fmt.Sprintf(": %q", e.Key)
	}
	if len(e.Sources) > 0 {
		msg += fmt.Sprintf(" from %q", e.Sources)
	}
	return msg
}

// Unwrap returns nil as CollisionError has no underlying cause.
func (e *CollisionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *CollisionError) Is(target error) bool {
	return target == ErrKeyCollision
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded (e.g., "nesting_depth", "input_size")
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ParseError represents a failure to decode a payload.
type ParseError struct {
	// Format is the declared payload format (e.g., "json", "yaml", "cbor")
	Format string
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg = e.Format + " " + msg
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
