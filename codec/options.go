package codec

import (
	"github.com/erraggy/keycase/caseerrors"
	"github.com/erraggy/keycase/humps"
)

// MaxIndent is the widest indentation accepted by WithIndent.
const MaxIndent = 8

// Option is a function that configures a Transcoder
type Option func(*transcoderConfig) error

// transcoderConfig holds configuration for a Transcoder
type transcoderConfig struct {
	conv *humps.Converter

	// Empty means "same family as the input"
	output Format

	// JSON: 0 means compact. YAML: 0 means the encoder default.
	indent int

	// 0 means unlimited
	maxInputSize int64
}

func applyOptions(opts ...Option) (*transcoderConfig, error) {
	cfg := &transcoderConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.conv == nil {
		conv, err := humps.New()
		if err != nil {
			return nil, err
		}
		cfg.conv = conv
	}
	return cfg, nil
}

// WithConverter sets the key converter used for every payload.
// The Transcoder does not take ownership; closing the converter is the
// caller's job.
func WithConverter(conv *humps.Converter) Option {
	return func(cfg *transcoderConfig) error {
		if conv == nil {
			return &caseerrors.ConfigError{Option: "converter", Message: "must not be nil"}
		}
		cfg.conv = conv
		return nil
	}
}

// WithOutputFormat selects the output encoding. By default text input is
// written back in its own format (JSONC becomes JSON) and binary input keeps
// its format.
func WithOutputFormat(f Format) Option {
	return func(cfg *transcoderConfig) error {
		if !f.valid() {
			return &caseerrors.ConfigError{Option: "output-format", Value: string(f), Message: "unknown format"}
		}
		cfg.output = f
		return nil
	}
}

// WithIndent sets the number of spaces used to indent JSON and YAML output.
func WithIndent(n int) Option {
	return func(cfg *transcoderConfig) error {
		if n < 0 || n > MaxIndent {
			return &caseerrors.ConfigError{Option: "indent", Value: n, Message: "must be between 0 and 8"}
		}
		cfg.indent = n
		return nil
	}
}

// WithMaxInputSize rejects payloads larger than n bytes with a
// *caseerrors.ResourceLimitError. Zero disables the check.
func WithMaxInputSize(n int64) Option {
	return func(cfg *transcoderConfig) error {
		if n < 0 {
			return &caseerrors.ConfigError{Option: "max-input-size", Value: n, Message: "must not be negative"}
		}
		cfg.maxInputSize = n
		return nil
	}
}
