package codec

import (
	"path/filepath"
	"strings"

	"github.com/erraggy/keycase/caseerrors"
)

// Format identifies a payload encoding.
type Format string

const (
	// FormatJSON is plain JSON.
	FormatJSON Format = "json"
	// FormatJSONC is JSON with comments and trailing commas. Output in this
	// format is plain JSON.
	FormatJSONC Format = "jsonc"
	// FormatYAML is YAML; multi-document streams are supported.
	FormatYAML Format = "yaml"
	// FormatMsgPack is MessagePack.
	FormatMsgPack Format = "msgpack"
	// FormatCBOR is CBOR (RFC 8949); output uses core deterministic encoding.
	FormatCBOR Format = "cbor"
)

var formatAliases = map[string]Format{
	"json":        FormatJSON,
	"jsonc":       FormatJSONC,
	"yaml":        FormatYAML,
	"yml":         FormatYAML,
	"msgpack":     FormatMsgPack,
	"messagepack": FormatMsgPack,
	"mpk":         FormatMsgPack,
	"cbor":        FormatCBOR,
}

var extensionFormats = map[string]Format{
	".json":    FormatJSON,
	".jsonc":   FormatJSONC,
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".msgpack": FormatMsgPack,
	".mpk":     FormatMsgPack,
	".cbor":    FormatCBOR,
}

// ValidFormats returns the canonical format names.
func ValidFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatJSONC),
		string(FormatYAML),
		string(FormatMsgPack),
		string(FormatCBOR),
	}
}

// ParseFormat parses a format name. Matching is case-insensitive and accepts
// the common aliases "yml", "messagepack" and "mpk".
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", &caseerrors.ConfigError{
		Option:  "format",
		Value:   s,
		Message: "must be one of " + strings.Join(ValidFormats(), ", "),
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	f, ok := extensionFormats[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// IsText reports whether the format is a text format that keeps key order.
func (f Format) IsText() bool {
	switch f {
	case FormatJSON, FormatJSONC, FormatYAML:
		return true
	}
	return false
}

func (f Format) valid() bool {
	_, ok := formatAliases[string(f)]
	return ok && formatAliases[string(f)] == f
}
