package mcpserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/url"
	"os"

	"github.com/erraggy/keycase/codec"
	"github.com/erraggy/keycase/internal/options"
)

// payloadInput represents the three ways a payload can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type payloadInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a payload file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch the payload from"`
	Content string `json:"content,omitempty" jsonschema:"Inline payload. Text for json/jsonc/yaml; base64 for msgpack and cbor"`
}

// contentTypeFormats maps response media types to payload formats.
var contentTypeFormats = map[string]codec.Format{
	"application/json":      codec.FormatJSON,
	"application/yaml":      codec.FormatYAML,
	"application/x-yaml":    codec.FormatYAML,
	"text/yaml":             codec.FormatYAML,
	"application/msgpack":   codec.FormatMsgPack,
	"application/x-msgpack": codec.FormatMsgPack,
	"application/cbor":      codec.FormatCBOR,
}

// resolve loads the payload bytes. from is the declared format, or empty to
// detect one; the returned format is the one to decode with.
func (p payloadInput) resolve(ctx context.Context, from codec.Format) ([]byte, codec.Format, error) {
	if err := options.ValidateSingleInputSource(
		"exactly one of file, url, or content must be provided",
		"only one of file, url, or content may be provided",
		p.File != "", p.URL != "", p.Content != "",
	); err != nil {
		return nil, "", err
	}

	switch {
	case p.File != "":
		info, err := os.Stat(p.File)
		if err != nil {
			return nil, "", err
		}
		if info.Size() > cfg.MaxInputSize {
			return nil, "", fmt.Errorf("file size %d bytes exceeds maximum %d bytes; set KEYCASE_MAX_INPUT_SIZE to increase", info.Size(), cfg.MaxInputSize)
		}
		data, err := os.ReadFile(p.File)
		if err != nil {
			return nil, "", err
		}
		if from == "" {
			from = detectFormat(p.File, data)
		}
		return data, from, nil

	case p.URL != "":
		data, contentType, err := fetchPayload(ctx, httpClient(), p.URL, cfg.MaxInputSize)
		if err != nil {
			return nil, "", err
		}
		if from == "" {
			from = formatFromURL(p.URL, contentType, data)
		}
		return data, from, nil
	}

	if int64(len(p.Content)) > cfg.MaxInputSize {
		return nil, "", fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set KEYCASE_MAX_INPUT_SIZE to increase",
			len(p.Content), cfg.MaxInputSize)
	}
	if from == "" {
		from = sniffTextFormat([]byte(p.Content))
	}
	if from.IsText() {
		return []byte(p.Content), from, nil
	}
	data, err := base64.StdEncoding.DecodeString(p.Content)
	if err != nil {
		return nil, "", fmt.Errorf("%s content must be base64 encoded: %w", from, err)
	}
	return data, from, nil
}

func detectFormat(path string, data []byte) codec.Format {
	if f, ok := codec.FormatFromPath(path); ok {
		return f
	}
	return sniffTextFormat(data)
}

func formatFromURL(rawURL, contentType string, data []byte) codec.Format {
	if u, err := url.Parse(rawURL); err == nil {
		if f, ok := codec.FormatFromPath(u.Path); ok {
			return f
		}
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if f, ok := contentTypeFormats[mediaType]; ok {
			return f
		}
	}
	return sniffTextFormat(data)
}

// sniffTextFormat treats text starting with an object or array as JSON and
// anything else as YAML.
func sniffTextFormat(data []byte) codec.Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return codec.FormatJSON
	}
	return codec.FormatYAML
}
