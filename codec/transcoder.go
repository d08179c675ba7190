package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/keycase/caseerrors"
	"github.com/erraggy/keycase/humps"
)

// Transcoder converts payload keys. It is safe for concurrent use when its
// converter is.
type Transcoder struct {
	conv         *humps.Converter
	output       Format
	indent       int
	maxInputSize int64
}

// New creates a Transcoder. Without WithConverter it uses a default
// humps.Converter.
func New(opts ...Option) (*Transcoder, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Transcoder{
		conv:         cfg.conv,
		output:       cfg.output,
		indent:       cfg.indent,
		maxInputSize: cfg.maxInputSize,
	}, nil
}

// OutputFormat returns the format Transcode writes for input in format from.
func (t *Transcoder) OutputFormat(from Format) Format {
	if t.output != "" {
		return t.output
	}
	if from == FormatJSONC {
		return FormatJSON
	}
	return from
}

// Transcode converts every mapping key in data, which is encoded in format
// from, and returns the payload encoded in the output format.
//
// Scalars are payload data, never keys: a document that is a bare string or
// null is returned unchanged. Text input is always read into ordered nodes,
// so scalar values keep their source form whatever the output format.
func (t *Transcoder) Transcode(data []byte, from Format, dir humps.Direction) ([]byte, error) {
	if !from.valid() {
		return nil, &caseerrors.ConfigError{Option: "input-format", Value: string(from), Message: "unknown format"}
	}
	if err := t.checkSize(int64(len(data))); err != nil {
		return nil, err
	}
	to := t.OutputFormat(from)

	if !from.IsText() {
		v, err := decodeValue(data, from)
		if err != nil {
			return nil, err
		}
		v, err = t.transformPayload(v, dir)
		if err != nil {
			return nil, err
		}
		return encodeValue(v, to, t.indent)
	}

	docs, err := decodeNodes(data, from)
	if err != nil {
		return nil, err
	}
	out := make([]*yaml.Node, 0, len(docs))
	for _, doc := range docs {
		v, err := t.conv.Transform(doc, dir)
		if err != nil {
			return nil, err
		}
		node := v.(*yaml.Node)
		if to == FormatYAML && from != FormatYAML {
			blockStyle(node)
		}
		out = append(out, node)
	}
	if to.IsText() {
		return encodeNodes(out, to, t.indent)
	}

	if len(out) != 1 {
		return nil, fmt.Errorf("codec: %s output needs exactly one document, got %d", to, len(out))
	}
	v, err := nodeValue(out[0])
	if err != nil {
		return nil, err
	}
	return encodeValue(v, to, t.indent)
}

// TranscodeReader reads the whole payload from r and transcodes it.
func (t *Transcoder) TranscodeReader(r io.Reader, from Format, dir humps.Direction) ([]byte, error) {
	data, err := t.readAll(r)
	if err != nil {
		return nil, err
	}
	return t.Transcode(data, from, dir)
}

func (t *Transcoder) transformPayload(v any, dir humps.Direction) (any, error) {
	switch v.(type) {
	case nil, string:
		return v, nil
	}
	return t.conv.Transform(v, dir)
}

func (t *Transcoder) checkSize(n int64) error {
	if t.maxInputSize > 0 && n > t.maxInputSize {
		return &caseerrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        t.maxInputSize,
			Actual:       n,
		}
	}
	return nil
}

func (t *Transcoder) readAll(r io.Reader) ([]byte, error) {
	if t.maxInputSize > 0 {
		r = io.LimitReader(r, t.maxInputSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: failed to read input: %w", err)
	}
	if err := t.checkSize(int64(len(data))); err != nil {
		return nil, err
	}
	return data, nil
}

// decodeNodes parses a text payload into document nodes. JSON and JSONC
// yield exactly one document; YAML yields one node per document.
func decodeNodes(data []byte, from Format) ([]*yaml.Node, error) {
	if from == FormatJSONC {
		data = jsonc.ToJSON(data)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []*yaml.Node
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &caseerrors.ParseError{Format: string(from), Cause: err}
		}
		docs = append(docs, &doc)
	}
	if from == FormatYAML {
		return docs, nil
	}
	switch len(docs) {
	case 0:
		return nil, &caseerrors.ParseError{Format: string(from), Message: "empty document"}
	case 1:
		return docs, nil
	default:
		return nil, &caseerrors.ParseError{Format: string(from), Message: "unexpected data after top-level value"}
	}
}

// blockStyle clears the flow and quoting styles JSON input carries so the
// YAML encoder picks its own block layout.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func encodeNodes(docs []*yaml.Node, to Format, indent int) ([]byte, error) {
	var buf bytes.Buffer
	if to == FormatYAML {
		enc := yaml.NewEncoder(&buf)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		for _, doc := range docs {
			if err := enc.Encode(doc); err != nil {
				return nil, fmt.Errorf("codec: failed to encode yaml: %w", err)
			}
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("codec: failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	}

	// decodeNodes only yields a single document for JSON input, but YAML
	// streams converted to JSON may carry several.
	if len(docs) != 1 {
		return nil, fmt.Errorf("codec: json output needs exactly one document, got %d", len(docs))
	}
	if err := writeNodeJSON(&buf, docs[0]); err != nil {
		return nil, err
	}
	return finishJSON(buf.Bytes(), indent)
}
