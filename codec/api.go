package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/keycase/humps"
)

var std = mustNew()

func mustNew() *Transcoder {
	t, err := New()
	if err != nil {
		panic("codec: default transcoder: " + err.Error())
	}
	return t
}

// DecodeRequest reads a camelCase JSON body from r, converts its keys to
// snake_case and decodes the result into v.
func DecodeRequest(r io.Reader, v any) error {
	return std.DecodeRequest(r, v)
}

// EncodeResponse writes v to w as JSON with camelCase keys.
func EncodeResponse(w io.Writer, v any) error {
	return std.EncodeResponse(w, v)
}

// DecodeRequest reads a JSON body from r, converts its keys to snake_case
// and decodes the result into v. Numbers survive the round trip as their
// original literals.
func (t *Transcoder) DecodeRequest(r io.Reader, v any) error {
	data, err := t.readAll(r)
	if err != nil {
		return err
	}
	generic, err := decodeValue(data, FormatJSON)
	if err != nil {
		return err
	}
	snake, err := t.transformPayload(generic, humps.ToSnake)
	if err != nil {
		return err
	}
	converted, err := json.Marshal(snake)
	if err != nil {
		return fmt.Errorf("codec: failed to re-encode request: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(converted))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("codec: failed to decode request: %w", err)
	}
	return nil
}

// EncodeResponse marshals v with encoding/json, converts the keys of the
// result to camelCase and writes it to w followed by a newline.
func (t *Transcoder) EncodeResponse(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codec: failed to encode response: %w", err)
	}
	generic, err := decodeValue(raw, FormatJSON)
	if err != nil {
		return err
	}
	camel, err := t.transformPayload(generic, humps.ToCamel)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if t.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", t.indent))
	}
	if err := enc.Encode(camel); err != nil {
		return fmt.Errorf("codec: failed to write response: %w", err)
	}
	return nil
}
