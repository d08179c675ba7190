package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/keycase/caseerrors"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	// Maps decode with string keys so they reach the key converter; the
	// library default is map[any]any.
	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// decodeValue decodes JSON, msgpack or cbor data into generic Go values:
// map[string]any for mappings, []any for sequences. JSON numbers stay
// json.Number.
func decodeValue(data []byte, from Format) (any, error) {
	var v any
	var err error
	switch from {
	case FormatJSON:
		v, err = decodeJSON(data)
	case FormatMsgPack:
		err = msgpack.Unmarshal(data, &v)
	case FormatCBOR:
		err = cborDec.Unmarshal(data, &v)
	default:
		return nil, &caseerrors.ConfigError{Option: "input-format", Value: string(from), Message: "unknown format"}
	}
	if err != nil {
		var pe *caseerrors.ParseError
		if errors.As(err, &pe) {
			return nil, err
		}
		return nil, &caseerrors.ParseError{Format: string(from), Cause: err}
	}
	return v, nil
}

func decodeJSON(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &caseerrors.ParseError{Format: string(FormatJSON), Message: "empty document"}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, &caseerrors.ParseError{Format: string(FormatJSON), Message: "unexpected data after top-level value"}
	}
	return v, nil
}

func encodeValue(v any, to Format, indent int) ([]byte, error) {
	switch to {
	case FormatJSON, FormatJSONC:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", indent))
		}
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("codec: failed to encode json: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("codec: failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("codec: failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatMsgPack:
		data, err := msgpack.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("codec: failed to encode msgpack: %w", err)
		}
		return data, nil
	case FormatCBOR:
		data, err := cborEnc.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("codec: failed to encode cbor: %w", err)
		}
		return data, nil
	}
	return nil, &caseerrors.ConfigError{Option: "output-format", Value: string(to), Message: "unknown format"}
}
