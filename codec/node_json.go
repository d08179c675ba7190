package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"go.yaml.in/yaml/v4"
)

const (
	strTag   = "!!str"
	nullTag  = "!!null"
	boolTag  = "!!bool"
	intTag   = "!!int"
	floatTag = "!!float"
	mergeTag = "!!merge"
)

// writeNodeJSON writes a yaml.Node tree as JSON, keeping mapping key order
// and the literal text of JSON-compatible numbers.
func writeNodeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNodeJSON(buf, n.Content[0])

	case yaml.MappingNode:
		entries, err := mappingEntries(n)
		if err != nil {
			return err
		}
		buf.WriteByte('{')
		for i, e := range entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, e.key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, e.value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.AliasNode:
		if n.Alias == nil {
			return fmt.Errorf("codec: line %d: unresolved alias %q", n.Line, n.Value)
		}
		return writeNodeJSON(buf, n.Alias)

	case yaml.ScalarNode:
		return writeScalarJSON(buf, n)
	}
	return fmt.Errorf("codec: line %d: unexpected node kind %v", n.Line, n.Kind)
}

// writeScalarJSON writes JSON-native scalars as JSON. Everything else
// (timestamps, binary, custom tags, infinities) is written as its source text
// in a JSON string.
func writeScalarJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.ShortTag() {
	case strTag:
		return writeJSONValue(buf, n.Value)
	case nullTag:
		buf.WriteString("null")
		return nil
	case boolTag, intTag, floatTag:
		if !isQuoted(n) && json.Valid([]byte(n.Value)) {
			buf.WriteString(n.Value)
			return nil
		}
		if v, ok := nativeScalar(n); ok {
			return writeJSONValue(buf, v)
		}
	}
	return writeJSONValue(buf, n.Value)
}

// nativeScalar decodes a bool, int or float scalar. It fails for values JSON
// cannot carry, such as .inf and .nan.
func nativeScalar(n *yaml.Node) (any, bool) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, false
	}
	if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		return nil, false
	}
	return v, true
}

func isQuoted(n *yaml.Node) bool {
	return n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0
}

// entry is one resolved key/value pair of a mapping node.
type entry struct {
	key   string
	value *yaml.Node
}

// mappingEntries lists the pairs of a mapping in document order with YAML
// merge keys applied: explicit keys override merged ones, and earlier merge
// sources override later ones. A duplicated explicit key keeps its first
// position and its last value.
func mappingEntries(n *yaml.Node) ([]entry, error) {
	explicit := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if k := resolveAlias(n.Content[i]); !isMergeKey(k) {
			explicit[k.Value] = true
		}
	}

	entries := make([]entry, 0, len(n.Content)/2)
	index := make(map[string]int, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := resolveAlias(n.Content[i]), n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("codec: line %d: object keys must be scalars", k.Line)
		}

		if !isMergeKey(k) {
			if at, ok := index[k.Value]; ok {
				entries[at].value = v
				continue
			}
			index[k.Value] = len(entries)
			entries = append(entries, entry{key: k.Value, value: v})
			continue
		}

		sources, err := mergeSources(v)
		if err != nil {
			return nil, err
		}
		for _, src := range sources {
			merged, err := mappingEntries(src)
			if err != nil {
				return nil, err
			}
			for _, e := range merged {
				if _, ok := index[e.key]; ok || explicit[e.key] {
					continue
				}
				index[e.key] = len(entries)
				entries = append(entries, e)
			}
		}
	}
	return entries, nil
}

// mergeSources returns the mappings named by the value of a merge key.
func mergeSources(v *yaml.Node) ([]*yaml.Node, error) {
	v = resolveAlias(v)
	switch v.Kind {
	case yaml.MappingNode:
		return []*yaml.Node{v}, nil
	case yaml.SequenceNode:
		sources := make([]*yaml.Node, 0, len(v.Content))
		for _, item := range v.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("codec: line %d: merge sequence items must be mappings", item.Line)
			}
			sources = append(sources, item)
		}
		return sources, nil
	}
	return nil, fmt.Errorf("codec: line %d: merge value must be a mapping or a sequence of mappings", v.Line)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == mergeTag
}

// writeJSONValue encodes v without HTML escaping and without the trailing
// newline json.Encoder appends.
func writeJSONValue(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("codec: failed to encode json: %w", err)
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// finishJSON indents compact JSON when requested and terminates it with a
// newline.
func finishJSON(compact []byte, indent int) ([]byte, error) {
	if indent == 0 {
		return append(compact, '\n'), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("codec: failed to indent json: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
