package codec

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// nodeValue converts a document node into generic Go values for the binary
// encoders. Mappings become map[string]any whatever their key tags, so a key
// such as 2 is written as "2". Scalars that are not null, bool, int or float
// keep their source text: a YAML timestamp stays the string it was written as.
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])

	case yaml.MappingNode:
		entries, err := mappingEntries(n)
		if err != nil {
			return nil, err
		}
		m := make(map[string]any, len(entries))
		for _, e := range entries {
			v, err := nodeValue(e.value)
			if err != nil {
				return nil, err
			}
			m[e.key] = v
		}
		return m, nil

	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := nodeValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("codec: line %d: unresolved alias %q", n.Line, n.Value)
		}
		return nodeValue(n.Alias)

	case yaml.ScalarNode:
		switch n.ShortTag() {
		case nullTag:
			return nil, nil
		case boolTag, intTag, floatTag:
			var v any
			if err := n.Decode(&v); err == nil {
				return v, nil
			}
		}
		return n.Value, nil
	}
	return nil, fmt.Errorf("codec: line %d: unexpected node kind %v", n.Line, n.Kind)
}
