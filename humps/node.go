package humps

import (
	"go.yaml.in/yaml/v4"
)

const (
	strTag   = "!!str"
	mergeKey = "<<"
)

// nodePair is one key/value entry of a mapping node.
type nodePair struct {
	key, value *yaml.Node
	source     string
	dropped    bool
}

// node returns a transformed deep copy of n. Mapping keys keep their document
// order; on collision the later entry wins and the earlier one is removed.
func (w *walker) node(n *yaml.Node, path string, depth int) (*yaml.Node, error) {
	if n == nil {
		return nil, nil
	}
	if w.copies == nil {
		w.copies = make(map[*yaml.Node]*yaml.Node)
	}
	if c, ok := w.copies[n]; ok {
		return c, nil
	}

	out := *n
	out.Content = nil
	w.copies[n] = &out

	switch n.Kind {
	case yaml.DocumentNode:
		for _, child := range n.Content {
			c, err := w.node(child, path, depth)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, c)
		}

	case yaml.SequenceNode:
		if err := w.enter(path, depth); err != nil {
			return nil, err
		}
		out.Content = make([]*yaml.Node, 0, len(n.Content))
		for i, child := range n.Content {
			c, err := w.node(child, indexPath(path, i), depth+1)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, c)
		}

	case yaml.MappingNode:
		if err := w.enter(path, depth); err != nil {
			return nil, err
		}
		content, err := w.mappingNode(n, path, depth)
		if err != nil {
			return nil, err
		}
		out.Content = content

	case yaml.AliasNode:
		target, err := w.node(n.Alias, path, depth)
		if err != nil {
			return nil, err
		}
		out.Alias = target
	}

	return &out, nil
}

func (w *walker) mappingNode(n *yaml.Node, path string, depth int) ([]*yaml.Node, error) {
	pairs := make([]nodePair, 0, len(n.Content)/2)
	index := make(map[string]int, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]

		if !isTranscodableKey(keyNode) {
			k, err := w.node(keyNode, path, depth+1)
			if err != nil {
				return nil, err
			}
			v, err := w.node(valueNode, path, depth+1)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, nodePair{key: k, value: v})
			continue
		}

		k := *keyNode
		k.Value = w.conv.Key(keyNode.Value, w.dir)
		w.copies[keyNode] = &k

		v, err := w.node(valueNode, keyPath(path, keyNode.Value), depth+1)
		if err != nil {
			return nil, err
		}

		if prev, ok := index[k.Value]; ok {
			if err := w.collide(path, k.Value, pairs[prev].source, keyNode.Value); err != nil {
				return nil, err
			}
			pairs[prev].dropped = true
			w.dropped = true
		}
		index[k.Value] = len(pairs)
		pairs = append(pairs, nodePair{key: &k, value: v, source: keyNode.Value})
	}

	content := make([]*yaml.Node, 0, len(pairs)*2)
	for _, p := range pairs {
		if !p.dropped {
			content = append(content, p.key, p.value)
		}
	}
	return content, nil
}

// restoreAnchors repairs aliases whose anchor was removed along with a dropped
// collision entry. The first such alias, in document order, takes the anchored
// node's place; later aliases point at it.
func restoreAnchors(root *yaml.Node) {
	seen := make(map[*yaml.Node]bool)
	moved := make(map[*yaml.Node]*yaml.Node)

	var visit func(n *yaml.Node)
	visit = func(n *yaml.Node) {
		if n == nil || seen[n] {
			return
		}
		if n.Kind == yaml.AliasNode {
			target := n.Alias
			if target == nil || seen[target] {
				return
			}
			if holder, ok := moved[target]; ok {
				n.Alias = holder
				return
			}
			head, line, foot := n.HeadComment, n.LineComment, n.FootComment
			*n = *target
			if head != "" {
				n.HeadComment = head
			}
			if line != "" {
				n.LineComment = line
			}
			if foot != "" {
				n.FootComment = foot
			}
			moved[target] = n
		}
		seen[n] = true
		for _, c := range n.Content {
			visit(c)
		}
	}
	visit(root)
}

// isTranscodableKey reports whether a mapping key node is a plain string key.
// Merge keys, non-string scalars and complex keys are copied unchanged.
func isTranscodableKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == strTag && n.Value != mergeKey
}
