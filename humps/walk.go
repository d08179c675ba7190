package humps

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"time"
	"unicode"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/keycase/caseerrors"
)

const rootPath = "$"

// walker carries per-call state for one Transform.
type walker struct {
	conv *Converter
	dir  Direction

	// copies maps source YAML nodes to their transformed copies so that
	// aliases can be pointed at the copied anchors.
	copies map[*yaml.Node]*yaml.Node

	// dropped is set once a collision removes a node entry.
	dropped bool
}

func newWalker(conv *Converter, dir Direction) *walker {
	return &walker{conv: conv, dir: dir}
}

// value transcodes v, which sits inside depth enclosing containers.
func (w *walker) value(v any, path string, depth int) (any, error) {
	switch val := v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		json.Number, []byte, time.Time:
		return v, nil

	case []any:
		if err := w.enter(path, depth); err != nil {
			return nil, err
		}
		if val == nil {
			return val, nil
		}
		out := make([]any, len(val))
		for i, item := range val {
			converted, err := w.value(item, indexPath(path, i), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil

	case []string:
		if err := w.enter(path, depth); err != nil {
			return nil, err
		}
		return slices.Clone(val), nil

	case []map[string]any:
		if err := w.enter(path, depth); err != nil {
			return nil, err
		}
		if val == nil {
			return val, nil
		}
		out := make([]map[string]any, len(val))
		for i, m := range val {
			converted, err := w.mapping(m, indexPath(path, i), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil

	case map[string]any:
		return w.mapping(val, path, depth)

	case *yaml.Node:
		out, err := w.node(val, path, depth)
		if err != nil {
			return nil, err
		}
		if w.dropped {
			restoreAnchors(out)
		}
		return out, nil

	default:
		return nil, &caseerrors.TypeError{Path: path, Type: fmt.Sprintf("%T", v)}
	}
}

// mapping rebuilds m with converted keys. Keys are visited in sorted order so
// that the winner of a collision does not depend on map iteration order.
func (w *walker) mapping(m map[string]any, path string, depth int) (map[string]any, error) {
	if err := w.enter(path, depth); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}

	out := make(map[string]any, len(m))
	sources := make(map[string]string, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		newKey := w.conv.Key(key, w.dir)
		converted, err := w.value(m[key], keyPath(path, key), depth+1)
		if err != nil {
			return nil, err
		}
		if prev, ok := sources[newKey]; ok {
			if err := w.collide(path, newKey, prev, key); err != nil {
				return nil, err
			}
		}
		sources[newKey] = key
		out[newKey] = converted
	}
	return out, nil
}

// collide handles two source keys that produced the same key. The later one wins.
func (w *walker) collide(path, key, dropped, kept string) error {
	if w.conv.strict {
		return &caseerrors.CollisionError{Path: path, Key: key, Sources: []string{dropped, kept}}
	}
	w.conv.logger.Warn("key collision, last key wins",
		"path", path, "key", key, "dropped", dropped, "kept", kept, "direction", w.dir.String())
	return nil
}

// enter checks the depth limit for a container found inside depth containers.
func (w *walker) enter(path string, depth int) error {
	limit := w.conv.maxDepth
	if limit > 0 && depth+1 > limit {
		return &caseerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(limit),
			Actual:       int64(depth + 1),
			Message:      "at " + path,
		}
	}
	return nil
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// keyPath appends key using dot notation when it is a plain identifier and
// bracket notation otherwise.
func keyPath(path, key string) string {
	if isPlainKey(key) {
		return path + "." + key
	}
	return path + "[" + strconv.Quote(key) + "]"
}

func isPlainKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r != '_' && r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// deepEqual compares transcoded output with its input.
func deepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
