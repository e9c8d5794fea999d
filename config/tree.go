package config

import (
	"fmt"

	"github.com/kbukum/flowkit/errors"
)

// Tree is a configuration tree: string keys mapping to scalars, []any
// sequences or nested map[string]any mappings.
type Tree map[string]any

// Get walks keys from the root of t. See NestedGet.
func (t Tree) Get(keys []string, def ...any) (any, error) {
	return NestedGet(t, keys, def...)
}

// Set assigns value at the key path. See NestedSet.
func (t Tree) Set(keys []string, value any) error {
	return NestedSet(t, keys, value)
}

// Clone returns a deep copy of t.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	return Tree(cloneMap(t))
}

// asMap reports whether v is a mapping node and returns it.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Tree:
		return m, true
	default:
		return nil, false
	}
}

// NestedGet returns the value found by following keys from d. When a key is
// missing (or the walk reaches a non-mapping value) the first def value is
// returned if supplied, otherwise a KEY_NOT_FOUND error.
func NestedGet(d map[string]any, keys []string, def ...any) (any, error) {
	var cur any = d
	for i, key := range keys {
		m, ok := asMap(cur)
		if ok {
			cur, ok = m[key]
		}
		if !ok {
			if len(def) > 0 {
				return def[0], nil
			}
			return nil, errors.KeyNotFound(key, keys[:i+1])
		}
	}
	return cur, nil
}

// NestedSet assigns value under the last key. Every intermediate key must
// already exist and hold a mapping.
func NestedSet(d map[string]any, keys []string, value any) error {
	if len(keys) == 0 {
		return errors.InvalidArgument("keys", "at least one key is required")
	}
	if d == nil {
		return errors.InvalidArgument("tree", "cannot set a key on a nil tree")
	}
	cur := d
	for i, key := range keys[:len(keys)-1] {
		next, ok := asMap(cur[key])
		if !ok {
			return errors.KeyNotFound(key, keys[:i+1])
		}
		cur = next
	}
	cur[keys[len(keys)-1]] = value
	return nil
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case Tree:
		return Tree(cloneMap(val))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// normalizeMap rewrites, in place, nested mappings decoded with non-string
// keys ({1: x} decodes to map[any]any) into map[string]any keyed by fmt.Sprint.
func normalizeMap(m map[string]any) {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		normalizeMap(val)
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeValue(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalizeValue(item)
		}
		return val
	default:
		return v
	}
}
