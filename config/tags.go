package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Built-in directive tags.
const (
	TagJoin = "!join"
	TagRead = "!read"
)

// TagResolver turns the items of a tagged sequence into a plain value. The
// returned value replaces the tagged node before the document is decoded.
type TagResolver func(args []*yaml.Node) (any, error)

// JoinTag concatenates its items with no separator. Scalars contribute their
// source text, anything else its decoded value formatted with fmt.Sprint.
// Scalars are stringified as written in the YAML source, not from their
// decoded value: 1.50 stays "1.50", true stays "true" and null stays "null".
//
//	!join [run-, 3]  ->  "run-3"
func JoinTag() TagResolver {
	return func(args []*yaml.Node) (any, error) {
		var b strings.Builder
		for _, arg := range args {
			s, err := nodeString(arg)
			if err != nil {
				return nil, err
			}
			b.WriteString(s)
		}
		return b.String(), nil
	}
}

// ReadTag joins its items into a file path and returns the file contents as
// a string, trailing newline included. Read errors are returned unchanged.
//
//	!read [prompts, system.txt]
func ReadTag(fs FileSystem) TagResolver {
	return func(args []*yaml.Node) (any, error) {
		segments := make([]string, 0, len(args))
		for _, arg := range args {
			s, err := nodeString(arg)
			if err != nil {
				return nil, err
			}
			segments = append(segments, s)
		}
		if len(segments) == 0 {
			return nil, fmt.Errorf("%s needs at least one path segment", TagRead)
		}
		data, err := fs.ReadFile(filepath.Join(segments...))
		if err != nil {
			return nil, err
		}
		return string(data), nil
	}
}

// nodeString stringifies a resolved sequence item.
func nodeString(n *yaml.Node) (string, error) {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind == yaml.ScalarNode {
		return n.Value, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}
