package config

import (
	"strings"

	"github.com/kbukum/flowkit/logger"
	"github.com/kbukum/flowkit/util"
)

// OverrideFunc is called with the key path of every value an overlay replaces.
type OverrideFunc func(path []string)

// Merger folds overlay trees into base trees.
type Merger struct {
	log        *logger.Logger
	onOverride OverrideFunc
}

// MergerOption configures a Merger.
type MergerOption func(*Merger)

// WithMergeLogger sets the logger overrides are reported to.
func WithMergeLogger(l *logger.Logger) MergerOption {
	return func(m *Merger) { m.log = l }
}

// WithOverrideHook registers fn to be called for every replaced value.
func WithOverrideHook(fn OverrideFunc) MergerOption {
	return func(m *Merger) { m.onOverride = fn }
}

// NewMerger creates a Merger. Without options it reports overrides to the
// "config" component logger at debug level.
func NewMerger(opts ...MergerOption) *Merger {
	m := &Merger{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Merger) reporter() *logger.Logger {
	if m.log != nil {
		return m.log
	}
	return logger.Get("config")
}

// Merge copies every key of overlay into base and returns base.
//
// Keys missing from base are inserted. When both sides hold a mapping the
// two are merged recursively. Anything else, sequences included, is replaced
// wholesale by the overlay value and reported as an override.
//
// base is modified in place; use MergeCopy to keep it intact. A nil base is
// replaced by a new tree.
func (m *Merger) Merge(base, overlay Tree) Tree {
	if base == nil {
		base = make(Tree, len(overlay))
	}
	m.merge(base, overlay, nil)
	return base
}

// MergeCopy merges overlay into a deep copy of base. Neither argument is
// modified, and the result shares no mappings or sequences with overlay.
func (m *Merger) MergeCopy(base, overlay Tree) Tree {
	return m.Merge(base.Clone(), overlay.Clone())
}

func (m *Merger) merge(base, overlay map[string]any, path []string) {
	// sorted so override reports come out in a stable order
	for _, key := range util.SortedKeys(overlay) {
		value := overlay[key]
		current, exists := base[key]
		if !exists {
			base[key] = value
			continue
		}

		keyPath := append(path[:len(path):len(path)], key)
		baseMap, baseIsMap := asMap(current)
		overlayMap, overlayIsMap := asMap(value)
		if baseIsMap && overlayIsMap {
			m.merge(baseMap, overlayMap, keyPath)
			continue
		}

		dotted := strings.Join(keyPath, ".")
		m.reporter().Debug(dotted+" has been overridden", logger.Fields(logger.FieldKey, dotted))
		if m.onOverride != nil {
			m.onOverride(keyPath)
		}
		base[key] = value
	}
}

var defaultMerger = NewMerger()

// Merge merges overlay into base with the default Merger. See Merger.Merge.
func Merge(base, overlay Tree) Tree {
	return defaultMerger.Merge(base, overlay)
}

// MergeCopy merges without modifying either argument. See Merger.MergeCopy.
func MergeCopy(base, overlay Tree) Tree {
	return defaultMerger.MergeCopy(base, overlay)
}
