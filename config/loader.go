package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v3"

	"github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/logger"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	Logger     *logger.Logger
	EnvFile    string // .env file loaded before documents are read (optional)
	Resolvers  map[string]TagResolver
	OnOverride OverrideFunc
}

// LoaderOption is a functional option for NewLoader.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithLogger sets the logger used for load and override messages.
func WithLogger(l *logger.Logger) LoaderOption {
	return func(lc *LoaderConfig) { lc.Logger = l }
}

// WithEnvFile loads a .env file into the process environment before every
// load. Variables that are already set are kept.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithTagResolver registers a resolver for tag, replacing any built-in one.
func WithTagResolver(tag string, r TagResolver) LoaderOption {
	return func(lc *LoaderConfig) {
		if lc.Resolvers == nil {
			lc.Resolvers = make(map[string]TagResolver)
		}
		lc.Resolvers[tag] = r
	}
}

// WithOnOverride registers a hook called for every value a later file replaces.
func WithOnOverride(fn OverrideFunc) LoaderOption {
	return func(lc *LoaderConfig) { lc.OnOverride = fn }
}

// Loader reads YAML documents, resolves directive tags and merges the
// results. A Loader is safe for concurrent use.
type Loader struct {
	fs      FileSystem
	log     *logger.Logger
	envFile string
	merger  *Merger

	mu        sync.RWMutex
	resolvers map[string]TagResolver
}

// NewLoader creates a Loader with the !join and !read tags registered.
func NewLoader(opts ...LoaderOption) *Loader {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}
	if lc.Logger == nil {
		lc.Logger = logger.Get("config")
	}

	l := &Loader{
		fs:      lc.FileSystem,
		log:     lc.Logger,
		envFile: lc.EnvFile,
		merger:  NewMerger(WithMergeLogger(lc.Logger), WithOverrideHook(lc.OnOverride)),
		resolvers: map[string]TagResolver{
			TagJoin: JoinTag(),
			TagRead: ReadTag(lc.FileSystem),
		},
	}
	for tag, r := range lc.Resolvers {
		l.resolvers[tag] = r
	}
	return l
}

// RegisterTag adds or replaces the resolver for tag.
func (l *Loader) RegisterTag(tag string, r TagResolver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resolvers[tag] = r
}

func (l *Loader) resolver(tag string) (TagResolver, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.resolvers[tag]
	return r, ok
}

// LoadFile reads a single YAML document with all directive tags resolved.
// An empty document yields an empty tree. Read errors are returned unchanged.
func (l *Loader) LoadFile(path string) (Tree, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.InvalidDocument(path, "malformed YAML").WithCause(err)
	}
	if len(doc.Content) == 0 {
		return Tree{}, nil
	}

	root := doc.Content[0]
	if err := l.resolveTags(path, root); err != nil {
		return nil, err
	}
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return Tree{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.InvalidDocument(path,
			fmt.Sprintf("top-level node must be a mapping (line %d)", root.Line))
	}

	tree := Tree{}
	if err := root.Decode(&tree); err != nil {
		return nil, errors.InvalidDocument(path, "cannot decode document").WithCause(err)
	}
	normalizeMap(tree)
	return tree, nil
}

// LoadFiles loads every path in order and merges each document over the
// previous ones. Any failure aborts the whole load.
func (l *Loader) LoadFiles(paths ...string) (Tree, error) {
	if l.envFile != "" {
		if err := l.fs.LoadEnv(l.envFile); err != nil {
			return nil, err
		}
	}

	tree := Tree{}
	for _, path := range paths {
		l.log.Info("load yaml file", logger.Fields(logger.FieldPath, path))
		doc, err := l.LoadFile(path)
		if err != nil {
			l.log.WithFields(logger.Fields(logger.FieldPath, path)).Error("load yaml file failed", logger.ErrorFields("load", err))
			return nil, err
		}
		tree = l.merger.Merge(tree, doc)
	}
	return tree, nil
}

// resolveTags replaces tagged sequences in place, innermost first.
func (l *Loader) resolveTags(path string, n *yaml.Node) error {
	for _, child := range n.Content {
		if err := l.resolveTags(path, child); err != nil {
			return err
		}
	}

	r, ok := l.resolver(n.Tag)
	if !ok {
		return nil
	}
	if n.Kind != yaml.SequenceNode {
		return errors.InvalidDocument(path,
			fmt.Sprintf("%s expects a sequence (line %d)", n.Tag, n.Line)).
			WithDetail(logger.FieldTag, n.Tag)
	}

	value, err := r(n.Content)
	if err != nil {
		var pathErr *fs.PathError
		if stderrors.As(err, &pathErr) {
			return err
		}
		return errors.InvalidDocument(path,
			fmt.Sprintf("cannot resolve %s (line %d)", n.Tag, n.Line)).
			WithDetail(logger.FieldTag, n.Tag).
			WithCause(err)
	}

	anchor, line, column := n.Anchor, n.Line, n.Column
	if s, ok := value.(string); ok {
		// set directly; re-parsing encoded text rejects some contents, e.g. leading tabs
		n.Kind, n.Tag, n.Value, n.Style = yaml.ScalarNode, "!!str", s, 0
		n.Content, n.Alias = nil, nil
		return nil
	}
	if err := n.Encode(value); err != nil {
		return errors.Internal(err).WithDetail(logger.FieldPath, path)
	}
	n.Anchor, n.Line, n.Column = anchor, line, column
	return nil
}

var (
	defaultLoader     *Loader
	defaultLoaderOnce sync.Once
)

func getDefaultLoader() *Loader {
	defaultLoaderOnce.Do(func() { defaultLoader = NewLoader() })
	return defaultLoader
}

// LoadYAMLFile loads one document with the default loader.
func LoadYAMLFile(path string) (Tree, error) {
	return getDefaultLoader().LoadFile(path)
}

// LoadYAMLFiles loads and merges documents in order with the default loader.
func LoadYAMLFiles(paths ...string) (Tree, error) {
	return getDefaultLoader().LoadFiles(paths...)
}
