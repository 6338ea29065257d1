// File: layerconf/loader.go
package layerconf

import (
	"os"

	"github.com/charmbracelet/log"
)

// DefaultParentKey is the reserved top-level key that declares a document's
// parent document(s).
const DefaultParentKey = "base"

// Loader resolves layered configuration documents. The zero-value defaults
// are set by New; the With* methods customize it fluently:
//
//	loader := layerconf.New().
//	    WithParentKey("extends").
//	    WithRelativePathKeys([]string{"build", "script"})
//
// A Loader is safe for concurrent use: all load state is scoped to a single
// Load call.
type Loader struct {
	parentKey        string
	relativePathKeys [][]string
	tagName          string
	logger           *log.Logger
}

// New creates a Loader with the default parent key "base", no relative path
// keys, and a logger writing to stderr.
func New() *Loader {
	return &Loader{
		parentKey: DefaultParentKey,
		tagName:   "yaml",
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "layerconf",
		}),
	}
}

// WithParentKey sets the reserved key used to reference parent documents.
func (l *Loader) WithParentKey(key string) *Loader {
	l.parentKey = key
	return l
}

// WithRelativePathKeys sets the key paths whose string values are file
// references to be resolved relative to their declaring document.
func (l *Loader) WithRelativePathKeys(paths ...[]string) *Loader {
	l.relativePathKeys = paths
	return l
}

// WithTagName sets the struct tag consulted when verifying against a model.
// Default is "yaml".
func (l *Loader) WithTagName(name string) *Loader {
	l.tagName = name
	return l
}

// WithLogger replaces the loader's logger.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	l.logger = logger
	return l
}

// Load resolves the document hierarchy rooted at file and returns the merged
// configuration tree. Discovery, relative path resolution and merging run as
// strictly sequential phases; any failure is returned as a ConfigurationError
// with no partial result.
func (l *Loader) Load(file string) (map[string]any, error) {
	st := newDiscoverState()

	if err := l.discover(file, st); err != nil {
		return nil, err
	}
	l.logger.Info("config file layers", "layers", st.layers)

	l.resolveRelativePaths(st)

	merged, err := l.mergeLayers(st)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("resulting configuration", "data", merged)

	return merged, nil
}
