// File: layerconf/discover.go
package layerconf

import (
	"path/filepath"
	"slices"
)

// discoverState holds the traversal results of a single Load call. A fresh
// instance is created per call and threaded through the recursion, so nothing
// leaks between independent loads.
type discoverState struct {
	// layers records discovery order: the requested file first, then every
	// ancestor in pre-order depth-first traversal. Each identity appears at
	// most once.
	layers []string

	// trees maps each discovered layer identity to its parsed document.
	// After discovery completes, its key set equals the layers slice.
	trees map[string]map[string]any
}

func newDiscoverState() *discoverState {
	return &discoverState{
		trees: make(map[string]map[string]any),
	}
}

// discover recursively loads the document hierarchy rooted at file. Parent
// references are resolved relative to the directory of the declaring file.
// Equality of layer identities is lexical on the joined reference; the same
// physical file reached through different directories is loaded once per
// distinct spelling.
func (l *Loader) discover(file string, st *discoverState) error {
	if slices.Contains(st.layers, file) {
		l.logger.Warn("config file is inherited multiple times, skipping already loaded layer", "file", file)
		return nil
	}

	st.layers = append(st.layers, file)

	tree, err := l.parseDocument(file)
	if err != nil {
		return err
	}
	l.logger.Debug("parsed config layer", "file", file)

	root, ok := tree.(map[string]any)
	if !ok {
		return l.invalidConfig("unsupported root node type in %s: %v (%T)", file, tree, tree)
	}
	st.trees[file] = root

	parent, declared := root[l.parentKey]
	if !declared {
		return nil
	}

	dir := filepath.Dir(file)
	switch ref := parent.(type) {
	case string:
		next := filepath.Join(dir, ref)
		l.logger.Debug("single parent file", "file", file, "parent", next)
		return l.discover(next, st)

	case []any:
		l.logger.Debug("multiple parent files", "file", file, "parents", ref)
		for _, elem := range ref {
			parentRef, ok := elem.(string)
			if !ok {
				return l.invalidConfig("unsupported value for %s in %s: %v (%T)", l.parentKey, file, elem, elem)
			}
			if err := l.discover(filepath.Join(dir, parentRef), st); err != nil {
				return err
			}
		}
		return nil

	default:
		return l.invalidConfig("unsupported value for %s in %s: %v (%T)", l.parentKey, file, parent, parent)
	}
}
