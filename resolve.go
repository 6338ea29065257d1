// File: layerconf/resolve.go
package layerconf

import "path/filepath"

// resolveRelativePaths rewrites the configured path-valued fields of every
// discovered layer from relative to absolute, in place. Each layer resolves
// strictly against its own declaring directory; a base layer's path is never
// interpreted relative to a derived layer. Layers that do not declare a given
// key path are skipped.
func (l *Loader) resolveRelativePaths(st *discoverState) {
	for _, layer := range st.layers {
		tree := st.trees[layer]
		dir := filepath.Dir(layer)

		for _, path := range l.relativePathKeys {
			value, ok := valueAtPath(tree, path)
			if !ok {
				l.logger.Debug("no match for relative path key", "path", path, "layer", layer)
				continue
			}

			ref, ok := value.(string)
			if !ok {
				l.logger.Debug("relative path key holds a non-string value, leaving as is",
					"path", path, "layer", layer, "value", value)
				continue
			}

			resolved := ref
			if !filepath.IsAbs(ref) {
				resolved = filepath.Join(dir, ref)
			}
			l.logger.Debug("resolved relative path", "from", ref, "to", resolved, "layer", layer)
			setValueAtPath(tree, path, resolved)
		}
	}
}
