// File: layerconf/merge.go
package layerconf

import (
	"encoding/json"
	"time"
)

// mergeLayers folds the ordered, path-resolved layers into one tree. The
// last-discovered layer of the depth-first traversal seeds the result; the
// remaining layers are folded in reverse discovery order, so the originally
// requested file is applied last and wins. The parent-reference key never
// survives into the result.
func (l *Loader) mergeLayers(st *discoverState) (map[string]any, error) {
	seed := st.layers[len(st.layers)-1]
	merged := st.trees[seed]
	delete(merged, l.parentKey)
	l.logger.Debug("seeding merge", "layer", seed)

	if len(st.layers) <= 1 {
		return merged, nil
	}

	for i := len(st.layers) - 2; i >= 0; i-- {
		layer := st.layers[i]
		for key, value := range st.trees[layer] {
			if key == l.parentKey {
				// Do not merge the parent key.
				continue
			}

			current, exists := merged[key]
			if !exists {
				merged[key] = value
				continue
			}

			result, err := l.mergeValues(current, value)
			if err != nil {
				return nil, err
			}
			l.logger.Debug("merged values", "key", key, "layer", layer)
			merged[key] = result
		}
	}

	return merged, nil
}

// mergeValues combines two values declared at the same key by different
// layers, with next coming from the higher-precedence layer. Scalars are
// replaced, mappings are merged key-wise with next winning, sequences are
// concatenated current-then-next. Any other pairing is a ConfigurationError.
func (l *Loader) mergeValues(current, next any) (any, error) {
	switch cur := current.(type) {
	case map[string]any:
		nextMap, ok := next.(map[string]any)
		if !ok {
			return nil, l.invalidConfig("unsupported types for merge: %v (%T), %v (%T)", current, current, next, next)
		}
		// Shallow merge: a nested mapping from next replaces the whole
		// current entry rather than being merged recursively.
		for key, value := range nextMap {
			cur[key] = value
		}
		return cur, nil

	case []any:
		nextSeq, ok := next.([]any)
		if !ok {
			return nil, l.invalidConfig("unsupported types for merge: %v (%T), %v (%T)", current, current, next, next)
		}
		return append(cur, nextSeq...), nil

	default:
		if !isScalar(current) || !isScalar(next) {
			return nil, l.invalidConfig("unsupported types for merge: %v (%T), %v (%T)", current, current, next, next)
		}
		return next, nil
	}
}

// isScalar reports whether the value is one of the scalar shapes produced by
// the document parsers.
func isScalar(value any) bool {
	switch value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		json.Number, time.Time:
		return true
	default:
		return false
	}
}
