// File: layerconf/keypath.go
package layerconf

// A key path is an ordered sequence of string keys locating a value inside a
// nested mapping, e.g. []string{"build", "script"}. These helpers are pure
// tree navigation; they carry no merge logic.

// containsPath reports whether the key path exists in the given tree.
func containsPath(data map[string]any, path []string) bool {
	_, ok := valueAtPath(data, path)
	return ok
}

// valueAtPath walks the key path through the tree and returns the value it
// locates. The second return value is false if any segment is missing or an
// intermediate value is not a mapping.
func valueAtPath(data map[string]any, path []string) (any, bool) {
	current := any(data)
	for _, key := range path {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, exists := currentMap[key]
		if !exists {
			return nil, false
		}
		current = value
	}
	return current, true
}

// setValueAtPath overwrites the value at the key path in place. It only
// writes where the full path already exists; it never creates intermediate
// mappings. Returns true if the value was updated.
func setValueAtPath(data map[string]any, path []string, value any) bool {
	if len(path) == 0 {
		return false
	}

	current := data
	for _, key := range path[:len(path)-1] {
		next, exists := current[key]
		if !exists {
			return false
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return false
		}
		current = nextMap
	}

	last := path[len(path)-1]
	if _, exists := current[last]; !exists {
		return false
	}
	current[last] = value
	return true
}
