// File: layerconf/discover_test.go
package layerconf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscoverSingleLayer(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "single.yaml")
	writeFile(t, file, "hello: world\n")

	l := newTestLoader(t)
	st := newDiscoverState()
	require.NoError(t, l.discover(file, st))

	assert.Equal(t, []string{file}, st.layers)
	require.Contains(t, st.trees, file)
	assert.Equal(t, "world", st.trees[file]["hello"])
}

func TestDiscoverChain(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "leaf.yaml"), "base: mid.yaml\nvalue: leaf\n")
	writeFile(t, filepath.Join(tmpDir, "mid.yaml"), "base: root.yaml\n")
	writeFile(t, filepath.Join(tmpDir, "root.yaml"), "value: root\n")

	l := newTestLoader(t)
	st := newDiscoverState()
	require.NoError(t, l.discover(filepath.Join(tmpDir, "leaf.yaml"), st))

	expected := []string{
		filepath.Join(tmpDir, "leaf.yaml"),
		filepath.Join(tmpDir, "mid.yaml"),
		filepath.Join(tmpDir, "root.yaml"),
	}
	assert.Equal(t, expected, st.layers)

	// Every discovered identity has exactly one parsed tree
	assert.Len(t, st.trees, len(st.layers))
	for _, layer := range st.layers {
		assert.Contains(t, st.trees, layer)
	}
}

func TestDiscoverMultipleParents(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "leaf.yaml"), "base:\n  - first.yaml\n  - second.yaml\n")
	writeFile(t, filepath.Join(tmpDir, "first.yaml"), "a: 1\n")
	writeFile(t, filepath.Join(tmpDir, "second.yaml"), "b: 2\n")

	l := newTestLoader(t)
	st := newDiscoverState()
	require.NoError(t, l.discover(filepath.Join(tmpDir, "leaf.yaml"), st))

	// Parents are visited in the order listed
	expected := []string{
		filepath.Join(tmpDir, "leaf.yaml"),
		filepath.Join(tmpDir, "first.yaml"),
		filepath.Join(tmpDir, "second.yaml"),
	}
	assert.Equal(t, expected, st.layers)
}

func TestDiscoverParentInOtherDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "sub", "leaf.yaml"), "base: ../common.yaml\n")
	writeFile(t, filepath.Join(tmpDir, "common.yaml"), "ok: true\n")

	l := newTestLoader(t)
	st := newDiscoverState()
	require.NoError(t, l.discover(filepath.Join(tmpDir, "sub", "leaf.yaml"), st))

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "sub", "leaf.yaml"),
		filepath.Join(tmpDir, "common.yaml"),
	}, st.layers)
}

func TestDiscoverDiamond(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "leaf.yaml"), "base:\n  - a.yaml\n  - b.yaml\n")
	writeFile(t, filepath.Join(tmpDir, "a.yaml"), "base: common.yaml\n")
	writeFile(t, filepath.Join(tmpDir, "b.yaml"), "base: common.yaml\n")
	writeFile(t, filepath.Join(tmpDir, "common.yaml"), "shared: yes\n")

	var buf bytes.Buffer
	l := New().WithLogger(log.New(&buf))

	st := newDiscoverState()
	require.NoError(t, l.discover(filepath.Join(tmpDir, "leaf.yaml"), st))

	// The shared base appears once, at its first discovery position
	expected := []string{
		filepath.Join(tmpDir, "leaf.yaml"),
		filepath.Join(tmpDir, "a.yaml"),
		filepath.Join(tmpDir, "common.yaml"),
		filepath.Join(tmpDir, "b.yaml"),
	}
	assert.Equal(t, expected, st.layers)
	assert.Len(t, st.trees, 4)

	// The skip is warned about, not failed
	assert.Contains(t, buf.String(), "inherited multiple times")
}

func TestDiscoverErrors(t *testing.T) {
	tmpDir := t.TempDir()
	l := newTestLoader(t)

	t.Run("MissingFile", func(t *testing.T) {
		st := newDiscoverState()
		err := l.discover(filepath.Join(tmpDir, "nope.yaml"), st)
		var confErr *ConfigurationError
		require.ErrorAs(t, err, &confErr)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("MissingParent", func(t *testing.T) {
		file := filepath.Join(tmpDir, "orphan.yaml")
		writeFile(t, file, "base: void.yaml\n")

		st := newDiscoverState()
		err := l.discover(file, st)
		var confErr *ConfigurationError
		require.ErrorAs(t, err, &confErr)
	})

	t.Run("NonMappingRoot", func(t *testing.T) {
		file := filepath.Join(tmpDir, "list.yaml")
		writeFile(t, file, "- one\n- two\n")

		st := newDiscoverState()
		err := l.discover(file, st)
		var confErr *ConfigurationError
		require.ErrorAs(t, err, &confErr)
		assert.Contains(t, err.Error(), "unsupported root node type")
	})

	t.Run("MalformedParentValue", func(t *testing.T) {
		file := filepath.Join(tmpDir, "badparent.yaml")
		writeFile(t, file, "base: 42\n")

		st := newDiscoverState()
		err := l.discover(file, st)
		var confErr *ConfigurationError
		require.ErrorAs(t, err, &confErr)
		assert.Contains(t, err.Error(), "unsupported value for base")
	})

	t.Run("NonStringParentListElement", func(t *testing.T) {
		file := filepath.Join(tmpDir, "badlist.yaml")
		writeFile(t, file, "base:\n  - ok.yaml\n  - 7\n")
		writeFile(t, filepath.Join(tmpDir, "ok.yaml"), "a: 1\n")

		st := newDiscoverState()
		err := l.discover(file, st)
		var confErr *ConfigurationError
		require.ErrorAs(t, err, &confErr)
	})
}

func TestDiscoverCustomParentKey(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "leaf.yaml"), "extends: root.yaml\nbase: just-a-field\n")
	writeFile(t, filepath.Join(tmpDir, "root.yaml"), "value: root\n")

	l := newTestLoader(t).WithParentKey("extends")
	st := newDiscoverState()
	require.NoError(t, l.discover(filepath.Join(tmpDir, "leaf.yaml"), st))

	assert.Len(t, st.layers, 2)
}
