// File: layerconf/doc.go

// Package layerconf resolves a hierarchy of layered configuration documents
// into one merged configuration tree.
//
// Each document may declare one or more parent documents it extends through a
// reserved top-level key (default "base"). The loader discovers the full
// inheritance graph depth-first, resolves configured file-path fields relative
// to the document that declared them, and merges all layers into a single
// result.
//
// Features:
//   - Recursive parent discovery with diamond-inheritance tolerance
//   - YAML, TOML and JSON documents, mixed freely within one hierarchy
//   - Per-layer relative path resolution against the declaring file
//   - Leaf-wins merge for scalars, key-wise overwrite for mappings,
//     concatenation for sequences
//   - Model verification via mapstructure with unused-field reporting
//   - Referenced-file existence checks
//
// Quick Start:
//
//	loader := layerconf.New().
//	    WithRelativePathKeys([]string{"build", "script"})
//
//	data, err := loader.Load("project.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	script, _ := layerconf.String(data, "build", "script")
//
// With a document hierarchy like:
//
//	# common.yaml
//	log_level: info
//	tags: [managed]
//
//	# project.yaml
//	base: common.yaml
//	tags: [web]
//
// Load("project.yaml") yields log_level "info" and tags [managed, web]: fields
// declared only in a base survive as defaults, more derived layers overwrite
// scalars and mapping keys, and sequences extend rather than replace.
//
// Merge Precedence:
//
// Layers are folded in reverse discovery order, so the originally requested
// file is applied last and wins. Mapping merges are shallow: a nested mapping
// redeclared by a derived layer replaces the base one key-for-key at the top
// level only.
//
// Concurrency:
//
// A Loader holds no state between Load calls; each call owns its own
// discovery state, so independent concurrent loads are safe.
package layerconf
