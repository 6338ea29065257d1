// File: layerconf/parse.go
package layerconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// parseDocument loads the content of a single configuration document into a
// generic tree. The document format is determined from the file extension
// first, then by content sniffing. A missing or unparsable file is a
// ConfigurationError.
func (l *Loader) parseDocument(file string) (any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, l.invalidConfig("config file %s does not exist", file)
		}
		return nil, l.invalidConfig("failed to read config file %s: %v", file, err)
	}

	format := detectFileFormat(file)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, l.invalidConfig("unable to determine config format for file %s", file)
		}
	}

	var tree any
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, l.invalidConfig("failed to parse TOML config file %s: %v", file, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&tree); err != nil {
			return nil, l.invalidConfig("failed to parse JSON config file %s: %v", file, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, l.invalidConfig("failed to parse YAML config file %s: %v", file, err)
		}
	}

	return normalizeTree(tree), nil
}

// detectFileFormat determines format from the file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// Try YAML (superset of JSON, so check after JSON)
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	// Try TOML last
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}

// normalizeTree rewrites decoder-specific container types into the generic
// shapes the merger operates on: mappings become map[string]any and sequences
// become []any at every depth. The TOML decoder in particular produces typed
// slices for arrays of tables.
func normalizeTree(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, elem := range v {
			v[key] = normalizeTree(elem)
		}
		return v
	case []any:
		for i, elem := range v {
			v[i] = normalizeTree(elem)
		}
		return v
	case []map[string]any:
		seq := make([]any, len(v))
		for i, elem := range v {
			seq[i] = normalizeTree(elem)
		}
		return seq
	default:
		return value
	}
}
