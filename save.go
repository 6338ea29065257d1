// File: layerconf/save.go
package layerconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Save writes a merged configuration tree to a file. The format is implied by
// the target extension (.yaml/.yml, .toml/.tml, .json). The write is atomic:
// the data goes to a temporary file in the target directory which is then
// renamed into place.
func Save(data map[string]any, path string) error {
	format := detectFileFormat(path)

	var encoded []byte
	switch format {
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		encoded = out
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(data); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		encoded = buf.Bytes()
	case "json":
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		encoded = out
	default:
		return fmt.Errorf("unable to determine config format for file '%s'", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file: %w", err)
	}
	defer os.Remove(tempFile.Name()) // Clean up temp file if rename fails

	if _, err := tempFile.Write(encoded); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temp config file '%s': %w", tempFile.Name(), err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp config file '%s': %w", tempFile.Name(), err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp config file '%s': %w", tempFile.Name(), err)
	}

	if err := os.Rename(tempFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temp file to '%s': %w", path, err)
	}

	if err := os.Chmod(path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on config file '%s': %w", path, err)
	}

	return nil
}
