// File: layerconf/verify.go
package layerconf

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// LoadVerified loads the document hierarchy rooted at file and decodes the
// merged tree into target, which must be a non-nil struct pointer. Fields of
// the merged tree that the target does not consume are reported with a
// warning; a tree that does not fit the target at all is a
// ConfigurationError.
func (l *Loader) LoadVerified(file string, target any) error {
	data, err := l.Load(file)
	if err != nil {
		return err
	}
	return l.decode(data, target)
}

// decode maps the merged tree onto the target model using the loader's tag
// name, weak typing and the standard duration/slice conversion hooks.
func (l *Loader) decode(data map[string]any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	var metadata mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          l.tagName,
		WeaklyTypedInput: true,
		Metadata:         &metadata,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return l.invalidConfig("config does not match the target model: %v", err)
	}

	if len(metadata.Unused) > 0 {
		sort.Strings(metadata.Unused)
		l.logger.Warn("config contains parameters not used by the model",
			"fields", strings.Join(metadata.Unused, ", "))
	}

	return nil
}

// VerifyFilesExist checks that every given key path is present in the tree
// and that the file or directory its value references exists on disk.
func (l *Loader) VerifyFilesExist(data map[string]any, keyPaths [][]string) error {
	for _, path := range keyPaths {
		value, ok := valueAtPath(data, path)
		if !ok {
			return l.invalidConfig("the path %v is not contained in the configuration", path)
		}

		file, ok := value.(string)
		if !ok {
			return l.invalidConfig("the value %v at path %v is not a file reference", value, path)
		}

		if _, err := os.Stat(file); err != nil {
			return l.invalidConfig("the file %s referenced by %v does not exist", file, path)
		}
	}
	return nil
}
