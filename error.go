// File: layerconf/error.go
package layerconf

import "fmt"

// ConfigurationError signals a severe configuration issue: a missing or
// unparsable document, a malformed parent reference, or an unsupported type
// pairing during merge. All failures of the loader are of this type,
// distinguished only by message.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// invalidConfig logs the message at error severity and returns it wrapped in
// a ConfigurationError. Every failure path of the loader goes through here so
// callers that only observe logs can diagnose failures without inspecting the
// error payload.
func (l *Loader) invalidConfig(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	l.logger.Error(msg)
	return &ConfigurationError{Message: msg}
}
