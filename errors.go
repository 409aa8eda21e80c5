package logger

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration failures.
var (
	ErrInvalidLevel     = errors.New("invalid log level")
	ErrInvalidRetention = errors.New("retention days must be non-negative")
)

// ConfigError reports a configuration that cannot be applied. Init and
// SetLogLevel return it for unusable settings; it wraps the underlying cause,
// including filesystem errors from sink construction.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("logger config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
