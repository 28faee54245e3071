package clockface

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidMarkStyle = errors.New("invalid mark style")
	ErrInvalidTime      = errors.New("invalid time of day")
)

// ConfigurationError reports a configuration value that could not be used.
// The configuration it was applied to is left unchanged.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("clockface: %v %q", e.Err, e.Value)
	}
	return fmt.Sprintf("clockface: %s: %v %q", e.Field, e.Err, e.Value)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
