package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration misuse.
var (
	// ErrMissingUIDField is returned when a Search instance is constructed
	// without a UID field descriptor.
	ErrMissingUIDField = errors.New("uid field name is required")

	// ErrAlreadyInitialized is returned when a strategy setter is invoked
	// after the first indexing operation.
	ErrAlreadyInitialized = errors.New("already initialized")
)

// ConfigurationError reports an attempt to replace a strategy after indexing
// has begun.
type ConfigurationError struct {
	Component string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s cannot be set after documents have been indexed", e.Component)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrAlreadyInitialized
}

func newConfigurationError(component string) *ConfigurationError {
	return &ConfigurationError{Component: component}
}
