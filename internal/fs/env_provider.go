// Package fs provides small filesystem and environment abstractions that
// keep the CLI layers testable without touching the real process state.
package fs

import (
	"os"
)

// EnvProvider provides environment variable access.
type EnvProvider interface {
	// Get returns the value of the environment variable named by the key.
	Get(key string) string
}

// OSEnvProvider reads from the actual environment using os.Getenv.
type OSEnvProvider struct{}

// NewEnvProvider creates a new OSEnvProvider.
func NewEnvProvider() *OSEnvProvider {
	return &OSEnvProvider{}
}

// Get returns the value of the environment variable named by the key.
func (e *OSEnvProvider) Get(key string) string {
	return os.Getenv(key)
}

// MapEnvProvider serves values from a fixed map. It is intended for tests
// which must not depend on the real environment.
type MapEnvProvider struct {
	Values map[string]string
}

// Get returns the mapped value, or empty when the key is absent.
func (m *MapEnvProvider) Get(key string) string {
	return m.Values[key]
}
