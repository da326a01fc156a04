// Package credential persists the single API key used by the explanation
// generator.
package credential

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no key has been stored.
var ErrNotFound = errors.New("credential: no API key stored")

// Store saves and retrieves one opaque credential.
type Store interface {
	// Save stores key, replacing any previous value. An empty key removes it.
	Save(key string) error
	Load() (string, error)
	Close() error
}

// Resolve prefers the stored key and falls back to the given value (usually
// from config or the environment).
func Resolve(s Store, fallback string) (string, error) {
	if s != nil {
		key, err := s.Load()
		switch {
		case err == nil:
			return key, nil
		case !errors.Is(err, ErrNotFound):
			return "", fmt.Errorf("load credential: %w", err)
		}
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", ErrNotFound
}

// Mask hides all but the last four characters of a key for display.
func Mask(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
