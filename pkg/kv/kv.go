// Package kv provides a minimal durable key-value slot: a single named
// blob that survives process restarts. It is the persistence boundary for
// the inquiry cart; concurrent writers are resolved last-writer-wins.
package kv

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned by Load when the slot has never been written.
var ErrNotFound = errors.New("kv: slot not found")

// Slot is a single durable blob with load and save operations.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// IsNotFound reports whether err means the slot is empty rather than
// broken.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
