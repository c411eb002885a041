package plugin

import (
	"fmt"
)

// ErrUnknownFactory is returned when a manifest names a plugin that
// is not registered.
type ErrUnknownFactory struct {
	Manifest string
	Factory  string
}

func (e *ErrUnknownFactory) Error() string {
	return fmt.Sprintf("%s: no plugin registered as %q", e.Manifest, e.Factory)
}

// ErrBadManifest is returned when a manifest cannot be parsed.
type ErrBadManifest struct {
	Path string
	Err  error
}

func (e *ErrBadManifest) Error() string {
	return fmt.Sprintf("%s: bad manifest: %v", e.Path, e.Err)
}

func (e *ErrBadManifest) Unwrap() error {
	return e.Err
}
