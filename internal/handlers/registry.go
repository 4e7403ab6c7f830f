// file: internal/handlers/registry.go
// version: 1.0.0
// guid: 0a4e8c2f-6b1d-4f7a-9e3c-7d2b0f4a8e6c

package handlers

import "github.com/jdfalk/audiotag/internal/formats"

// DefaultRegistry builds the registry of built-in format adapters,
// ordered for probing. Registration happens once at startup; the
// returned registry is read-only afterward.
func DefaultRegistry() *formats.Registry {
	return formats.NewRegistry(
		FLACDescriptor(),
		MP4Descriptor(),
		MP3Descriptor(),
		OggDescriptor(),
		WAVDescriptor(),
	)
}

// NewResolver builds a resolver over the default registry.
func NewResolver() *formats.Resolver {
	return formats.NewResolver(DefaultRegistry())
}
