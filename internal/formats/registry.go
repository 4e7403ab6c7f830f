// file: internal/formats/registry.go
// version: 1.2.0
// guid: 1a5c9e3f-7b4d-4f8a-b1c6-3d0e7f2a5b9c

// Package formats holds the format-handler capability contract, the
// priority-ordered handler registry, and the resolver that probes
// candidate handlers against a file until one parses it.
package formats

import (
	"sort"
	"strings"

	"github.com/jdfalk/audiotag/internal/record"
)

// Handler is a format-specific adapter bound to one file. Read populates
// the record's committed layer from the file; Write persists the
// record's effective values and commits them on success.
type Handler interface {
	Read() error
	Write() error
	Record() *record.Record
}

// Descriptor declares one handler's capabilities: the extensions and
// MIME types it claims, its probe priority, and its constructor.
type Descriptor struct {
	Name       string
	Extensions []string
	MIMETypes  []string
	// Higher priority handlers probe first when an extension is claimed
	// by more than one format family.
	Priority int
	New      func(path string) Handler
}

// HandlesExtension reports whether the descriptor claims ext. The check
// is case-insensitive and tolerates a leading dot.
func (d Descriptor) HandlesExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, e := range d.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// HandlesMIME reports whether the descriptor claims the MIME type,
// case-insensitively.
func (d Descriptor) HandlesMIME(mimeType string) bool {
	for _, m := range d.MIMETypes {
		if strings.EqualFold(m, mimeType) {
			return true
		}
	}
	return false
}

// Registry is the ordered handler table. It is built once and read-only
// afterward, so concurrent resolution against one registry needs no
// locking.
type Registry struct {
	descriptors []Descriptor
}

// NewRegistry builds a registry from descs, ordered by descending
// priority with registration order breaking ties.
func NewRegistry(descs ...Descriptor) *Registry {
	ordered := make([]Descriptor, len(descs))
	copy(ordered, descs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})
	return &Registry{descriptors: ordered}
}

// Descriptors returns the registered descriptors in probe order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Candidates returns the descriptors claiming ext, in probe order.
func (r *Registry) Candidates(ext string) []Descriptor {
	var out []Descriptor
	for _, d := range r.descriptors {
		if d.HandlesExtension(ext) {
			out = append(out, d)
		}
	}
	return out
}

// CandidatesMIME returns the descriptors claiming the MIME type, in
// probe order.
func (r *Registry) CandidatesMIME(mimeType string) []Descriptor {
	var out []Descriptor
	for _, d := range r.descriptors {
		if d.HandlesMIME(mimeType) {
			out = append(out, d)
		}
	}
	return out
}

// Extensions returns the union of all claimed extensions, lowercased.
func (r *Registry) Extensions() map[string]bool {
	out := make(map[string]bool)
	for _, d := range r.descriptors {
		for _, e := range d.Extensions {
			out[strings.ToLower(e)] = true
		}
	}
	return out
}
