// file: internal/store/store.go
// version: 1.0.0
// guid: 2f6a8b3c-5d1e-4a7f-b2c9-8e0d4f6a1b3c

// Package store implements a two-layer change-tracked key/value record:
// committed base values plus uncommitted shadow edits with tombstones.
// It is generic over the key enumeration so the same machinery backs the
// top-level metadata record and each attached picture's field set.
package store

import "github.com/jdfalk/audiotag/internal/fields"

type shadowEntry struct {
	tombstone bool
	value     fields.Value
}

// Store holds committed values in base and pending edits in shadow. The
// shadow layer only ever contains entries whose effective value differs
// from base; edits that restore the committed value cancel out.
//
// Store is not safe for concurrent mutation; callers serialize access.
type Store[K comparable] struct {
	base   map[K]fields.Value
	shadow map[K]shadowEntry
}

// New creates an empty store.
func New[K comparable]() *Store[K] {
	return &Store[K]{
		base:   make(map[K]fields.Value),
		shadow: make(map[K]shadowEntry),
	}
}

// Get returns the effective value for k: the shadow entry if one exists
// (a tombstone reads as absent), otherwise the base value.
func (s *Store[K]) Get(k K) (fields.Value, bool) {
	if e, ok := s.shadow[k]; ok {
		if e.tombstone {
			return fields.Value{}, false
		}
		return e.value, true
	}
	v, ok := s.base[k]
	return v, ok
}

// Set records v as the pending value for k. Setting a value equal to the
// committed one erases any pending edit instead of recording a no-op.
func (s *Store[K]) Set(k K, v fields.Value) {
	if base, ok := s.base[k]; ok && base.Equal(v) {
		delete(s.shadow, k)
		return
	}
	s.shadow[k] = shadowEntry{value: v}
}

// Clear records deletion of k. If base has no value for k this is a true
// no-op and any pending edit is simply dropped; otherwise a tombstone is
// installed.
func (s *Store[K]) Clear(k K) {
	if _, ok := s.base[k]; ok {
		s.shadow[k] = shadowEntry{tombstone: true}
		return
	}
	delete(s.shadow, k)
}

// SetBase writes directly into the committed layer, bypassing change
// tracking. Format handlers use this while parsing an existing file so a
// freshly read record reports no pending changes.
func (s *Store[K]) SetBase(k K, v fields.Value) {
	s.base[k] = v
}

// HasChanges reports whether any pending edits exist.
func (s *Store[K]) HasChanges() bool {
	return len(s.shadow) > 0
}

// Merge commits every pending edit into base (tombstones delete their
// key) and clears the shadow layer. Calling Merge on a store with no
// pending edits is a no-op.
func (s *Store[K]) Merge() {
	for k, e := range s.shadow {
		if e.tombstone {
			delete(s.base, k)
		} else {
			s.base[k] = e.value
		}
	}
	clear(s.shadow)
}

// Revert discards every pending edit, restoring effective values to the
// committed layer. Idempotent.
func (s *Store[K]) Revert() {
	clear(s.shadow)
}

// Keys returns the keys with an effective value, in unspecified order.
func (s *Store[K]) Keys() []K {
	keys := make([]K, 0, len(s.base)+len(s.shadow))
	for k := range s.base {
		if e, ok := s.shadow[k]; !ok || !e.tombstone {
			keys = append(keys, k)
		}
	}
	for k, e := range s.shadow {
		if _, inBase := s.base[k]; !inBase && !e.tombstone {
			keys = append(keys, k)
		}
	}
	return keys
}
