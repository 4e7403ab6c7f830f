// file: internal/picture/collection.go
// version: 1.2.0
// guid: 5c8d1e4f-7a2b-4c9d-8e3f-6b1a4d7c0e2f

package picture

import "iter"

// Collection is the set of pictures attached to one metadata record.
// Removal is soft: a removed picture stays in the collection, hidden
// from queries, until Merge drops it or Revert restores it. Insertion
// order is preserved for stable iteration but carries no meaning.
type Collection struct {
	pictures []*Picture
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Attach adds p as a pending addition. If a picture with the same
// identity is already present and marked removed, the removal is undone
// instead; if it is present and not removed, Attach is a no-op.
func (c *Collection) Attach(p *Picture) {
	if existing := c.find(p.handle); existing != nil {
		existing.state &^= StateRemoved
		return
	}
	p.state = StateAdded
	c.pictures = append(c.pictures, p)
}

// AddSaved installs a picture parsed from an existing file. The picture
// enters in the saved state because its data is already committed on
// disk; routing parsed pictures through Attach would mark them as
// pending additions. No-op if the identity is already present.
func (c *Collection) AddSaved(p *Picture) {
	if c.find(p.handle) != nil {
		return
	}
	p.state = StateSaved
	c.pictures = append(c.pictures, p)
}

// Remove marks p as removed. The picture stays in the collection until
// Merge. Unknown identities are ignored.
func (c *Collection) Remove(p *Picture) {
	if existing := c.find(p.handle); existing != nil {
		existing.state |= StateRemoved
	}
}

// RemoveKind marks every picture of type t as removed.
func (c *Collection) RemoveKind(t Type) {
	for _, p := range c.pictures {
		if p.Type() == t {
			p.state |= StateRemoved
		}
	}
}

// RemoveAll marks every picture as removed.
func (c *Collection) RemoveAll() {
	for _, p := range c.pictures {
		p.state |= StateRemoved
	}
}

// Visible iterates over the pictures not marked removed. The sequence is
// finite and restartable.
func (c *Collection) Visible() iter.Seq[*Picture] {
	return func(yield func(*Picture) bool) {
		for _, p := range c.pictures {
			if p.state&StateRemoved != 0 {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// VisibleKind iterates over the visible pictures of type t.
func (c *Collection) VisibleKind(t Type) iter.Seq[*Picture] {
	return func(yield func(*Picture) bool) {
		for p := range c.Visible() {
			if p.Type() != t {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Count returns the number of visible pictures.
func (c *Collection) Count() int {
	n := 0
	for range c.Visible() {
		n++
	}
	return n
}

// HasChanges reports whether any picture has a pending lifecycle change
// or pending field edits. A picture both added and removed in the same
// session cancels itself out and is not an externally visible diff.
func (c *Collection) HasChanges() bool {
	for _, p := range c.pictures {
		if p.state == StateAdded|StateRemoved {
			continue
		}
		if p.state != StateSaved || p.fields.HasChanges() {
			return true
		}
	}
	return false
}

// Merge commits the collection: removed pictures are dropped entirely
// (including added-then-removed ones, which were never persisted), and
// every survivor has its field edits merged and its state reset to
// saved.
func (c *Collection) Merge() {
	kept := c.pictures[:0]
	for _, p := range c.pictures {
		if p.state&StateRemoved != 0 {
			continue
		}
		p.Merge()
		p.state = StateSaved
		kept = append(kept, p)
	}
	c.pictures = kept
}

// Revert discards the session's picture changes: pending additions are
// dropped (there is no committed state to restore them to), removals of
// saved pictures are undone, and every survivor's field edits are
// reverted.
func (c *Collection) Revert() {
	kept := c.pictures[:0]
	for _, p := range c.pictures {
		if p.state&StateAdded != 0 {
			continue
		}
		p.state &^= StateRemoved
		p.Revert()
		kept = append(kept, p)
	}
	c.pictures = kept
}

func (c *Collection) find(handle string) *Picture {
	for _, p := range c.pictures {
		if p.handle == handle {
			return p
		}
	}
	return nil
}
