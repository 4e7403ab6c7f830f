// file: internal/record/copy.go
// version: 1.2.0
// guid: 3e7a1c5f-8b2d-4f6a-9c1e-5d8b0f3a7c2e

package record

import "github.com/jdfalk/audiotag/internal/fields"

// CopyFields copies the current effective values of every field in the
// selected categories from src into the receiver's pending layer.
// Fields absent on src are cleared on the receiver. Values are deep
// copied so later edits to src's byte or map fields cannot leak into
// the receiver. Pictures are not copied; use CopyPicturesFrom.
func (r *Record) CopyFields(mask fields.Category, src *Record) {
	for _, k := range fields.Keys(mask) {
		if v, ok := src.Get(k); ok {
			r.fields.Set(k, v.Clone())
		} else {
			r.fields.Clear(k)
		}
	}
}

// RemoveFields records pending deletion of every field in the selected
// categories.
func (r *Record) RemoveFields(mask fields.Category) {
	for _, k := range fields.Keys(mask) {
		r.fields.Clear(k)
	}
}

// CopyPicturesFrom clears the receiver's picture collection and
// re-attaches a clone of every picture currently visible on src. The
// clones enter as pending additions.
func (r *Record) CopyPicturesFrom(src *Record) {
	r.pictures.RemoveAll()
	for p := range src.pictures.Visible() {
		r.pictures.Attach(p.Clone())
	}
}
