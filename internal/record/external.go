// file: internal/record/external.go
// version: 1.2.0
// guid: 6b9d2e4a-1f7c-4d8b-a5e3-9c2f6b0d4e8a

package record

import (
	"fmt"
	"io"

	"github.com/jdfalk/audiotag/internal/fields"
	"github.com/jdfalk/audiotag/internal/picture"
	"howett.net/plist"
)

// External produces the record's dictionary representation: a flat map
// of effective scalar fields under their canonical key names, plus the
// visible pictures under "Attached Pictures". This representation is
// independent of any on-disk tag format and round-trips through
// FromExternal.
func (r *Record) External() map[string]any {
	out := make(map[string]any)
	for _, k := range fields.AllKeys() {
		if v, ok := r.fields.Get(k); ok {
			out[string(k)] = v.Interface()
		}
	}
	var pics []any
	for p := range r.pictures.Visible() {
		pics = append(pics, p.External())
	}
	if len(pics) > 0 {
		out[fields.AttachedPictures] = pics
	}
	return out
}

// FromExternal rebuilds a record from its dictionary representation.
// Values land in the committed layer, exactly as if the record had been
// freshly parsed, so the result reports no pending changes. Entries that
// cannot be converted are skipped rather than failing the whole record.
func FromExternal(in map[string]any) *Record {
	r := New()
	for _, k := range fields.AllKeys() {
		raw, ok := in[string(k)]
		if !ok {
			continue
		}
		if v, ok := fields.FromInterface(raw); ok {
			r.fields.Set(k, v)
		}
	}
	if rawPics, ok := in[fields.AttachedPictures].([]any); ok {
		for _, rawPic := range rawPics {
			m, ok := rawPic.(map[string]any)
			if !ok {
				continue
			}
			r.pictures.Attach(picture.FromExternal(m))
		}
	}
	r.MergeChanges()
	return r
}

// EncodePropertyList writes the record's dictionary representation as an
// XML property list.
func (r *Record) EncodePropertyList(w io.Writer) error {
	enc := plist.NewEncoder(w)
	enc.Indent("\t")
	if err := enc.Encode(r.External()); err != nil {
		return fmt.Errorf("encode property list: %w", err)
	}
	return nil
}

// DecodePropertyList reads a property list produced by
// EncodePropertyList and rebuilds the record.
func DecodePropertyList(rd io.ReadSeeker) (*Record, error) {
	var raw map[string]any
	if err := plist.NewDecoder(rd).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode property list: %w", err)
	}
	return FromExternal(normalizePlist(raw)), nil
}

// normalizePlist rewrites plist decoder output into the generic shapes
// FromExternal expects (map[string]any values may decode as
// map[string]interface{} with nested []interface{} and uint64 numbers,
// which FromInterface already accepts).
func normalizePlist(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case []any:
			items := make([]any, 0, len(t))
			for _, item := range t {
				if m, ok := item.(map[string]any); ok {
					items = append(items, normalizePlist(m))
				} else {
					items = append(items, item)
				}
			}
			out[k] = items
		case map[string]any:
			out[k] = normalizePlist(t)
		default:
			out[k] = v
		}
	}
	return out
}
