// file: internal/picture/picture.go
// version: 1.3.0
// guid: 9b4e7f2a-1c6d-4e8b-a3f5-7d0c2e9b4f6a

// Package picture models embedded artwork attached to a metadata record:
// a single picture entity with its own change-tracked field set and a
// lifecycle-managed collection with soft removal and commit/revert.
package picture

import (
	"fmt"

	"github.com/jdfalk/audiotag/internal/fields"
	"github.com/jdfalk/audiotag/internal/store"
	"github.com/oklog/ulid/v2"
)

// Type classifies a picture the way ID3v2 APIC frames do. The numeric
// values match the ID3v2 codes and are what the external representation
// stores under "Type".
type Type int

const (
	TypeOther Type = iota
	TypeFileIcon
	TypeOtherFileIcon
	TypeFrontCover
	TypeBackCover
	TypeLeafletPage
	TypeMedia
	TypeLeadArtist
	TypeArtist
	TypeConductor
	TypeBand
	TypeComposer
	TypeLyricist
	TypeRecordingLocation
	TypeDuringRecording
	TypeDuringPerformance
	TypeMovieScreenCapture
	TypeColouredFish
	TypeIllustration
	TypeBandLogo
	TypePublisherLogo
)

var typeNames = map[Type]string{
	TypeOther:              "Other",
	TypeFileIcon:           "File Icon",
	TypeOtherFileIcon:      "Other File Icon",
	TypeFrontCover:         "Front Cover",
	TypeBackCover:          "Back Cover",
	TypeLeafletPage:        "Leaflet Page",
	TypeMedia:              "Media",
	TypeLeadArtist:         "Lead Artist",
	TypeArtist:             "Artist",
	TypeConductor:          "Conductor",
	TypeBand:               "Band",
	TypeComposer:           "Composer",
	TypeLyricist:           "Lyricist",
	TypeRecordingLocation:  "Recording Location",
	TypeDuringRecording:    "During Recording",
	TypeDuringPerformance:  "During Performance",
	TypeMovieScreenCapture: "Movie Screen Capture",
	TypeColouredFish:       "Coloured Fish",
	TypeIllustration:       "Illustration",
	TypeBandLogo:           "Band Logo",
	TypePublisherLogo:      "Publisher Logo",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// State is the picture lifecycle bitset. A picture can be both added and
// removed inside one uncommitted session, so this is a mask rather than
// a plain enum. The zero value means saved (committed, unchanged).
type State uint8

const (
	StateSaved   State = 0
	StateAdded   State = 1 << 0
	StateRemoved State = 1 << 1
)

// Field keys for a picture's own change-tracked store. The names double
// as the keys of the picture's external representation.
type Key string

const (
	KeyImageData   Key = "Image Data"
	KeyType        Key = "Type"
	KeyDescription Key = "Description"
)

// Picture is one attached image. Pictures compare by identity only: two
// pictures with identical bytes are still distinct. Identity is a stable
// ULID handle, never a pointer.
type Picture struct {
	handle string
	state  State
	fields *store.Store[Key]
}

// New creates a picture holding data and typ, with an optional
// description (empty string means none). The values land in the
// committed layer; lifecycle state is what distinguishes a freshly
// parsed picture from a newly attached one.
func New(data []byte, typ Type, description string) *Picture {
	p := &Picture{
		handle: ulid.Make().String(),
		fields: store.New[Key](),
	}
	p.fields.SetBase(KeyImageData, fields.Bytes(data))
	p.fields.SetBase(KeyType, fields.Int(int64(typ)))
	if description != "" {
		p.fields.SetBase(KeyDescription, fields.Text(description))
	}
	return p
}

// Handle returns the picture's identity.
func (p *Picture) Handle() string { return p.handle }

// State returns the current lifecycle bits.
func (p *Picture) State() State { return p.state }

// Data returns the effective image bytes.
func (p *Picture) Data() []byte {
	v, ok := p.fields.Get(KeyImageData)
	if !ok {
		return nil
	}
	b, _ := v.AsBytes()
	return b
}

// Type returns the effective picture type.
func (p *Picture) Type() Type {
	v, ok := p.fields.Get(KeyType)
	if !ok {
		return TypeOther
	}
	n, ok := v.AsInt()
	if !ok {
		return TypeOther
	}
	return Type(n)
}

// SetType records a pending type change.
func (p *Picture) SetType(t Type) {
	p.fields.Set(KeyType, fields.Int(int64(t)))
}

// Description returns the effective description, reporting absent when
// none is set or the stored variant is not text.
func (p *Picture) Description() (string, bool) {
	v, ok := p.fields.Get(KeyDescription)
	if !ok {
		return "", false
	}
	return v.AsText()
}

// SetDescription records a pending description change.
func (p *Picture) SetDescription(s string) {
	p.fields.Set(KeyDescription, fields.Text(s))
}

// ClearDescription records pending removal of the description.
func (p *Picture) ClearDescription() {
	p.fields.Clear(KeyDescription)
}

// HasChanges reports whether the picture's own field set has pending
// edits. Lifecycle state is the collection's concern, not the picture's.
func (p *Picture) HasChanges() bool {
	return p.fields.HasChanges()
}

// Merge commits the picture's pending field edits.
func (p *Picture) Merge() { p.fields.Merge() }

// Revert discards the picture's pending field edits.
func (p *Picture) Revert() { p.fields.Revert() }

// Clone returns a new picture (fresh identity) carrying this picture's
// effective data, type, and description.
func (p *Picture) Clone() *Picture {
	desc, _ := p.Description()
	return New(p.Data(), p.Type(), desc)
}

// External produces the picture's dictionary representation.
func (p *Picture) External() map[string]any {
	out := map[string]any{
		string(KeyImageData): p.Data(),
		string(KeyType):      int64(p.Type()),
	}
	if desc, ok := p.Description(); ok {
		out[string(KeyDescription)] = desc
	}
	return out
}

// FromExternal rebuilds a picture from its dictionary representation.
// Missing or mistyped entries fall back to empty data and TypeOther;
// partial data is preferable to failure.
func FromExternal(m map[string]any) *Picture {
	var data []byte
	if raw, ok := m[string(KeyImageData)].([]byte); ok {
		data = raw
	}
	typ := TypeOther
	if v, ok := fields.FromInterface(m[string(KeyType)]); ok {
		if n, ok := v.AsInt(); ok {
			typ = Type(n)
		}
	}
	desc, _ := m[string(KeyDescription)].(string)
	return New(data, typ, desc)
}
