// file: internal/record/record.go
// version: 1.4.0
// guid: 8a3f6b1d-4e7c-4a2f-9d5e-0b8c3f6a1d4e

// Package record provides the change-tracked metadata record shared by
// every format handler: one two-layer value store for scalar fields plus
// one lifecycle-managed picture collection, behind typed accessors.
package record

import (
	"github.com/jdfalk/audiotag/internal/fields"
	"github.com/jdfalk/audiotag/internal/picture"
	"github.com/jdfalk/audiotag/internal/store"
)

// Record is the format-agnostic metadata for one audio file. A record is
// owned by a single handler/session; concurrent mutation is the
// caller's problem to serialize.
type Record struct {
	fields   *store.Store[fields.Key]
	pictures *picture.Collection
}

// New creates an empty record with no pending changes.
func New() *Record {
	return &Record{
		fields:   store.New[fields.Key](),
		pictures: picture.NewCollection(),
	}
}

// Get returns the effective value for k.
func (r *Record) Get(k fields.Key) (fields.Value, bool) {
	return r.fields.Get(k)
}

// Set records a pending value for k.
func (r *Record) Set(k fields.Key, v fields.Value) {
	r.fields.Set(k, v)
}

// Clear records pending deletion of k.
func (r *Record) Clear(k fields.Key) {
	r.fields.Clear(k)
}

// SetBase writes a committed value directly, bypassing change tracking.
// Only format handlers populating a freshly parsed file should call it.
func (r *Record) SetBase(k fields.Key, v fields.Value) {
	r.fields.SetBase(k, v)
}

// Pictures returns the record's picture collection.
func (r *Record) Pictures() *picture.Collection {
	return r.pictures
}

// HasUnsavedChanges reports whether any field or picture change is
// pending.
func (r *Record) HasUnsavedChanges() bool {
	return r.fields.HasChanges() || r.pictures.HasChanges()
}

// RevertUnsavedChanges discards all pending field and picture changes.
func (r *Record) RevertUnsavedChanges() {
	r.fields.Revert()
	r.pictures.Revert()
}

// MergeChanges commits all pending field and picture changes. Handlers
// call this only after the underlying write succeeded; merging earlier
// silently diverges the record from the file on disk.
func (r *Record) MergeChanges() {
	r.fields.Merge()
	r.pictures.Merge()
}

// Typed accessors. Each is a thin wrapper over Get/Set with the field's
// fixed key and expected variant; a stored value of the wrong variant
// reads as absent.

func (r *Record) text(k fields.Key) (string, bool) {
	v, ok := r.fields.Get(k)
	if !ok {
		return "", false
	}
	return v.AsText()
}

func (r *Record) intVal(k fields.Key) (int64, bool) {
	v, ok := r.fields.Get(k)
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

func (r *Record) floatVal(k fields.Key) (float64, bool) {
	v, ok := r.fields.Get(k)
	if !ok {
		return 0, false
	}
	return v.AsFloat()
}

func (r *Record) boolVal(k fields.Key) (bool, bool) {
	v, ok := r.fields.Get(k)
	if !ok {
		return false, false
	}
	return v.AsBool()
}

func (r *Record) Title() (string, bool) { return r.text(fields.Title) }
func (r *Record) SetTitle(s string)     { r.fields.Set(fields.Title, fields.Text(s)) }

func (r *Record) AlbumTitle() (string, bool) { return r.text(fields.AlbumTitle) }
func (r *Record) SetAlbumTitle(s string)     { r.fields.Set(fields.AlbumTitle, fields.Text(s)) }

func (r *Record) Artist() (string, bool) { return r.text(fields.Artist) }
func (r *Record) SetArtist(s string)     { r.fields.Set(fields.Artist, fields.Text(s)) }

func (r *Record) AlbumArtist() (string, bool) { return r.text(fields.AlbumArtist) }
func (r *Record) SetAlbumArtist(s string)     { r.fields.Set(fields.AlbumArtist, fields.Text(s)) }

func (r *Record) Genre() (string, bool) { return r.text(fields.Genre) }
func (r *Record) SetGenre(s string)     { r.fields.Set(fields.Genre, fields.Text(s)) }

func (r *Record) Composer() (string, bool) { return r.text(fields.Composer) }
func (r *Record) SetComposer(s string)     { r.fields.Set(fields.Composer, fields.Text(s)) }

func (r *Record) ReleaseDate() (string, bool) { return r.text(fields.ReleaseDate) }
func (r *Record) SetReleaseDate(s string)     { r.fields.Set(fields.ReleaseDate, fields.Text(s)) }

func (r *Record) Compilation() (bool, bool) { return r.boolVal(fields.Compilation) }
func (r *Record) SetCompilation(b bool)     { r.fields.Set(fields.Compilation, fields.Bool(b)) }

func (r *Record) TrackNumber() (int64, bool) { return r.intVal(fields.TrackNumber) }
func (r *Record) SetTrackNumber(n int64)     { r.fields.Set(fields.TrackNumber, fields.Int(n)) }

func (r *Record) TrackTotal() (int64, bool) { return r.intVal(fields.TrackTotal) }
func (r *Record) SetTrackTotal(n int64)     { r.fields.Set(fields.TrackTotal, fields.Int(n)) }

func (r *Record) DiscNumber() (int64, bool) { return r.intVal(fields.DiscNumber) }
func (r *Record) SetDiscNumber(n int64)     { r.fields.Set(fields.DiscNumber, fields.Int(n)) }

func (r *Record) DiscTotal() (int64, bool) { return r.intVal(fields.DiscTotal) }
func (r *Record) SetDiscTotal(n int64)     { r.fields.Set(fields.DiscTotal, fields.Int(n)) }

func (r *Record) Lyrics() (string, bool) { return r.text(fields.Lyrics) }
func (r *Record) SetLyrics(s string)     { r.fields.Set(fields.Lyrics, fields.Text(s)) }

func (r *Record) BPM() (int64, bool) { return r.intVal(fields.BPM) }
func (r *Record) SetBPM(n int64)     { r.fields.Set(fields.BPM, fields.Int(n)) }

func (r *Record) Rating() (int64, bool) { return r.intVal(fields.Rating) }
func (r *Record) SetRating(n int64)     { r.fields.Set(fields.Rating, fields.Int(n)) }

func (r *Record) Comment() (string, bool) { return r.text(fields.Comment) }
func (r *Record) SetComment(s string)     { r.fields.Set(fields.Comment, fields.Text(s)) }

func (r *Record) ISRC() (string, bool) { return r.text(fields.ISRC) }
func (r *Record) SetISRC(s string)     { r.fields.Set(fields.ISRC, fields.Text(s)) }

func (r *Record) MCN() (string, bool) { return r.text(fields.MCN) }
func (r *Record) SetMCN(s string)     { r.fields.Set(fields.MCN, fields.Text(s)) }

func (r *Record) MusicBrainzReleaseID() (string, bool) {
	return r.text(fields.MusicBrainzReleaseID)
}
func (r *Record) SetMusicBrainzReleaseID(s string) {
	r.fields.Set(fields.MusicBrainzReleaseID, fields.Text(s))
}

func (r *Record) MusicBrainzRecordingID() (string, bool) {
	return r.text(fields.MusicBrainzRecordingID)
}
func (r *Record) SetMusicBrainzRecordingID(s string) {
	r.fields.Set(fields.MusicBrainzRecordingID, fields.Text(s))
}

func (r *Record) TitleSortOrder() (string, bool) { return r.text(fields.TitleSortOrder) }
func (r *Record) SetTitleSortOrder(s string) {
	r.fields.Set(fields.TitleSortOrder, fields.Text(s))
}

func (r *Record) AlbumTitleSortOrder() (string, bool) { return r.text(fields.AlbumTitleSortOrder) }
func (r *Record) SetAlbumTitleSortOrder(s string) {
	r.fields.Set(fields.AlbumTitleSortOrder, fields.Text(s))
}

func (r *Record) ArtistSortOrder() (string, bool) { return r.text(fields.ArtistSortOrder) }
func (r *Record) SetArtistSortOrder(s string) {
	r.fields.Set(fields.ArtistSortOrder, fields.Text(s))
}

func (r *Record) AlbumArtistSortOrder() (string, bool) { return r.text(fields.AlbumArtistSortOrder) }
func (r *Record) SetAlbumArtistSortOrder(s string) {
	r.fields.Set(fields.AlbumArtistSortOrder, fields.Text(s))
}

func (r *Record) ComposerSortOrder() (string, bool) { return r.text(fields.ComposerSortOrder) }
func (r *Record) SetComposerSortOrder(s string) {
	r.fields.Set(fields.ComposerSortOrder, fields.Text(s))
}

func (r *Record) GenreSortOrder() (string, bool) { return r.text(fields.GenreSortOrder) }
func (r *Record) SetGenreSortOrder(s string) {
	r.fields.Set(fields.GenreSortOrder, fields.Text(s))
}

func (r *Record) Grouping() (string, bool) { return r.text(fields.Grouping) }
func (r *Record) SetGrouping(s string)     { r.fields.Set(fields.Grouping, fields.Text(s)) }

// AdditionalMetadata returns the free-form field bucket.
func (r *Record) AdditionalMetadata() (map[string]fields.Value, bool) {
	v, ok := r.fields.Get(fields.AdditionalMetadata)
	if !ok {
		return nil, false
	}
	return v.AsMap()
}

// SetAdditionalMetadata replaces the free-form field bucket.
func (r *Record) SetAdditionalMetadata(m map[string]fields.Value) {
	r.fields.Set(fields.AdditionalMetadata, fields.Map(m))
}

func (r *Record) ReplayGainReferenceLoudness() (float64, bool) {
	return r.floatVal(fields.ReplayGainReferenceLoudness)
}
func (r *Record) SetReplayGainReferenceLoudness(f float64) {
	r.fields.Set(fields.ReplayGainReferenceLoudness, fields.Float(f))
}

func (r *Record) ReplayGainTrackGain() (float64, bool) {
	return r.floatVal(fields.ReplayGainTrackGain)
}
func (r *Record) SetReplayGainTrackGain(f float64) {
	r.fields.Set(fields.ReplayGainTrackGain, fields.Float(f))
}

func (r *Record) ReplayGainTrackPeak() (float64, bool) {
	return r.floatVal(fields.ReplayGainTrackPeak)
}
func (r *Record) SetReplayGainTrackPeak(f float64) {
	r.fields.Set(fields.ReplayGainTrackPeak, fields.Float(f))
}

func (r *Record) ReplayGainAlbumGain() (float64, bool) {
	return r.floatVal(fields.ReplayGainAlbumGain)
}
func (r *Record) SetReplayGainAlbumGain(f float64) {
	r.fields.Set(fields.ReplayGainAlbumGain, fields.Float(f))
}

func (r *Record) ReplayGainAlbumPeak() (float64, bool) {
	return r.floatVal(fields.ReplayGainAlbumPeak)
}
func (r *Record) SetReplayGainAlbumPeak(f float64) {
	r.fields.Set(fields.ReplayGainAlbumPeak, fields.Float(f))
}
