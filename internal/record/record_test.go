// file: internal/record/record_test.go
// version: 1.1.0
// guid: 9c1d3e5f-7a9b-1c3d-5e6f-7a8b9c0d1e2f

package record

import (
	"testing"

	"github.com/jdfalk/audiotag/internal/fields"
	"github.com/jdfalk/audiotag/internal/picture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saved builds a record whose values sit in the committed layer.
func saved(populate func(*Record)) *Record {
	r := New()
	populate(r)
	r.MergeChanges()
	return r
}

func TestTypedAccessors(t *testing.T) {
	r := New()

	r.SetTitle("Song")
	r.SetTrackNumber(4)
	r.SetCompilation(true)
	r.SetReplayGainTrackGain(-7.5)

	title, ok := r.Title()
	require.True(t, ok)
	assert.Equal(t, "Song", title)

	n, ok := r.TrackNumber()
	require.True(t, ok)
	assert.Equal(t, int64(4), n)

	comp, ok := r.Compilation()
	require.True(t, ok)
	assert.True(t, comp)

	gain, ok := r.ReplayGainTrackGain()
	require.True(t, ok)
	assert.InDelta(t, -7.5, gain, 1e-9)
}

func TestAccessorWrongVariantReportsAbsent(t *testing.T) {
	r := New()
	// Force a text value under an integer-typed key.
	r.Set(fields.TrackNumber, fields.Text("four"))

	_, ok := r.TrackNumber()
	assert.False(t, ok, "typed accessor must not coerce a mismatched variant")

	// The raw value is still there.
	v, ok := r.Get(fields.TrackNumber)
	require.True(t, ok)
	s, _ := v.AsText()
	assert.Equal(t, "four", s)
}

func TestHasUnsavedChangesIncludesPictures(t *testing.T) {
	r := saved(func(r *Record) { r.SetTitle("Song") })
	assert.False(t, r.HasUnsavedChanges())

	r.Pictures().Attach(picture.New([]byte{1}, picture.TypeFrontCover, ""))
	assert.True(t, r.HasUnsavedChanges(), "pending picture addition is an unsaved change")
}

func TestRevertUnsavedChanges(t *testing.T) {
	r := saved(func(r *Record) {
		r.SetTitle("Original")
		r.SetArtist("Band")
	})
	front := picture.New([]byte{1}, picture.TypeFrontCover, "")
	r.Pictures().AddSaved(front)

	r.SetTitle("Edited")
	r.Clear(fields.Artist)
	r.Pictures().Remove(front)
	r.Pictures().Attach(picture.New([]byte{2}, picture.TypeBackCover, ""))

	r.RevertUnsavedChanges()

	title, _ := r.Title()
	assert.Equal(t, "Original", title)
	_, ok := r.Artist()
	assert.True(t, ok, "cleared field restored")
	assert.Equal(t, 1, r.Pictures().Count(), "removal undone, addition dropped")
	assert.False(t, r.HasUnsavedChanges())
}

func TestMergeChanges(t *testing.T) {
	r := saved(func(r *Record) {
		r.SetTitle("Original")
		r.SetArtist("Band")
	})

	r.SetTitle("Edited")
	r.Clear(fields.Artist)
	r.Pictures().Attach(picture.New([]byte{1}, picture.TypeFrontCover, ""))

	r.MergeChanges()

	title, _ := r.Title()
	assert.Equal(t, "Edited", title)
	_, ok := r.Artist()
	assert.False(t, ok, "merged clear deletes the field")
	assert.Equal(t, 1, r.Pictures().Count())
	assert.False(t, r.HasUnsavedChanges())
}

func TestCopyFieldsCategoryScoped(t *testing.T) {
	src := saved(func(r *Record) {
		r.SetTitle("Source Title")
		r.SetTitleSortOrder("Source Title, The")
		r.SetGrouping("Source Group")
	})
	dst := saved(func(r *Record) {
		r.SetTitle("Dest Title")
		r.SetArtist("Dest Artist")
		r.SetTitleSortOrder("Dest Sort")
	})

	dst.CopyFields(fields.Basic, src)

	title, _ := dst.Title()
	assert.Equal(t, "Source Title", title)
	_, ok := dst.Artist()
	assert.False(t, ok, "basic field absent on src is cleared on dst")

	sort, _ := dst.TitleSortOrder()
	assert.Equal(t, "Dest Sort", sort, "sort order outside the mask untouched")
	_, ok = dst.Grouping()
	assert.False(t, ok, "grouping outside the mask not copied")
}

func TestCopyFieldsIsPending(t *testing.T) {
	src := saved(func(r *Record) { r.SetTitle("A") })
	dst := saved(func(r *Record) { r.SetTitle("B") })

	dst.CopyFields(fields.All, src)
	assert.True(t, dst.HasUnsavedChanges())

	dst.RevertUnsavedChanges()
	title, _ := dst.Title()
	assert.Equal(t, "B", title, "copy is revertible before merge")
}

func TestCopyFieldsDetachesMapValues(t *testing.T) {
	extra := map[string]fields.Value{
		"ENCODER": fields.Text("lavf"),
	}
	src := saved(func(r *Record) { r.SetAdditionalMetadata(extra) })
	dst := New()

	dst.CopyFields(fields.Additional, src)

	extra["ENCODER"] = fields.Text("mutated")
	extra["NEW_KEY"] = fields.Text("added after copy")

	got, ok := dst.AdditionalMetadata()
	require.True(t, ok)
	enc, _ := got["ENCODER"].AsText()
	assert.Equal(t, "lavf", enc, "copied map must not share backing storage")
	_, leaked := got["NEW_KEY"]
	assert.False(t, leaked)
}

func TestRemoveFields(t *testing.T) {
	r := saved(func(r *Record) {
		r.SetTitle("Song")
		r.SetReplayGainTrackGain(-3)
		r.SetReplayGainAlbumPeak(0.9)
	})

	r.RemoveFields(fields.ReplayGain)
	r.MergeChanges()

	_, ok := r.ReplayGainTrackGain()
	assert.False(t, ok)
	_, ok = r.ReplayGainAlbumPeak()
	assert.False(t, ok)
	title, _ := r.Title()
	assert.Equal(t, "Song", title)
}

func TestCopyPicturesFrom(t *testing.T) {
	src := New()
	front := picture.New([]byte{1, 2}, picture.TypeFrontCover, "front")
	src.Pictures().AddSaved(front)
	removed := picture.New([]byte{3}, picture.TypeBackCover, "")
	src.Pictures().AddSaved(removed)
	src.Pictures().Remove(removed)

	dst := New()
	old := picture.New([]byte{9}, picture.TypeMedia, "")
	dst.Pictures().AddSaved(old)

	dst.CopyPicturesFrom(src)
	dst.MergeChanges()

	assert.Equal(t, 1, dst.Pictures().Count(), "only visible src pictures are copied")
	for p := range dst.Pictures().Visible() {
		assert.Equal(t, picture.TypeFrontCover, p.Type())
		assert.NotEqual(t, front.Handle(), p.Handle(), "copies are clones with fresh identity")
	}
}

func TestExternalRoundTrip(t *testing.T) {
	r := saved(func(r *Record) {
		r.SetTitle("Song")
		r.SetTrackNumber(2)
		r.SetCompilation(false)
		r.SetReplayGainTrackPeak(0.88)
		r.SetAdditionalMetadata(map[string]fields.Value{
			"ENCODER": fields.Text("lavf"),
		})
	})
	r.Pictures().AddSaved(picture.New([]byte{1, 2, 3}, picture.TypeFrontCover, "cover"))

	got := FromExternal(r.External())

	assert.False(t, got.HasUnsavedChanges(), "rebuilt record starts settled")
	title, _ := got.Title()
	assert.Equal(t, "Song", title)
	n, _ := got.TrackNumber()
	assert.Equal(t, int64(2), n)
	comp, ok := got.Compilation()
	require.True(t, ok)
	assert.False(t, comp)
	extra, ok := got.AdditionalMetadata()
	require.True(t, ok)
	enc, _ := extra["ENCODER"].AsText()
	assert.Equal(t, "lavf", enc)
	assert.Equal(t, 1, got.Pictures().Count())
}

func TestExternalOmitsAbsentAndPictureless(t *testing.T) {
	r := saved(func(r *Record) { r.SetTitle("Only") })
	ext := r.External()
	assert.Len(t, ext, 1)
	_, hasPics := ext[fields.AttachedPictures]
	assert.False(t, hasPics, "no pictures key when nothing is attached")
}
