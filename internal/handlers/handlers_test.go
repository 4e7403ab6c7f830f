// file: internal/handlers/handlers_test.go
// version: 1.1.0
// guid: 3a5b7c9d-1e3f-5a7b-9c0d-1e2f3a4b5c6d

package handlers_test

import (
	"testing"

	"github.com/jdfalk/audiotag/internal/formats"
	"github.com/jdfalk/audiotag/internal/handlers"
	"github.com/jdfalk/audiotag/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryProbeOrder(t *testing.T) {
	descs := handlers.DefaultRegistry().Descriptors()
	require.Len(t, descs, 5)

	want := []string{"FLAC", "MP4", "MP3", "Ogg", "WAV"}
	for i, d := range descs {
		assert.Equal(t, want[i], d.Name)
	}
	for i := 1; i < len(descs); i++ {
		assert.GreaterOrEqual(t, descs[i-1].Priority, descs[i].Priority)
	}
}

func TestOgaClaimedByFLACAndOgg(t *testing.T) {
	candidates := handlers.DefaultRegistry().Candidates("oga")
	require.Len(t, candidates, 2)
	assert.Equal(t, "FLAC", candidates[0].Name, "FLAC probes .oga first")
	assert.Equal(t, "Ogg", candidates[1].Name)
}

func TestExtensionClaims(t *testing.T) {
	reg := handlers.DefaultRegistry()
	cases := map[string]string{
		"flac": "FLAC",
		"m4b":  "MP4",
		"mp3":  "MP3",
		"opus": "Ogg",
		"wav":  "WAV",
	}
	for ext, name := range cases {
		candidates := reg.Candidates(ext)
		require.NotEmpty(t, candidates, "no candidate for %s", ext)
		assert.Equal(t, name, candidates[0].Name)
	}
	assert.Empty(t, reg.Candidates("txt"))
}

func TestMIMEClaims(t *testing.T) {
	reg := handlers.DefaultRegistry()
	candidates := reg.CandidatesMIME("audio/flac")
	require.Len(t, candidates, 1)
	assert.Equal(t, "FLAC", candidates[0].Name)
}

func TestResolveReadsID3Tags(t *testing.T) {
	path := testutil.WriteID3v2File(t, t.TempDir(), "song.mp3", "Night Train", "The Fieldhands")

	h, err := handlers.NewResolver().Resolve(path)
	require.NoError(t, err)

	rec := h.Record()
	title, ok := rec.Title()
	require.True(t, ok)
	assert.Equal(t, "Night Train", title)
	artist, _ := rec.Artist()
	assert.Equal(t, "The Fieldhands", artist)
	assert.False(t, rec.HasUnsavedChanges(), "freshly read record is settled")
}

func TestResolveReadsFLACVorbisComments(t *testing.T) {
	// dhowden/tag reports the tag dialect of a FLAC file as VORBIS; the
	// codec-family check must key on the container type, not the dialect.
	path := testutil.WriteFLACFile(t, t.TempDir(), "song.flac", "Harvest Moon", "The Fieldhands")

	h, err := handlers.NewResolver().Resolve(path)
	require.NoError(t, err)

	rec := h.Record()
	title, ok := rec.Title()
	require.True(t, ok)
	assert.Equal(t, "Harvest Moon", title)
	artist, _ := rec.Artist()
	assert.Equal(t, "The Fieldhands", artist)
}

func TestResolvedHandlerCarriesParsedPictures(t *testing.T) {
	// Resolve probes by parsing, so the handler it returns is already
	// populated, embedded pictures included.
	cover := []byte{0xff, 0xd8, 0xff, 0xe0, 1, 2, 3, 4}
	path := testutil.WriteID3v2FileWithCover(t, t.TempDir(), "song.mp3", "Night Train", "The Fieldhands", cover)

	h, err := handlers.NewResolver().Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Record().Pictures().Count())
}

func TestResolveUnparsableFile(t *testing.T) {
	path := testutil.WriteJunkFile(t, t.TempDir(), "song.mp3")

	_, err := handlers.NewResolver().Resolve(path)
	require.Error(t, err)
	k, ok := formats.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, formats.KindNotRecognized, k)
}

func TestResolveID3FileNotClaimedByFLAC(t *testing.T) {
	// An MP3 byte stream under a .flac name: the FLAC probe must reject
	// it rather than return a bogus record.
	path := testutil.WriteID3v2File(t, t.TempDir(), "song.flac", "Title", "Artist")

	_, err := handlers.NewResolver().Resolve(path)
	require.Error(t, err)
	k, _ := formats.KindOf(err)
	assert.Equal(t, formats.KindNotRecognized, k)
}
