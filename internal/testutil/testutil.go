// file: internal/testutil/testutil.go
// version: 2.1.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

// Package testutil provides builders for tests: populated records,
// synthetic tagged audio files, and picture payloads.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jdfalk/audiotag/internal/picture"
	"github.com/jdfalk/audiotag/internal/record"
	"github.com/stretchr/testify/require"
)

// PopulatedRecord builds a record with representative fields in the
// committed layer, as if it had just been parsed from a file.
func PopulatedRecord(t *testing.T) *record.Record {
	t.Helper()

	rec := record.New()
	rec.SetTitle("Open Road")
	rec.SetAlbumTitle("Mile Markers")
	rec.SetArtist("The Fieldhands")
	rec.SetAlbumArtist("The Fieldhands")
	rec.SetGenre("Folk")
	rec.SetComposer("J. Calloway")
	rec.SetReleaseDate("2019-04-12")
	rec.SetTrackNumber(3)
	rec.SetTrackTotal(11)
	rec.SetDiscNumber(1)
	rec.SetDiscTotal(1)
	rec.SetCompilation(false)
	rec.SetBPM(92)
	rec.SetComment("remaster")
	rec.SetTitleSortOrder("Open Road")
	rec.SetArtistSortOrder("Fieldhands, The")
	rec.SetGrouping("Americana")
	rec.SetReplayGainTrackGain(-6.2)
	rec.SetReplayGainTrackPeak(0.97)
	rec.MergeChanges()
	return rec
}

// FrontCover builds a saved front-cover picture with payload data.
func FrontCover(t *testing.T, desc string) *picture.Picture {
	t.Helper()
	return picture.New([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}, picture.TypeFrontCover, desc)
}

// WriteID3v2File writes a minimal MP3 with an ID3v2.3 tag carrying
// title and artist frames, returning its path.
func WriteID3v2File(t *testing.T, dir, name, title, artist string) string {
	t.Helper()

	var body bytes.Buffer
	writeTextFrame(&body, "TIT2", title)
	writeTextFrame(&body, "TPE1", artist)

	var f bytes.Buffer
	f.WriteString("ID3")
	f.Write([]byte{3, 0, 0}) // v2.3, no flags
	f.Write(syncsafe(body.Len()))
	f.Write(body.Bytes())
	// A sliver of padding where audio frames would start.
	f.Write(make([]byte, 32))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, f.Bytes(), 0644))
	return path
}

// WriteID3v2FileWithCover is WriteID3v2File plus an attached picture
// frame carrying cover as a front-cover JPEG.
func WriteID3v2FileWithCover(t *testing.T, dir, name, title, artist string, cover []byte) string {
	t.Helper()

	var body bytes.Buffer
	writeTextFrame(&body, "TIT2", title)
	writeTextFrame(&body, "TPE1", artist)
	writePictureFrame(&body, cover)

	var f bytes.Buffer
	f.WriteString("ID3")
	f.Write([]byte{3, 0, 0})
	f.Write(syncsafe(body.Len()))
	f.Write(body.Bytes())
	f.Write(make([]byte, 32))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, f.Bytes(), 0644))
	return path
}

// WriteFLACFile writes a minimal FLAC stream with a Vorbis comment
// block carrying title and artist, returning its path.
func WriteFLACFile(t *testing.T, dir, name, title, artist string) string {
	t.Helper()

	var comments bytes.Buffer
	vendor := "reference libFLAC"
	writeLE32(&comments, len(vendor))
	comments.WriteString(vendor)
	entries := []string{"TITLE=" + title, "ARTIST=" + artist}
	writeLE32(&comments, len(entries))
	for _, e := range entries {
		writeLE32(&comments, len(e))
		comments.WriteString(e)
	}

	var f bytes.Buffer
	f.WriteString("fLaC")
	// STREAMINFO block, contents irrelevant to tag parsing.
	f.Write([]byte{0x00, 0x00, 0x00, 0x22})
	f.Write(make([]byte, 34))
	// VORBIS_COMMENT block marked as the last metadata block.
	n := comments.Len()
	f.Write([]byte{0x84, byte(n >> 16), byte(n >> 8), byte(n)})
	f.Write(comments.Bytes())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, f.Bytes(), 0644))
	return path
}

// WriteJunkFile writes a file whose contents no tag parser recognizes.
func WriteJunkFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("not an audio stream"), 0644))
	return path
}

func writeTextFrame(w *bytes.Buffer, id, text string) {
	payload := append([]byte{0}, []byte(text)...) // ISO-8859-1 encoding marker
	w.WriteString(id)
	size := len(payload)
	w.Write([]byte{byte(size >> 24), byte(size >> 16), byte(size >> 8), byte(size)})
	w.Write([]byte{0, 0}) // frame flags
	w.Write(payload)
}

func writePictureFrame(w *bytes.Buffer, data []byte) {
	var payload bytes.Buffer
	payload.WriteByte(0) // ISO-8859-1 text encoding
	payload.WriteString("image/jpeg")
	payload.WriteByte(0)
	payload.WriteByte(3) // front cover
	payload.WriteByte(0) // empty description
	payload.Write(data)

	w.WriteString("APIC")
	size := payload.Len()
	w.Write([]byte{byte(size >> 24), byte(size >> 16), byte(size >> 8), byte(size)})
	w.Write([]byte{0, 0})
	w.Write(payload.Bytes())
}

func writeLE32(w *bytes.Buffer, n int) {
	w.Write([]byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)})
}

func syncsafe(n int) []byte {
	return []byte{
		byte(n >> 21 & 0x7f),
		byte(n >> 14 & 0x7f),
		byte(n >> 7 & 0x7f),
		byte(n & 0x7f),
	}
}
