// file: internal/handlers/taglibio.go
// version: 1.2.0
// guid: 3f7b1d5e-9a4c-4d8f-b2e6-0c5a8f3b7d1e

package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jdfalk/audiotag/internal/fields"
	"github.com/jdfalk/audiotag/internal/record"
	taglib "go.senan.xyz/taglib"
)

// Property keys without an exported TagLib constant.
const (
	tagCompilation  = "COMPILATION"
	tagTrackTotal   = "TRACKTOTAL"
	tagDiscTotal    = "DISCTOTAL"
	tagRating       = "RATING"
	tagMCN          = "MCN"
	tagGrouping     = "GROUPING"
	tagTitleSort    = "TITLESORT"
	tagComposerSort = "COMPOSERSORT"
	tagGenreSort    = "GENRESORT"
	tagMBReleaseID  = "MUSICBRAINZ_ALBUMID"

	tagRGReference = "REPLAYGAIN_REFERENCE_LOUDNESS"
	tagRGTrackGain = "REPLAYGAIN_TRACK_GAIN"
	tagRGTrackPeak = "REPLAYGAIN_TRACK_PEAK"
	tagRGAlbumGain = "REPLAYGAIN_ALBUM_GAIN"
	tagRGAlbumPeak = "REPLAYGAIN_ALBUM_PEAK"
)

// readTaglib parses path through TagLib's normalized property map. This
// is the read path for formats dhowden/tag does not cover (Ogg, WAV)
// and the fallback for files it chokes on.
func readTaglib(path string, rec *record.Record) error {
	tags, err := taglib.ReadTags(path)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		return fmt.Errorf("no readable tags in %s", path)
	}

	extra := make(map[string]fields.Value)
	for key, values := range tags {
		if len(values) == 0 {
			continue
		}
		if !applyTaglibField(rec, strings.ToUpper(key), values[0]) {
			extra[key] = fields.Text(strings.Join(values, "; "))
		}
	}
	if len(extra) > 0 {
		rec.SetBase(fields.AdditionalMetadata, fields.Map(extra))
	}
	return nil
}

// applyTaglibField maps one property onto the record's committed layer.
// It reports false for keys with no fixed field, and true (field
// consumed) for recognized keys even when the value fails to convert;
// a malformed number is skipped, not preserved and not fatal.
func applyTaglibField(rec *record.Record, key, value string) bool {
	textKeys := map[string]fields.Key{
		taglib.Title:           fields.Title,
		taglib.Album:           fields.AlbumTitle,
		taglib.Artist:          fields.Artist,
		taglib.AlbumArtist:     fields.AlbumArtist,
		taglib.Genre:           fields.Genre,
		taglib.Composer:        fields.Composer,
		taglib.Date:            fields.ReleaseDate,
		taglib.Lyrics:          fields.Lyrics,
		taglib.Comment:         fields.Comment,
		taglib.ISRC:            fields.ISRC,
		taglib.ArtistSort:      fields.ArtistSortOrder,
		taglib.AlbumArtistSort: fields.AlbumArtistSortOrder,
		taglib.AlbumSort:       fields.AlbumTitleSortOrder,
		tagTitleSort:           fields.TitleSortOrder,
		tagComposerSort:        fields.ComposerSortOrder,
		tagGenreSort:           fields.GenreSortOrder,
		tagGrouping:            fields.Grouping,
		tagMCN:                 fields.MCN,
		tagMBReleaseID:         fields.MusicBrainzReleaseID,
		taglib.MusicBrainzTrackID: fields.MusicBrainzRecordingID,
	}
	if k, ok := textKeys[key]; ok {
		if value != "" {
			rec.SetBase(k, fields.Text(value))
		}
		return true
	}

	switch key {
	case taglib.TrackNumber:
		applyNumberPair(rec, value, fields.TrackNumber, fields.TrackTotal)
	case tagTrackTotal:
		applyInt(rec, fields.TrackTotal, value)
	case taglib.DiscNumber:
		applyNumberPair(rec, value, fields.DiscNumber, fields.DiscTotal)
	case tagDiscTotal:
		applyInt(rec, fields.DiscTotal, value)
	case taglib.BPM:
		applyInt(rec, fields.BPM, value)
	case tagRating:
		applyInt(rec, fields.Rating, value)
	case tagCompilation:
		rec.SetBase(fields.Compilation, fields.Bool(value == "1" || strings.EqualFold(value, "true")))
	case tagRGReference:
		applyGain(rec, fields.ReplayGainReferenceLoudness, value)
	case tagRGTrackGain:
		applyGain(rec, fields.ReplayGainTrackGain, value)
	case tagRGTrackPeak:
		applyGain(rec, fields.ReplayGainTrackPeak, value)
	case tagRGAlbumGain:
		applyGain(rec, fields.ReplayGainAlbumGain, value)
	case tagRGAlbumPeak:
		applyGain(rec, fields.ReplayGainAlbumPeak, value)
	default:
		return false
	}
	return true
}

// applyNumberPair handles "n" and "n/total" forms.
func applyNumberPair(rec *record.Record, value string, numKey, totalKey fields.Key) {
	numPart, totalPart, hasTotal := strings.Cut(value, "/")
	applyInt(rec, numKey, numPart)
	if hasTotal {
		applyInt(rec, totalKey, totalPart)
	}
}

func applyInt(rec *record.Record, k fields.Key, value string) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return
	}
	rec.SetBase(k, fields.Int(n))
}

// applyGain parses replay-gain values, tolerating "dB"/"LUFS" suffixes.
func applyGain(rec *record.Record, k fields.Key, value string) {
	v := strings.TrimSpace(value)
	v = strings.TrimSuffix(v, "dB")
	v = strings.TrimSuffix(v, "LUFS")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return
	}
	rec.SetBase(k, fields.Float(f))
}

// writeTagMap persists the record's effective scalar fields through
// TagLib. Clear replaces the file's existing properties wholesale, so
// pending deletions take effect.
func writeTagMap(path string, rec *record.Record) error {
	return taglib.WriteTags(path, buildTagMap(rec), taglib.Clear)
}

// buildTagMap flattens the record's effective scalar fields into
// TagLib's property map.
func buildTagMap(rec *record.Record) map[string][]string {
	tags := make(map[string][]string)

	put := func(key, value string) {
		if value != "" {
			tags[key] = []string{value}
		}
	}
	putText := func(key string, get func() (string, bool)) {
		if v, ok := get(); ok {
			put(key, v)
		}
	}
	putInt := func(key string, get func() (int64, bool)) {
		if v, ok := get(); ok {
			put(key, strconv.FormatInt(v, 10))
		}
	}

	putText(taglib.Title, rec.Title)
	putText(taglib.Album, rec.AlbumTitle)
	putText(taglib.Artist, rec.Artist)
	putText(taglib.AlbumArtist, rec.AlbumArtist)
	putText(taglib.Genre, rec.Genre)
	putText(taglib.Composer, rec.Composer)
	putText(taglib.Date, rec.ReleaseDate)
	putText(taglib.Lyrics, rec.Lyrics)
	putText(taglib.Comment, rec.Comment)
	putText(taglib.ISRC, rec.ISRC)
	putText(taglib.ArtistSort, rec.ArtistSortOrder)
	putText(taglib.AlbumArtistSort, rec.AlbumArtistSortOrder)
	putText(taglib.AlbumSort, rec.AlbumTitleSortOrder)
	putText(tagTitleSort, rec.TitleSortOrder)
	putText(tagComposerSort, rec.ComposerSortOrder)
	putText(tagGenreSort, rec.GenreSortOrder)
	putText(tagGrouping, rec.Grouping)
	putText(tagMCN, rec.MCN)
	putText(tagMBReleaseID, rec.MusicBrainzReleaseID)
	putText(taglib.MusicBrainzTrackID, rec.MusicBrainzRecordingID)

	putInt(taglib.TrackNumber, rec.TrackNumber)
	putInt(tagTrackTotal, rec.TrackTotal)
	putInt(taglib.DiscNumber, rec.DiscNumber)
	putInt(tagDiscTotal, rec.DiscTotal)
	putInt(taglib.BPM, rec.BPM)
	putInt(tagRating, rec.Rating)

	if v, ok := rec.Compilation(); ok {
		if v {
			put(tagCompilation, "1")
		} else {
			put(tagCompilation, "0")
		}
	}

	putGain := func(key string, get func() (float64, bool), unit string) {
		if v, ok := get(); ok {
			if unit != "" {
				put(key, fmt.Sprintf("%.2f %s", v, unit))
			} else {
				put(key, strconv.FormatFloat(v, 'f', 6, 64))
			}
		}
	}
	putGain(tagRGReference, rec.ReplayGainReferenceLoudness, "dB")
	putGain(tagRGTrackGain, rec.ReplayGainTrackGain, "dB")
	putGain(tagRGAlbumGain, rec.ReplayGainAlbumGain, "dB")
	putGain(tagRGTrackPeak, rec.ReplayGainTrackPeak, "")
	putGain(tagRGAlbumPeak, rec.ReplayGainAlbumPeak, "")

	if extra, ok := rec.AdditionalMetadata(); ok {
		for k, v := range extra {
			if s, ok := v.AsText(); ok && s != "" {
				tags[strings.ToUpper(k)] = []string{s}
			}
		}
	}

	return tags
}
