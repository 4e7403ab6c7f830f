// file: internal/handlers/dhowden.go
// version: 1.1.0
// guid: 6e0a4c8f-2b7d-4e1a-8c5f-9b3d7e0a4c8f

package handlers

import (
	"os"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
	"github.com/jdfalk/audiotag/internal/fields"
	"github.com/jdfalk/audiotag/internal/picture"
	"github.com/jdfalk/audiotag/internal/record"
)

// readDhowden parses path with dhowden/tag and returns the detected
// file type so callers can verify the codec family they claim. The
// file type is the container (FLAC, MP3, MP4), not the tag dialect;
// a FLAC file's tag dialect is VORBIS.
func readDhowden(path string, rec *record.Record) (tag.FileType, error) {
	f, err := os.Open(path)
	if err != nil {
		return tag.UnknownFileType, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return tag.UnknownFileType, err
	}
	populateFromTag(rec, m)
	return m.FileType(), nil
}

// populateFromTag writes metadata into the record's committed layer, so
// a freshly read record reports no pending changes.
func populateFromTag(rec *record.Record, m tag.Metadata) {
	setBaseText(rec, fields.Title, m.Title())
	setBaseText(rec, fields.AlbumTitle, m.Album())
	setBaseText(rec, fields.Artist, m.Artist())
	setBaseText(rec, fields.AlbumArtist, m.AlbumArtist())
	setBaseText(rec, fields.Composer, m.Composer())
	setBaseText(rec, fields.Genre, m.Genre())
	setBaseText(rec, fields.Lyrics, m.Lyrics())
	setBaseText(rec, fields.Comment, m.Comment())

	if year := m.Year(); year != 0 {
		rec.SetBase(fields.ReleaseDate, fields.Text(strconv.Itoa(year)))
	}
	if n, total := m.Track(); n != 0 || total != 0 {
		if n != 0 {
			rec.SetBase(fields.TrackNumber, fields.Int(int64(n)))
		}
		if total != 0 {
			rec.SetBase(fields.TrackTotal, fields.Int(int64(total)))
		}
	}
	if n, total := m.Disc(); n != 0 || total != 0 {
		if n != 0 {
			rec.SetBase(fields.DiscNumber, fields.Int(int64(n)))
		}
		if total != 0 {
			rec.SetBase(fields.DiscTotal, fields.Int(int64(total)))
		}
	}

	if p := m.Picture(); p != nil && len(p.Data) > 0 {
		rec.Pictures().AddSaved(picture.New(p.Data, pictureTypeFromLabel(p.Type), p.Description))
	}

	if extra := rawLeftovers(m.Raw()); len(extra) > 0 {
		rec.SetBase(fields.AdditionalMetadata, fields.Map(extra))
	}
}

func setBaseText(rec *record.Record, k fields.Key, v string) {
	if v != "" {
		rec.SetBase(k, fields.Text(v))
	}
}

// mappedRawKeys are the frame IDs, atom names, and comment names already
// surfaced through typed accessors; everything else lands in the
// free-form bucket.
var mappedRawKeys = map[string]bool{
	"tit2": true, "tpe1": true, "tpe2": true, "talb": true, "tcon": true,
	"tcom": true, "trck": true, "tpos": true, "tyer": true, "tdrc": true,
	"comm": true, "uslt": true, "apic": true, "pic": true,
	"©nam": true, "©art": true, "aart": true, "©alb": true, "©gen": true,
	"©day": true, "©wrt": true, "©cmt": true, "©lyr": true, "trkn": true,
	"disk": true, "covr": true, "cpil": true,
	"title": true, "artist": true, "album": true, "albumartist": true,
	"genre": true, "composer": true, "date": true, "tracknumber": true,
	"discnumber": true, "comment": true, "lyrics": true,
	"metadata_block_picture": true,
}

// rawLeftovers collects unmapped string-valued raw tags. Non-string
// frames (binary payloads, comment structs) are skipped; losing an
// unrecognized field beats failing the read.
func rawLeftovers(raw map[string]any) map[string]fields.Value {
	out := make(map[string]fields.Value)
	for k, v := range raw {
		if mappedRawKeys[strings.ToLower(k)] {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			out[k] = fields.Text(s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// pictureTypeFromLabel maps dhowden/tag's descriptive picture type
// labels to ID3v2 type codes.
func pictureTypeFromLabel(label string) picture.Type {
	switch strings.ToLower(label) {
	case "cover (front)", "front cover":
		return picture.TypeFrontCover
	case "cover (back)", "back cover":
		return picture.TypeBackCover
	case "artist", "lead artist/lead performer/soloist":
		return picture.TypeLeadArtist
	case "band/artist logotype":
		return picture.TypeBandLogo
	case "media (e.g. label side of cd)":
		return picture.TypeMedia
	case "illustration":
		return picture.TypeIllustration
	}
	return picture.TypeOther
}
