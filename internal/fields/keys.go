// file: internal/fields/keys.go
// version: 1.1.0
// guid: 4e8f2a1b-9c3d-4f6e-8a1b-2c5d7e9f0a3b

package fields

// Key identifies one metadata field. Keys are a fixed enumeration; the
// string value doubles as the canonical name used in the external
// (dictionary) representation.
type Key string

const (
	// Basic fields
	Title       Key = "Title"
	AlbumTitle  Key = "Album Title"
	Artist      Key = "Artist"
	AlbumArtist Key = "Album Artist"
	Genre       Key = "Genre"
	Composer    Key = "Composer"
	ReleaseDate Key = "Release Date"
	Compilation Key = "Compilation"
	TrackNumber Key = "Track Number"
	TrackTotal  Key = "Track Total"
	DiscNumber  Key = "Disc Number"
	DiscTotal   Key = "Disc Total"
	Lyrics      Key = "Lyrics"
	BPM         Key = "BPM"
	Rating      Key = "Rating"
	Comment     Key = "Comment"
	ISRC        Key = "ISRC"
	MCN         Key = "MCN"

	MusicBrainzReleaseID   Key = "MusicBrainz Release ID"
	MusicBrainzRecordingID Key = "MusicBrainz Recording ID"

	// Sort-order fields
	TitleSortOrder       Key = "Title Sort Order"
	AlbumTitleSortOrder  Key = "Album Title Sort Order"
	ArtistSortOrder      Key = "Artist Sort Order"
	AlbumArtistSortOrder Key = "Album Artist Sort Order"
	ComposerSortOrder    Key = "Composer Sort Order"
	GenreSortOrder       Key = "Genre Sort Order"

	// Grouping
	Grouping Key = "Grouping"

	// Free-form bucket for fields with no fixed key
	AdditionalMetadata Key = "Additional Metadata"

	// Replay gain
	ReplayGainReferenceLoudness Key = "Replay Gain Reference Loudness"
	ReplayGainTrackGain         Key = "Replay Gain Track Gain"
	ReplayGainTrackPeak         Key = "Replay Gain Track Peak"
	ReplayGainAlbumGain         Key = "Replay Gain Album Gain"
	ReplayGainAlbumPeak         Key = "Replay Gain Album Peak"
)

// AttachedPictures is reserved for the picture list in the external
// representation. It is not a scalar field key and never appears in a
// value store.
const AttachedPictures = "Attached Pictures"

// Category is a bit mask selecting groups of fields for copy and remove
// operations.
type Category uint8

const (
	Basic Category = 1 << iota
	SortOrder
	GroupingFields
	Additional
	ReplayGain

	All = Basic | SortOrder | GroupingFields | Additional | ReplayGain
)

// keyOrder lists every scalar key in canonical order. The external
// representation and category iteration both follow this order.
var keyOrder = []Key{
	Title, AlbumTitle, Artist, AlbumArtist, Genre, Composer, ReleaseDate,
	Compilation, TrackNumber, TrackTotal, DiscNumber, DiscTotal, Lyrics,
	BPM, Rating, Comment, ISRC, MCN,
	MusicBrainzReleaseID, MusicBrainzRecordingID,
	TitleSortOrder, AlbumTitleSortOrder, ArtistSortOrder,
	AlbumArtistSortOrder, ComposerSortOrder, GenreSortOrder,
	Grouping,
	AdditionalMetadata,
	ReplayGainReferenceLoudness, ReplayGainTrackGain, ReplayGainTrackPeak,
	ReplayGainAlbumGain, ReplayGainAlbumPeak,
}

var keyCategories = map[Key]Category{
	Title: Basic, AlbumTitle: Basic, Artist: Basic, AlbumArtist: Basic,
	Genre: Basic, Composer: Basic, ReleaseDate: Basic, Compilation: Basic,
	TrackNumber: Basic, TrackTotal: Basic, DiscNumber: Basic,
	DiscTotal: Basic, Lyrics: Basic, BPM: Basic, Rating: Basic,
	Comment: Basic, ISRC: Basic, MCN: Basic,
	MusicBrainzReleaseID: Basic, MusicBrainzRecordingID: Basic,

	TitleSortOrder: SortOrder, AlbumTitleSortOrder: SortOrder,
	ArtistSortOrder: SortOrder, AlbumArtistSortOrder: SortOrder,
	ComposerSortOrder: SortOrder, GenreSortOrder: SortOrder,

	Grouping: GroupingFields,

	AdditionalMetadata: Additional,

	ReplayGainReferenceLoudness: ReplayGain, ReplayGainTrackGain: ReplayGain,
	ReplayGainTrackPeak: ReplayGain, ReplayGainAlbumGain: ReplayGain,
	ReplayGainAlbumPeak: ReplayGain,
}

// CategoryOf returns the category a key belongs to. Unknown keys report
// zero (no category).
func CategoryOf(k Key) Category {
	return keyCategories[k]
}

// Keys returns every scalar key whose category is selected by mask, in
// canonical order.
func Keys(mask Category) []Key {
	var out []Key
	for _, k := range keyOrder {
		if keyCategories[k]&mask != 0 {
			out = append(out, k)
		}
	}
	return out
}

// AllKeys returns the full scalar key set in canonical order.
func AllKeys() []Key {
	return Keys(All)
}
