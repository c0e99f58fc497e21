package catalog

import (
	"fmt"

	"github.com/llehouerou/albumlist/internal/mediatype"
)

// Album is one catalogue record. The full triple is unique.
type Album struct {
	Artist string
	Title  string
	Media  mediatype.Type
}

// String formats the album as "Artist - Title (media)".
func (a Album) String() string {
	return fmt.Sprintf("%s - %s (%s)", a.Artist, a.Title, a.Media)
}

// SortKey is a column the catalogue can be listed by.
type SortKey string

const (
	SortArtist    SortKey = "artist"
	SortAlbum     SortKey = "album"
	SortMediaType SortKey = "mediatype"
)

// orderClauses keeps the full ORDER BY per key; the trailing columns make
// the order stable when the leading column ties.
var orderClauses = map[SortKey]string{
	SortArtist:    "artist COLLATE NOCASE, album COLLATE NOCASE, mediatype",
	SortAlbum:     "album COLLATE NOCASE, artist COLLATE NOCASE, mediatype",
	SortMediaType: "mediatype COLLATE NOCASE, artist COLLATE NOCASE, album COLLATE NOCASE",
}

// ParseSortKey validates s as a sort key.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if _, ok := orderClauses[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
	return k, nil
}
