package app

import (
	"errors"
	"strings"

	"github.com/llehouerou/albumlist/internal/catalog"
	"github.com/llehouerou/albumlist/internal/mediatype"
)

// Action is the single primary operation of an invocation.
type Action int

const (
	Insert Action = iota
	Remove
	Search
)

func (a Action) String() string {
	switch a {
	case Remove:
		return "remove"
	case Search:
		return "search"
	default:
		return "insert"
	}
}

var (
	ErrConflictingActions = errors.New("--remove and --search cannot be used together")
	ErrEmptyArtist        = errors.New("artist must not be empty")
	ErrEmptyTitle         = errors.New("album must not be empty")
)

// ActionFromFlags maps the remove/search flags to an Action.
// Neither flag means Insert.
func ActionFromFlags(remove, search bool) (Action, error) {
	switch {
	case remove && search:
		return Insert, ErrConflictingActions
	case remove:
		return Remove, nil
	case search:
		return Search, nil
	default:
		return Insert, nil
	}
}

// Request is a validated invocation.
type Request struct {
	Album   catalog.Album
	Action  Action
	Verbose bool
	Sort    string // listing order, validated when the listing runs
}

// NewAlbum validates the positional values and resolves the media type.
// Unknown media types return *mediatype.UnknownError.
func NewAlbum(artist, title, media string) (catalog.Album, error) {
	if strings.TrimSpace(artist) == "" {
		return catalog.Album{}, ErrEmptyArtist
	}
	if strings.TrimSpace(title) == "" {
		return catalog.Album{}, ErrEmptyTitle
	}
	t, err := mediatype.Parse(media)
	if err != nil {
		return catalog.Album{}, err
	}
	return catalog.Album{Artist: artist, Title: title, Media: t}, nil
}
