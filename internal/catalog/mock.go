package catalog

import (
	"cmp"
	"context"
	"slices"
	"strings"
)

// Mock is an in-memory test double for Gateway.
type Mock struct {
	albums    []Album
	err       error
	listCalls int
}

// NewMock creates an empty mock catalogue.
func NewMock(albums ...Album) *Mock {
	return &Mock{albums: albums}
}

func (m *Mock) Insert(_ context.Context, a Album) error {
	if m.err != nil {
		return m.err
	}
	if slices.Contains(m.albums, a) {
		return ErrDuplicate
	}
	m.albums = append(m.albums, a)
	return nil
}

func (m *Mock) Delete(_ context.Context, a Album) error {
	if m.err != nil {
		return m.err
	}
	n := len(m.albums)
	m.albums = slices.DeleteFunc(m.albums, func(x Album) bool { return x == a })
	if len(m.albums) == n {
		return ErrNotFound
	}
	return nil
}

func (m *Mock) Find(_ context.Context, a Album) error {
	if m.err != nil {
		return m.err
	}
	if !slices.Contains(m.albums, a) {
		return ErrNotFound
	}
	return nil
}

func (m *Mock) List(_ context.Context, key SortKey) ([]Album, error) {
	if _, ok := orderClauses[key]; !ok {
		return nil, ErrInvalidSort
	}
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}

	out := slices.Clone(m.albums)
	slices.SortStableFunc(out, func(a, b Album) int {
		return compareAlbums(key, a, b)
	})
	return out, nil
}

// compareAlbums mirrors the ORDER BY clauses of Gateway.List.
func compareAlbums(key SortKey, a, b Album) int {
	nocase := func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	}
	switch key {
	case SortAlbum:
		return cmp.Or(
			nocase(a.Title, b.Title),
			nocase(a.Artist, b.Artist),
			strings.Compare(string(a.Media), string(b.Media)),
		)
	case SortMediaType:
		return cmp.Or(
			nocase(string(a.Media), string(b.Media)),
			nocase(a.Artist, b.Artist),
			nocase(a.Title, b.Title),
		)
	default:
		return cmp.Or(
			nocase(a.Artist, b.Artist),
			nocase(a.Title, b.Title),
			strings.Compare(string(a.Media), string(b.Media)),
		)
	}
}

// Test helpers

// SetError makes every subsequent operation fail with err.
func (m *Mock) SetError(err error) { m.err = err }

func (m *Mock) Albums() []Album { return slices.Clone(m.albums) }

func (m *Mock) ListCalls() int { return m.listCalls }

// Verify Mock implements Catalog at compile time.
var _ Catalog = (*Mock)(nil)
