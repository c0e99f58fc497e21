// Package catalog stores album records in a SQLite table.
//
// Every Gateway operation opens its own connection and closes it before
// returning, whatever the outcome.
package catalog

import (
	"context"
	"database/sql"

	dbutil "github.com/llehouerou/albumlist/internal/db"
	"github.com/llehouerou/albumlist/internal/mediatype"
)

// Gateway is the SQLite-backed Catalog.
type Gateway struct {
	path string
}

// NewGateway returns a gateway for the database file at path.
func NewGateway(path string) *Gateway {
	return &Gateway{path: path}
}

// Path returns the database location.
func (g *Gateway) Path() string {
	return g.path
}

func (g *Gateway) open() (*sql.DB, error) {
	db, err := dbutil.Open(g.path)
	if err != nil {
		return nil, storeErr(OpOpen, err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, storeErr(OpOpen, err)
	}
	return db, nil
}

// Insert adds a. It returns ErrDuplicate if the exact triple exists.
func (g *Gateway) Insert(ctx context.Context, a Album) error {
	db, err := g.open()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `
		INSERT INTO albums (artist, album, mediatype) VALUES (?, ?, ?)
	`, a.Artist, a.Title, string(a.Media))
	if dbutil.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return storeErr(OpInsert, err)
}

// Delete removes every row matching a exactly (case-sensitive).
// It returns ErrNotFound if nothing was removed.
func (g *Gateway) Delete(ctx context.Context, a Album) error {
	db, err := g.open()
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, `
		DELETE FROM albums WHERE artist = ? AND album = ? AND mediatype = ?
	`, a.Artist, a.Title, string(a.Media))
	if err != nil {
		return storeErr(OpDelete, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr(OpDelete, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Find returns nil if a is stored and ErrNotFound otherwise.
func (g *Gateway) Find(ctx context.Context, a Album) error {
	db, err := g.open()
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM albums WHERE artist = ? AND album = ? AND mediatype = ?
	`, a.Artist, a.Title, string(a.Media)).Scan(&count)
	if err != nil {
		return storeErr(OpFind, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every album ordered case-insensitively by key.
// An invalid key returns ErrInvalidSort without touching the database.
func (g *Gateway) List(ctx context.Context, key SortKey) ([]Album, error) {
	order, ok := orderClauses[key]
	if !ok {
		return nil, ErrInvalidSort
	}

	db, err := g.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	//nolint:gosec // order comes from the fixed orderClauses table
	rows, err := db.QueryContext(ctx, `
		SELECT artist, album, mediatype FROM albums ORDER BY `+order)
	if err != nil {
		return nil, storeErr(OpList, err)
	}
	defer rows.Close()

	var albums []Album
	for rows.Next() {
		var a Album
		var media string
		if err := rows.Scan(&a.Artist, &a.Title, &media); err != nil {
			return nil, storeErr(OpList, err)
		}
		a.Media = mediatype.Type(media)
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(OpList, err)
	}
	return albums, nil
}
