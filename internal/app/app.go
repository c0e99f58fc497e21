// Package app runs one catalogue command and reports its outcome.
package app

import (
	"context"
	"errors"

	"github.com/llehouerou/albumlist/internal/catalog"
	"github.com/llehouerou/albumlist/internal/errmsg"
	"github.com/llehouerou/albumlist/internal/logger"
	"github.com/llehouerou/albumlist/internal/report"
)

const sortWarning = `Table only sortable by "artist", "album" or "mediatype"`

// App dispatches requests to the catalogue. Store failures are reported,
// never returned.
type App struct {
	catalog catalog.Catalog
	out     *report.Reporter
}

func New(c catalog.Catalog, out *report.Reporter) *App {
	return &App{catalog: c, out: out}
}

// Run performs the primary action, then the listing when req.Verbose is set.
func (a *App) Run(ctx context.Context, req Request) {
	logger.Debug("running command",
		logger.String("action", req.Action.String()),
		logger.String("album", req.Album.String()),
		logger.Bool("verbose", req.Verbose),
	)

	switch req.Action {
	case Remove:
		a.remove(ctx, req.Album)
	case Search:
		a.search(ctx, req.Album)
	default:
		a.insert(ctx, req.Album)
	}

	if req.Verbose {
		a.out.Blank()
		a.List(ctx, req.Sort)
	}
}

func (a *App) insert(ctx context.Context, album catalog.Album) {
	err := a.catalog.Insert(ctx, album)
	switch {
	case err == nil:
		a.out.Printf(report.Success, "%s added.", album)
	case errors.Is(err, catalog.ErrDuplicate):
		a.out.Printf(report.Warning, "%s Already in Database.", album)
	default:
		a.storeFailure(errmsg.OpAlbumAdd, album, err)
	}
}

func (a *App) remove(ctx context.Context, album catalog.Album) {
	err := a.catalog.Delete(ctx, album)
	switch {
	case err == nil:
		a.out.Printf(report.Success, "%s removed.", album)
	case errors.Is(err, catalog.ErrNotFound):
		a.out.Printf(report.Warning, "%s not found.", album)
	default:
		a.storeFailure(errmsg.OpAlbumRemove, album, err)
	}
}

func (a *App) search(ctx context.Context, album catalog.Album) {
	err := a.catalog.Find(ctx, album)
	switch {
	case err == nil:
		a.out.Printf(report.Success, "%s present in database.", album)
	case errors.Is(err, catalog.ErrNotFound):
		a.out.Printf(report.Warning, "%s not found.", album)
	default:
		a.storeFailure(errmsg.OpAlbumSearch, album, err)
	}
}

// storeFailure prints the raw store message and logs it with context.
func (a *App) storeFailure(op errmsg.Op, album catalog.Album, err error) {
	var storeErr *catalog.StoreError
	if errors.As(err, &storeErr) {
		logger.Error(errmsg.FormatWith(op, album.String(), err), logger.String("stage", string(storeErr.Op)))
	} else {
		logger.Error(errmsg.FormatWith(op, album.String(), err))
	}
	a.out.Print(report.Error, err.Error())
}

// List prints every album ordered by sortBy (artist when empty).
// Unknown keys print a warning without querying the store.
func (a *App) List(ctx context.Context, sortBy string) {
	if sortBy == "" {
		sortBy = string(catalog.SortArtist)
	}
	key, err := catalog.ParseSortKey(sortBy)
	if err != nil {
		a.out.Print(report.Warning, sortWarning)
		return
	}

	albums, err := a.catalog.List(ctx, key)
	if err != nil {
		msg := errmsg.Format(errmsg.OpAlbumList, err)
		logger.Error(msg)
		a.out.Print(report.Error, msg)
		return
	}
	a.out.Listing(albums)
}
