package catalog

import "context"

// Catalog is the record store contract used by the dispatcher.
type Catalog interface {
	Insert(ctx context.Context, a Album) error
	Delete(ctx context.Context, a Album) error
	Find(ctx context.Context, a Album) error
	List(ctx context.Context, key SortKey) ([]Album, error)
}

// Verify Gateway implements Catalog at compile time.
var _ Catalog = (*Gateway)(nil)
