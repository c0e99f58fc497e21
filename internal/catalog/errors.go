package catalog

import "errors"

var (
	// ErrDuplicate is returned by Insert when the album is already stored.
	ErrDuplicate = errors.New("album already in catalogue")
	// ErrNotFound is returned by Delete and Find when nothing matches.
	ErrNotFound = errors.New("album not found")
	// ErrInvalidSort is returned by List for keys other than artist, album or mediatype.
	ErrInvalidSort = errors.New(`table only sortable by "artist", "album" or "mediatype"`)
)

// Op names the gateway operation that failed.
type Op string

const (
	OpInsert Op = "insert"
	OpDelete Op = "delete"
	OpFind   Op = "find"
	OpList   Op = "list"
	OpOpen   Op = "open"
)

// StoreError wraps any unexpected failure from the underlying database.
type StoreError struct {
	Op  Op
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
