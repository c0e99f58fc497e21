package catalog

import (
	"database/sql"

	dbutil "github.com/llehouerou/albumlist/internal/db"
)

// initSchema creates the albums table when the database is fresh.
// Existing databases are left untouched.
func initSchema(db *sql.DB) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS albums (
				artist TEXT NOT NULL,
				album TEXT NOT NULL,
				mediatype TEXT NOT NULL,
				UNIQUE(artist, album, mediatype)
			)
		`)
		return err
	})
}
