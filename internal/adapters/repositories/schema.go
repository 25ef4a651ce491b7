package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the database schema. The statements are kept to the common
// subset understood by both SQLite and Postgres so the same init path serves
// the local single-binary setup and the shared-cache deployment.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDistanceCacheQuery := `
	CREATE TABLE IF NOT EXISTS point_distance_cache (
        origin_key TEXT NOT NULL,
        dest_key TEXT NOT NULL,
        distance_km DOUBLE PRECISION NOT NULL,
        PRIMARY KEY (origin_key, dest_key)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_point_distance_cache_dest_origin
    ON point_distance_cache(dest_key, origin_key);
	`

	statements := []string{
		createDistanceCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
