// Package metadata provides read-only access to the local game
// metadata database: store tags, feature flags, and genres gathered
// by the catalog scraper. The profile engine only consumes it to seed
// default category rules; maintaining the database is a separate
// subsystem.
package metadata

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB is a handle to the metadata database.
type DB struct {
	conn *sql.DB
}

// Open opens the SQLite metadata database at the given path.
func Open(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening metadata database: %w", err)
	}

	// SQLite is single-writer; limit the pool to one connection to avoid
	// lock contention and make the single-connection intent explicit.
	conn.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}

	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	return &DB{conn: conn}, nil
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// schemaDDL holds the tables the scraper maintains. Initialize only
// creates them so a fresh install has a valid (empty) database.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS apps (
	id     INTEGER PRIMARY KEY,
	name   TEXT,
	genres TEXT
);

CREATE TABLE IF NOT EXISTS app_tags (
	app_id INTEGER NOT NULL REFERENCES apps(id) ON DELETE CASCADE,
	tag    TEXT NOT NULL,
	score  REAL NOT NULL DEFAULT 0,
	PRIMARY KEY (app_id, tag)
);

CREATE TABLE IF NOT EXISTS app_flags (
	app_id INTEGER NOT NULL REFERENCES apps(id) ON DELETE CASCADE,
	flag   TEXT NOT NULL,
	PRIMARY KEY (app_id, flag)
);

CREATE INDEX IF NOT EXISTS idx_app_tags_tag ON app_tags(tag);
CREATE INDEX IF NOT EXISTS idx_app_flags_flag ON app_flags(flag);
`

// Initialize creates the metadata tables if they don't exist.
func Initialize(db *DB) error {
	if _, err := db.conn.Exec(schemaDDL); err != nil {
		return fmt.Errorf("creating metadata schema: %w", err)
	}
	return nil
}

// TopTags returns up to limit tag names ordered by aggregate score
// across all apps, highest first.
func (db *DB) TopTags(limit int) ([]string, error) {
	rows, err := db.conn.Query(
		`SELECT tag FROM app_tags GROUP BY tag ORDER BY SUM(score) DESC, tag ASC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// StoreFlags returns every distinct store feature flag, sorted.
func (db *DB) StoreFlags() ([]string, error) {
	rows, err := db.conn.Query(`SELECT DISTINCT flag FROM app_flags ORDER BY flag ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying flags: %w", err)
	}
	defer rows.Close()

	var flags []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("scanning flag: %w", err)
		}
		flags = append(flags, f)
	}
	return flags, rows.Err()
}

// InsertApp records an app row with its tags and flags. The scraper
// owns writes; this exists for seeding and tests.
func (db *DB) InsertApp(id int, name, genres string, tags map[string]float64, flags []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO apps (id, name, genres) VALUES (?, ?, ?)`,
		id, name, genres,
	); err != nil {
		return fmt.Errorf("inserting app %d: %w", id, err)
	}

	for tag, score := range tags {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO app_tags (app_id, tag, score) VALUES (?, ?, ?)`,
			id, tag, score,
		); err != nil {
			return fmt.Errorf("inserting tag %q: %w", tag, err)
		}
	}

	for _, flag := range flags {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO app_flags (app_id, flag) VALUES (?, ?)`,
			id, flag,
		); err != nil {
			return fmt.Errorf("inserting flag %q: %w", flag, err)
		}
	}

	return tx.Commit()
}
