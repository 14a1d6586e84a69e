package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS recipes (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	canonical_title TEXT NOT NULL,
	fingerprint     TEXT NOT NULL UNIQUE,
	source          TEXT NOT NULL DEFAULT '',
	link            TEXT NOT NULL DEFAULT '',
	directions      TEXT NOT NULL DEFAULT '[]',
	created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_recipes_canonical_title ON recipes(canonical_title);

CREATE TABLE IF NOT EXISTS recipe_ingredients (
	recipe_id    TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
	position     INTEGER NOT NULL,
	raw_line     TEXT NOT NULL,
	quantity     REAL,
	unit         TEXT NOT NULL DEFAULT '',
	name         TEXT NOT NULL,
	package_qty  REAL,
	package_unit TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (recipe_id, position)
);

CREATE TABLE IF NOT EXISTS nutrition_plans (
	id              TEXT PRIMARY KEY,
	weight_kg       REAL NOT NULL,
	source_filename TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS nutrition_plan_rows (
	plan_id       TEXT NOT NULL REFERENCES nutrition_plans(id) ON DELETE CASCADE,
	day           TEXT NOT NULL,
	day_type      TEXT NOT NULL,
	planned_hours REAL NOT NULL,
	kcal          INTEGER NOT NULL,
	protein_g     INTEGER NOT NULL,
	carbs_g       INTEGER NOT NULL,
	fat_g         INTEGER NOT NULL,
	intra_cho_gph INTEGER NOT NULL,
	PRIMARY KEY (plan_id, day)
);
`

// Connect opens (or creates) the SQLite database at path and applies the
// schema. A single connection is kept open; modernc's driver serializes
// writers anyway and this avoids SQLITE_BUSY under concurrent use.
func Connect(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %q: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return db, nil
}

// Disconnect closes the database.
func Disconnect(db *sql.DB) error {
	return db.Close()
}
