package db

import (
	"database/sql"
	"fmt"
)

// migrations are executed in order. Statements must be idempotent since the
// whole list re-runs on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS budgets (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		notes       TEXT NOT NULL DEFAULT '',
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS categories (
		id          TEXT PRIMARY KEY,
		budget_id   TEXT NOT NULL REFERENCES budgets(id) ON DELETE CASCADE,
		name        TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		position    INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS items (
		id               TEXT PRIMARY KEY,
		category_id      TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		position         INTEGER NOT NULL DEFAULT 0,
		description      TEXT NOT NULL DEFAULT '',
		long_description TEXT NOT NULL DEFAULT '',
		notes            TEXT NOT NULL DEFAULT '',
		active           INTEGER NOT NULL DEFAULT 1,
		quantity         INTEGER NOT NULL DEFAULT 1,
		days             INTEGER NOT NULL DEFAULT 1,
		frequency        INTEGER NOT NULL DEFAULT 1,
		unit_price_cents INTEGER NOT NULL DEFAULT 0,
		supplier         TEXT NOT NULL DEFAULT '',
		invoice_ref      TEXT NOT NULL DEFAULT '',
		billing          TEXT NOT NULL
		                 CHECK(billing IN ('Direto ao Cliente','Equipe Interna','Terceiros'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_categories_budget ON categories(budget_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id, position)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
