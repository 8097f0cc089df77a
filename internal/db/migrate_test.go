package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_IsIdempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated once; a second run must not fail.
	require.NoError(t, Migrate(database))

	for _, table := range []string{"budgets", "categories", "items"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestSchema_RejectsUnknownBilling(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO budgets (id, title, updated_at) VALUES ('default', 't', 'now')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO categories (id, budget_id, name) VALUES ('c1', 'default', 'Produção')`)
	require.NoError(t, err)

	_, err = database.Exec(
		`INSERT INTO items (id, category_id, billing) VALUES ('i1', 'c1', 'Cliente VIP')`)
	assert.Error(t, err, "billing CHECK constraint should reject unknown values")

	_, err = database.Exec(
		`INSERT INTO items (id, category_id, billing) VALUES ('i1', 'c1', 'Direto ao Cliente')`)
	assert.NoError(t, err)
}

func TestSchema_CascadesDeletes(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO budgets (id, title, updated_at) VALUES ('default', 't', 'now')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO categories (id, budget_id, name) VALUES ('c1', 'default', 'Produção')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO items (id, category_id, billing) VALUES ('i1', 'c1', 'Direto ao Cliente')`)
	require.NoError(t, err)

	_, err = database.Exec(`DELETE FROM budgets WHERE id = 'default'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count))
	assert.Zero(t, count)
}
