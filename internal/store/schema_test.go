package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTableSQL(t *testing.T) {
	c := Collection{
		Name:    "widgets",
		KeyPath: []string{"id"},
		Columns: []Column{
			{Name: "id", Type: "TEXT", NotNull: true},
			{Name: "size", Type: "DOUBLE PRECISION"},
			{Name: "created_at", Type: "TIMESTAMPTZ", NotNull: true, Default: "now()"},
		},
	}

	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS widgets ("+
			"id TEXT NOT NULL, "+
			"size DOUBLE PRECISION, "+
			"created_at TIMESTAMPTZ NOT NULL DEFAULT now(), "+
			"PRIMARY KEY (id))",
		c.CreateTableSQL())
}

func TestCreateTableSQLCompositeKey(t *testing.T) {
	c, ok := CurrentSchema.Lookup(CollectionBMIRecords)
	require.True(t, ok)
	assert.Contains(t, c.CreateTableSQL(), "PRIMARY KEY (username, date)")
}

func TestCreateIndexSQL(t *testing.T) {
	c := Collection{
		Name: "widgets",
		Indexes: []Index{
			{Name: "widgets_size", Columns: []string{"size"}},
			{Name: "widgets_owner_size", Columns: []string{"owner", "size"}, Unique: true},
		},
	}

	stmts := c.CreateIndexSQL()
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS widgets_size ON widgets (size)", stmts[0])
	assert.Equal(t, "CREATE UNIQUE INDEX IF NOT EXISTS widgets_owner_size ON widgets (owner, size)", stmts[1])
}

func TestLookup(t *testing.T) {
	for _, name := range []string{
		CollectionAccounts,
		CollectionHealthProfiles,
		CollectionBMIRecords,
		CollectionTrackingRecords,
		CollectionProfileImages,
	} {
		c, ok := CurrentSchema.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name)
		assert.NotEmpty(t, c.KeyPath, name)
	}

	_, ok := CurrentSchema.Lookup("nonexistent")
	assert.False(t, ok)
}

// Every key path column must exist in the column list, or the rendered
// DDL would reference an undeclared column.
func TestKeyPathsDeclared(t *testing.T) {
	for _, c := range CurrentSchema.Collections {
		declared := make(map[string]bool, len(c.Columns))
		for _, col := range c.Columns {
			declared[col.Name] = true
		}
		for _, key := range c.KeyPath {
			assert.True(t, declared[key], "%s: key column %q not declared", c.Name, key)
		}
		for _, idx := range c.Indexes {
			for _, col := range idx.Columns {
				assert.True(t, declared[col], "%s: index column %q not declared", c.Name, col)
			}
		}
	}
}
