package store

import (
	"fmt"
	"strings"
)

// Column describes one attribute of a collection.
type Column struct {
	Name    string
	Type    string
	NotNull bool
	Default string
}

// Index describes a secondary index over a collection.
type Index struct {
	Name    string
	Columns []string
	Unique  bool
}

// Collection is a named partition of the store holding one record type.
// KeyPath is the field or field-combination forming a record's identity;
// upserts replace the record with the same key.
type Collection struct {
	Name    string
	KeyPath []string
	Columns []Column
	Indexes []Index
}

// Schema declares the store layout at one version. Migration is
// additive-only: collections and indexes missing from the live database
// are created, existing ones are never dropped or altered.
type Schema struct {
	Version     int
	Collections []Collection
}

// Collection names
const (
	CollectionAccounts        = "accounts"
	CollectionHealthProfiles  = "health_profiles"
	CollectionBMIRecords      = "bmi_records"
	CollectionTrackingRecords = "tracking_records"
	CollectionProfileImages   = "profile_images"
)

// CurrentSchema is the layout this build expects. Bump Version when
// adding collections or indexes.
var CurrentSchema = Schema{
	Version: 1,
	Collections: []Collection{
		{
			Name:    CollectionAccounts,
			KeyPath: []string{"username"},
			Columns: []Column{
				{Name: "username", Type: "TEXT", NotNull: true},
				{Name: "password_hash", Type: "TEXT", NotNull: true},
				{Name: "first_name", Type: "TEXT", NotNull: true},
				{Name: "last_name", Type: "TEXT", NotNull: true},
				{Name: "created_at", Type: "TIMESTAMPTZ", NotNull: true, Default: "now()"},
			},
		},
		{
			Name:    CollectionHealthProfiles,
			KeyPath: []string{"username"},
			Columns: []Column{
				{Name: "username", Type: "TEXT", NotNull: true},
				{Name: "chronic_diseases", Type: "TEXT", NotNull: true, Default: "'-'"},
				{Name: "surgery_history", Type: "TEXT", NotNull: true, Default: "'-'"},
				{Name: "drug_allergies", Type: "TEXT", NotNull: true, Default: "'-'"},
				{Name: "food_allergies", Type: "TEXT", NotNull: true, Default: "'-'"},
				{Name: "updated_at", Type: "TIMESTAMPTZ", NotNull: true, Default: "now()"},
			},
		},
		{
			Name:    CollectionBMIRecords,
			KeyPath: []string{"username", "date"},
			Columns: []Column{
				{Name: "username", Type: "TEXT", NotNull: true},
				{Name: "date", Type: "TEXT", NotNull: true},
				{Name: "height", Type: "DOUBLE PRECISION", NotNull: true},
				{Name: "weight", Type: "DOUBLE PRECISION", NotNull: true},
				{Name: "bmi", Type: "DOUBLE PRECISION", NotNull: true},
				{Name: "created_at", Type: "TIMESTAMPTZ", NotNull: true, Default: "now()"},
			},
		},
		{
			Name:    CollectionTrackingRecords,
			KeyPath: []string{"username", "date"},
			Columns: []Column{
				{Name: "username", Type: "TEXT", NotNull: true},
				{Name: "date", Type: "TEXT", NotNull: true},
				{Name: "weight", Type: "DOUBLE PRECISION", NotNull: true},
				{Name: "chest", Type: "DOUBLE PRECISION"},
				{Name: "waist", Type: "DOUBLE PRECISION"},
				{Name: "blood_pressure", Type: "TEXT"},
				{Name: "glucose", Type: "DOUBLE PRECISION"},
				{Name: "created_at", Type: "TIMESTAMPTZ", NotNull: true, Default: "now()"},
			},
			Indexes: []Index{
				{Name: "tracking_records_username", Columns: []string{"username"}},
			},
		},
		{
			Name:    CollectionProfileImages,
			KeyPath: []string{"username"},
			Columns: []Column{
				{Name: "username", Type: "TEXT", NotNull: true},
				{Name: "image", Type: "TEXT", NotNull: true},
				{Name: "updated_at", Type: "TIMESTAMPTZ", NotNull: true, Default: "now()"},
			},
		},
	},
}

// CreateTableSQL renders the collection's DDL. Idempotent: an existing
// table is left untouched.
func (c Collection) CreateTableSQL() string {
	defs := make([]string, 0, len(c.Columns)+1)
	for _, col := range c.Columns {
		def := col.Name + " " + col.Type
		if col.NotNull {
			def += " NOT NULL"
		}
		if col.Default != "" {
			def += " DEFAULT " + col.Default
		}
		defs = append(defs, def)
	}
	defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(c.KeyPath, ", ")))
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", c.Name, strings.Join(defs, ", "))
}

// CreateIndexSQL renders the DDL for each declared secondary index.
func (c Collection) CreateIndexSQL() []string {
	stmts := make([]string, 0, len(c.Indexes))
	for _, idx := range c.Indexes {
		unique := ""
		if idx.Unique {
			unique = "UNIQUE "
		}
		stmts = append(stmts, fmt.Sprintf(
			"CREATE %sINDEX IF NOT EXISTS %s ON %s (%s)",
			unique, idx.Name, c.Name, strings.Join(idx.Columns, ", "),
		))
	}
	return stmts
}

// Lookup returns the named collection descriptor.
func (s Schema) Lookup(name string) (Collection, bool) {
	for _, c := range s.Collections {
		if c.Name == name {
			return c, true
		}
	}
	return Collection{}, false
}
