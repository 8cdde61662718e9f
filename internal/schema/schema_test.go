package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"estate-db/internal/database"
	"estate-db/internal/schema"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.OpenDialector(sqlite.Open("file::memory:?_foreign_keys=on"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection to :memory: would see its own empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func TestMaterializeCreatesAllTables(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, schema.Materialize(db))

	tables, err := schema.Tables(db)
	require.NoError(t, err)

	expected := []string{
		"agents", "buyers", "commissions", "listings",
		"monthly_commissions", "offices", "sales", "sellers",
	}
	for _, table := range expected {
		assert.Contains(t, tables, table)
	}
}

func TestMaterializeIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, schema.Materialize(db))
	first, err := schema.Tables(db)
	require.NoError(t, err)

	require.NoError(t, schema.Materialize(db))
	second, err := schema.Tables(db)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
