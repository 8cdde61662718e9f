// Package schema materializes the entity definitions against a storage
// target.
package schema

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"estate-db/internal/database"
	"estate-db/internal/models"
)

// Materialize creates the table structures for every registered model,
// parents before children. AutoMigrate only adds what is missing, so
// running it against an already-initialized target is a no-op.
func Materialize(db *gorm.DB) error {
	if err := db.AutoMigrate(models.MigrationOrder()...); err != nil {
		return fmt.Errorf("%w: %v", database.ErrSchema, err)
	}
	return nil
}

// Tables returns the sorted table names currently present in the target.
func Tables(db *gorm.DB) ([]string, error) {
	tables, err := db.Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", database.ErrSchema, err)
	}
	sort.Strings(tables)
	return tables, nil
}
