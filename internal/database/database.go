// Package database manages the connection to the storage target. An
// SQLite file is the default; setting DATABASE_URL switches to PostgreSQL.
package database

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultPath is the SQLite database file used when DATABASE_PATH is unset.
const DefaultPath = "real_estate.db"

var (
	// ErrSchema indicates the schema could not be created, or the target
	// was already initialized.
	ErrSchema = errors.New("schema creation failed")
	// ErrReferentialIntegrity indicates an inserted row references a row
	// that does not exist.
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	// ErrQuery indicates a read query failed against the current schema.
	ErrQuery = errors.New("query failed")
)

// Path returns the SQLite database file path, honoring DATABASE_PATH.
func Path() string {
	if p := os.Getenv("DATABASE_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// SQLiteDSN builds a DSN that enables foreign key constraint checks,
// which SQLite leaves off by default.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on", path)
}

// Open connects to the configured storage target. DATABASE_URL selects
// PostgreSQL; otherwise an SQLite file at Path() is used.
func Open() (*gorm.DB, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return OpenDialector(postgres.Open(dsn))
	}
	return OpenDialector(sqlite.Open(SQLiteDSN(Path())))
}

// OpenDialector opens a connection with error translation enabled so
// constraint violations surface as gorm sentinel errors.
func OpenDialector(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// TranslateConstraint maps foreign key violations onto
// ErrReferentialIntegrity and returns every other error unchanged.
// Both the gorm sentinel and the raw SQLite message are checked since
// not every code path goes through gorm's error translation.
func TranslateConstraint(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint") {
		return fmt.Errorf("%w: %v", ErrReferentialIntegrity, err)
	}
	return err
}
