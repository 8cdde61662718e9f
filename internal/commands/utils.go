package commands

import (
	"gorm.io/gorm"

	"estate-db/internal/database"
)

// withDB opens a scoped connection, runs fn, and releases the
// connection on every exit path.
func withDB(fn func(db *gorm.DB) error) error {
	db, err := database.Open()
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(db)
}
