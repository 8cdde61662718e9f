package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"estate-db/internal/database"
	"estate-db/internal/logger"
	"estate-db/internal/schema"
)

func CreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create the database file and materialize the schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			// Only the file-backed SQLite target can be checked for prior
			// initialization. A DSN target is left to Materialize, which
			// is a no-op against existing tables.
			if os.Getenv("DATABASE_URL") == "" {
				path := database.Path()
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%w: database file %s already exists", database.ErrSchema, path)
				}
			}

			return withDB(func(db *gorm.DB) error {
				if err := schema.Materialize(db); err != nil {
					return err
				}
				tables, err := schema.Tables(db)
				if err != nil {
					return err
				}
				log.Info().Int("tables", len(tables)).Msg("schema materialized")
				return nil
			})
		},
	}
}
