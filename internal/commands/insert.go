package commands

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"estate-db/internal/logger"
	"estate-db/internal/models"
	"estate-db/internal/seed"
)

func InsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert",
		Short: "Populate the database with the sample dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			return withDB(func(db *gorm.DB) error {
				if err := seed.Run(db); err != nil {
					return err
				}

				var saleCount int64
				if err := db.Model(&models.Sale{}).Count(&saleCount).Error; err != nil {
					return err
				}
				log.Info().Int64("sales", saleCount).Msg("sample dataset inserted")
				return nil
			})
		},
	}
}
