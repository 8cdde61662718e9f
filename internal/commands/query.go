package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"estate-db/internal/report"
)

func QueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query",
		Short: "Run the read queries and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *gorm.DB) error {
				agents, err := report.AgentsWithOffices(db)
				if err != nil {
					return err
				}
				fmt.Println("Agents and their offices:")
				report.RenderAgents(os.Stdout, agents)

				sales, err := report.SalesWithNames(db)
				if err != nil {
					return err
				}
				fmt.Println("\nSales:")
				report.RenderSales(os.Stdout, sales)

				totals, err := report.CommissionTotals(db)
				if err != nil {
					return err
				}
				fmt.Println("\nCommission totals per agent:")
				report.RenderCommissionTotals(os.Stdout, totals)
				return nil
			})
		},
	}
}
