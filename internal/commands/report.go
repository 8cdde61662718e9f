package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"estate-db/internal/report"
)

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the monthly sales report and roll up commissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, _ := cmd.Flags().GetInt("year")
			monthNum, _ := cmd.Flags().GetInt("month")
			if monthNum < 1 || monthNum > 12 {
				return fmt.Errorf("invalid month: %d", monthNum)
			}
			month := time.Month(monthNum)

			return withDB(func(db *gorm.DB) error {
				fmt.Printf("Monthly report for %d-%02d\n", year, monthNum)

				offices, err := report.TopOfficesBySales(db, year, month)
				if err != nil {
					return err
				}
				fmt.Println("\nTop offices by sales:")
				report.RenderOfficeSales(os.Stdout, offices)

				agents, err := report.TopAgentsBySales(db, year, month)
				if err != nil {
					return err
				}
				fmt.Println("\nTop agents by sales:")
				report.RenderAgentSales(os.Stdout, agents)

				if err := report.RollupMonthlyCommissions(db, year, month); err != nil {
					return err
				}
				rollups, err := report.MonthlyCommissions(db, year, month)
				if err != nil {
					return err
				}
				fmt.Println("\nAgent commissions for the month:")
				report.RenderMonthlyCommissions(os.Stdout, rollups)

				avgDays, sampled, err := report.AverageDaysOnMarket(db, year, month)
				if err != nil {
					return err
				}
				if sampled > 0 {
					fmt.Printf("\nAverage days on market: %.1f\n", avgDays)
				} else {
					fmt.Println("\nAverage days on market: no sales")
				}

				avgPrice, ok, err := report.AverageSellingPrice(db, year, month)
				if err != nil {
					return err
				}
				if ok {
					fmt.Printf("Average selling price: $%.2f\n", avgPrice)
				} else {
					fmt.Println("Average selling price: no sales")
				}
				return nil
			})
		},
	}

	cmd.Flags().Int("year", 2024, "Report year")
	cmd.Flags().Int("month", 6, "Report month (1-12)")

	return cmd
}
