package report

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"estate-db/internal/database"
	"estate-db/internal/models"
)

// OfficeSalesRow counts closed sales for one office in a month.
type OfficeSalesRow struct {
	OfficeID      uint
	OfficeAddress string
	SalesCount    int64
}

// AgentSalesRow counts closed sales for one agent in a month.
type AgentSalesRow struct {
	AgentID    uint
	AgentName  string
	AgentEmail string
	AgentPhone string
	SalesCount int64
}

// MonthlyCommissionRow is one agent's rolled-up commission for a month.
type MonthlyCommissionRow struct {
	AgentID   uint
	AgentName string
	Amount    float64
}

func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// TopOfficesBySales returns the five offices with the most sales closed
// in the given month.
func TopOfficesBySales(db *gorm.DB, year int, month time.Month) ([]OfficeSalesRow, error) {
	start, end := monthRange(year, month)
	var rows []OfficeSalesRow
	err := db.Model(&models.Sale{}).
		Select("offices.id AS office_id, offices.address AS office_address, COUNT(sales.id) AS sales_count").
		Joins("JOIN offices ON offices.id = sales.office_id").
		Where("sales.date_of_sale >= ? AND sales.date_of_sale < ?", start, end).
		Group("offices.id, offices.address").
		Order("sales_count DESC, office_id").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: top offices by sales: %v", database.ErrQuery, err)
	}
	return rows, nil
}

// TopAgentsBySales returns the five agents with the most sales closed
// in the given month.
func TopAgentsBySales(db *gorm.DB, year int, month time.Month) ([]AgentSalesRow, error) {
	start, end := monthRange(year, month)
	var rows []AgentSalesRow
	err := db.Model(&models.Sale{}).
		Select("agents.id AS agent_id, agents.name AS agent_name, "+
			"agents.email AS agent_email, agents.phone AS agent_phone, "+
			"COUNT(sales.id) AS sales_count").
		Joins("JOIN agents ON agents.id = sales.selling_agent_id").
		Where("sales.date_of_sale >= ? AND sales.date_of_sale < ?", start, end).
		Group("agents.id, agents.name, agents.email, agents.phone").
		Order("sales_count DESC, agent_id").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: top agents by sales: %v", database.ErrQuery, err)
	}
	return rows, nil
}

// AverageDaysOnMarket averages, over sales closed in the given month,
// the days between listing and sale. The average is computed in Go to
// stay portable across SQLite and PostgreSQL date arithmetic. The count
// of sampled sales is returned alongside; zero means no sales closed.
func AverageDaysOnMarket(db *gorm.DB, year int, month time.Month) (float64, int, error) {
	start, end := monthRange(year, month)
	var pairs []struct {
		DateOfSale    time.Time
		DateOfListing time.Time
	}
	err := db.Model(&models.Sale{}).
		Select("sales.date_of_sale, listings.date_of_listing").
		Joins("JOIN listings ON listings.id = sales.listing_id").
		Where("sales.date_of_sale >= ? AND sales.date_of_sale < ?", start, end).
		Scan(&pairs).Error
	if err != nil {
		return 0, 0, fmt.Errorf("%w: average days on market: %v", database.ErrQuery, err)
	}
	if len(pairs) == 0 {
		return 0, 0, nil
	}
	var total float64
	for _, p := range pairs {
		total += p.DateOfSale.Sub(p.DateOfListing).Hours() / 24
	}
	return total / float64(len(pairs)), len(pairs), nil
}

// AverageSellingPrice averages the sale price over sales closed in the
// given month. The boolean reports whether any sale closed.
func AverageSellingPrice(db *gorm.DB, year int, month time.Month) (float64, bool, error) {
	start, end := monthRange(year, month)
	var avg sql.NullFloat64
	row := db.Model(&models.Sale{}).
		Select("AVG(sales.sale_price)").
		Where("sales.date_of_sale >= ? AND sales.date_of_sale < ?", start, end).
		Row()
	if err := row.Scan(&avg); err != nil {
		return 0, false, fmt.Errorf("%w: average selling price: %v", database.ErrQuery, err)
	}
	return avg.Float64, avg.Valid, nil
}

// RollupMonthlyCommissions sums each agent's commissions for the given
// month and stores the totals in monthly_commissions. Agents already
// rolled up for that month are skipped, so the rollup is re-runnable.
func RollupMonthlyCommissions(db *gorm.DB, year int, month time.Month) error {
	start, end := monthRange(year, month)
	var totals []struct {
		AgentID uint
		Total   float64
	}
	err := db.Model(&models.Commission{}).
		Select("commissions.agent_id AS agent_id, SUM(commissions.amount) AS total").
		Where("commissions.date_of_commission >= ? AND commissions.date_of_commission < ?", start, end).
		Group("commissions.agent_id").
		Order("total DESC").
		Scan(&totals).Error
	if err != nil {
		return fmt.Errorf("%w: monthly commission totals: %v", database.ErrQuery, err)
	}

	for _, t := range totals {
		var existing models.MonthlyCommission
		err := db.Where("agent_id = ? AND month = ?", t.AgentID, start).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: monthly commission lookup: %v", database.ErrQuery, err)
		}
		row := models.MonthlyCommission{AgentID: t.AgentID, Month: start, Amount: t.Total}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("store monthly commission: %w", database.TranslateConstraint(err))
		}
	}
	return nil
}

// MonthlyCommissions lists the stored rollups for the given month,
// highest amount first.
func MonthlyCommissions(db *gorm.DB, year int, month time.Month) ([]MonthlyCommissionRow, error) {
	start, _ := monthRange(year, month)
	var rows []MonthlyCommissionRow
	err := db.Model(&models.MonthlyCommission{}).
		Select("monthly_commissions.agent_id AS agent_id, agents.name AS agent_name, monthly_commissions.amount AS amount").
		Joins("JOIN agents ON agents.id = monthly_commissions.agent_id").
		Where("monthly_commissions.month = ?", start).
		Order("amount DESC, agent_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: monthly commissions: %v", database.ErrQuery, err)
	}
	return rows, nil
}
