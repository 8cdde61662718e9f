package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"estate-db/internal/database"
	"estate-db/internal/models"
	"estate-db/internal/report"
	"estate-db/internal/schema"
	"estate-db/internal/seed"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.OpenDialector(sqlite.Open("file::memory:?_foreign_keys=on"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection to :memory: would see its own empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, schema.Materialize(db))
	return db
}

func setupSeededDB(t *testing.T) *gorm.DB {
	db := setupTestDB(t)
	require.NoError(t, seed.Run(db))
	return db
}

func TestAgentsWithOfficesReturnsOneRowPerAgent(t *testing.T) {
	db := setupSeededDB(t)

	rows, err := report.AgentsWithOffices(db)
	require.NoError(t, err)

	var agents []models.Agent
	require.NoError(t, db.Order("id").Find(&agents).Error)
	require.Len(t, rows, len(agents))

	officeAddress := map[uint]string{}
	var offices []models.Office
	require.NoError(t, db.Find(&offices).Error)
	for _, o := range offices {
		officeAddress[o.ID] = o.Address
	}

	// rows are ordered by agent id, matching the agents slice
	for i, agent := range agents {
		assert.Equal(t, agent.Name, rows[i].AgentName)
		assert.Equal(t, officeAddress[agent.OfficeID], rows[i].OfficeAddress)
	}
}

func TestCommissionTotalsMatchIndependentSums(t *testing.T) {
	db := setupSeededDB(t)

	rows, err := report.CommissionTotals(db)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	var commissions []models.Commission
	require.NoError(t, db.Find(&commissions).Error)
	var agents []models.Agent
	require.NoError(t, db.Find(&agents).Error)

	nameByID := map[uint]string{}
	for _, a := range agents {
		nameByID[a.ID] = a.Name
	}
	expected := map[string]float64{}
	for _, c := range commissions {
		expected[nameByID[c.AgentID]] += c.Amount
	}

	require.Len(t, rows, len(expected))
	for _, row := range rows {
		assert.InDelta(t, expected[row.AgentName], row.Total, 0.01)
	}
}

func TestQueriesAreReadOnly(t *testing.T) {
	db := setupSeededDB(t)

	countAll := func() (counts [3]int64) {
		require.NoError(t, db.Model(&models.Sale{}).Count(&counts[0]).Error)
		require.NoError(t, db.Model(&models.Commission{}).Count(&counts[1]).Error)
		require.NoError(t, db.Model(&models.Agent{}).Count(&counts[2]).Error)
		return counts
	}

	before := countAll()
	_, err := report.AgentsWithOffices(db)
	require.NoError(t, err)
	_, err = report.SalesWithNames(db)
	require.NoError(t, err)
	_, err = report.CommissionTotals(db)
	require.NoError(t, err)
	assert.Equal(t, before, countAll())
}

func TestSingleSaleScenario(t *testing.T) {
	db := setupTestDB(t)

	jan := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Office{Model: gorm.Model{ID: 1}, Address: "HQ", Phone: "555-0100"}).Error)
	require.NoError(t, db.Create(&models.Agent{Model: gorm.Model{ID: 1}, Name: "Alice", OfficeID: 1}).Error)
	require.NoError(t, db.Create(&models.Seller{Model: gorm.Model{ID: 1}, Name: "Bob"}).Error)
	require.NoError(t, db.Create(&models.Listing{
		Model: gorm.Model{ID: 1}, SellerID: 1, Address: "1 Main St", ListingPrice: 100000,
		DateOfListing: jan.AddDate(0, -2, 0), ListingAgentID: 1, OfficeID: 1,
	}).Error)
	require.NoError(t, db.Create(&models.Buyer{Model: gorm.Model{ID: 1}, Name: "Carol"}).Error)
	require.NoError(t, db.Create(&models.Sale{
		Model: gorm.Model{ID: 1}, ListingID: 1, BuyerID: 1, SellingAgentID: 1, OfficeID: 1,
		SalePrice: 95000, DateOfSale: jan,
	}).Error)
	require.NoError(t, db.Create(&models.Commission{
		Model: gorm.Model{ID: 1}, SaleID: 1, AgentID: 1, Amount: 5000, DateOfCommission: jan,
	}).Error)

	sales, err := report.SalesWithNames(db)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, report.SaleRow{
		ListingAddress: "1 Main St",
		SellerName:     "Bob",
		BuyerName:      "Carol",
		AgentName:      "Alice",
		SalePrice:      95000,
	}, sales[0])

	totals, err := report.CommissionTotals(db)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, "Alice", totals[0].AgentName)
	assert.InDelta(t, 5000, totals[0].Total, 0.01)
}

func TestTopOfficesBySales(t *testing.T) {
	db := setupSeededDB(t)

	rows, err := report.TopOfficesBySales(db, 2024, time.June)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// offices 1 and 2 closed two sales each, office 3 one
	assert.Equal(t, uint(1), rows[0].OfficeID)
	assert.Equal(t, int64(2), rows[0].SalesCount)
	assert.Equal(t, uint(2), rows[1].OfficeID)
	assert.Equal(t, int64(2), rows[1].SalesCount)
	assert.Equal(t, uint(3), rows[2].OfficeID)
	assert.Equal(t, int64(1), rows[2].SalesCount)
}

func TestTopAgentsBySales(t *testing.T) {
	db := setupSeededDB(t)

	rows, err := report.TopAgentsBySales(db, 2024, time.June)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	for _, row := range rows {
		assert.Equal(t, int64(1), row.SalesCount)
		assert.NotEmpty(t, row.AgentName)
	}
}

func TestAverageDaysOnMarket(t *testing.T) {
	db := setupSeededDB(t)

	avg, sampled, err := report.AverageDaysOnMarket(db, 2024, time.June)
	require.NoError(t, err)
	assert.Equal(t, 5, sampled)
	// (123+114+99+80+65)/5 days between listing and sale
	assert.InDelta(t, 96.2, avg, 0.01)

	_, sampled, err = report.AverageDaysOnMarket(db, 2024, time.January)
	require.NoError(t, err)
	assert.Zero(t, sampled)
}

func TestAverageSellingPrice(t *testing.T) {
	db := setupSeededDB(t)

	avg, ok, err := report.AverageSellingPrice(db, 2024, time.June)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 508000, avg, 0.01)

	_, ok, err = report.AverageSellingPrice(db, 2024, time.January)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRollupMonthlyCommissionsIsRerunnable(t *testing.T) {
	db := setupSeededDB(t)

	require.NoError(t, report.RollupMonthlyCommissions(db, 2024, time.June))
	first, err := report.MonthlyCommissions(db, 2024, time.June)
	require.NoError(t, err)
	require.Len(t, first, 5)

	// second run must not duplicate rollup rows
	require.NoError(t, report.RollupMonthlyCommissions(db, 2024, time.June))
	second, err := report.MonthlyCommissions(db, 2024, time.June)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	totals, err := report.CommissionTotals(db)
	require.NoError(t, err)
	totalByAgent := map[string]float64{}
	for _, row := range totals {
		totalByAgent[row.AgentName] = row.Total
	}
	for _, row := range second {
		assert.InDelta(t, totalByAgent[row.AgentName], row.Amount, 0.01)
	}
}
