// Package report holds the read queries and monthly report aggregations.
package report

import (
	"fmt"

	"gorm.io/gorm"

	"estate-db/internal/database"
	"estate-db/internal/models"
)

// AgentOfficeRow pairs an agent with the address of their office.
type AgentOfficeRow struct {
	AgentName     string
	OfficeAddress string
}

// SaleRow is one closed sale with the names of every party involved.
type SaleRow struct {
	ListingAddress string
	SellerName     string
	BuyerName      string
	AgentName      string
	SalePrice      float64
}

// CommissionTotalRow is the summed commission amount for one agent.
type CommissionTotalRow struct {
	AgentName string
	Total     float64
}

// AgentsWithOffices returns exactly one row per agent, joined with the
// agent's office. Ordered by agent id.
func AgentsWithOffices(db *gorm.DB) ([]AgentOfficeRow, error) {
	var rows []AgentOfficeRow
	err := db.Model(&models.Agent{}).
		Select("agents.name AS agent_name, offices.address AS office_address").
		Joins("JOIN offices ON offices.id = agents.office_id").
		Order("agents.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: agents with offices: %v", database.ErrQuery, err)
	}
	return rows, nil
}

// SalesWithNames returns every sale with its listing address and the
// seller, buyer, and selling agent names. Ordered by sale id.
func SalesWithNames(db *gorm.DB) ([]SaleRow, error) {
	var rows []SaleRow
	err := db.Model(&models.Sale{}).
		Select("listings.address AS listing_address, " +
			"sellers.name AS seller_name, " +
			"buyers.name AS buyer_name, " +
			"agents.name AS agent_name, " +
			"sales.sale_price AS sale_price").
		Joins("JOIN listings ON listings.id = sales.listing_id").
		Joins("JOIN sellers ON sellers.id = listings.seller_id").
		Joins("JOIN buyers ON buyers.id = sales.buyer_id").
		Joins("JOIN agents ON agents.id = sales.selling_agent_id").
		Order("sales.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: sales with names: %v", database.ErrQuery, err)
	}
	return rows, nil
}

// CommissionTotals sums commission amounts per agent, highest total
// first with agent name breaking ties.
func CommissionTotals(db *gorm.DB) ([]CommissionTotalRow, error) {
	var rows []CommissionTotalRow
	err := db.Model(&models.Commission{}).
		Select("agents.name AS agent_name, SUM(commissions.amount) AS total").
		Joins("JOIN agents ON agents.id = commissions.agent_id").
		Group("agents.id, agents.name").
		Order("total DESC, agent_name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: commission totals: %v", database.ErrQuery, err)
	}
	return rows, nil
}
