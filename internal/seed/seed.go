// Package seed populates the storage target with a fixed representative
// dataset. The dataset is deterministic: the same rows are produced on
// every run.
package seed

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"estate-db/internal/database"
	"estate-db/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CommissionRate returns the commission rate tier for a sale price.
func CommissionRate(salePrice float64) float64 {
	switch {
	case salePrice < 100000:
		return 0.10
	case salePrice < 200000:
		return 0.075
	case salePrice < 500000:
		return 0.06
	case salePrice < 1000000:
		return 0.05
	default:
		return 0.04
	}
}

func offices() []models.Office {
	return []models.Office{
		{Model: gorm.Model{ID: 1}, Address: "101 Market Street, Springfield", Phone: "555-0100"},
		{Model: gorm.Model{ID: 2}, Address: "48 Lakeview Avenue, Shelbyville", Phone: "555-0200"},
		{Model: gorm.Model{ID: 3}, Address: "7 Crown Court, Capital City", Phone: "555-0300"},
	}
}

func agents() []models.Agent {
	return []models.Agent{
		{Model: gorm.Model{ID: 1}, Name: "Nina Alvarez", Email: "nina.alvarez@estate.example", Phone: "555-0111", OfficeID: 1},
		{Model: gorm.Model{ID: 2}, Name: "Marcus Webb", Email: "marcus.webb@estate.example", Phone: "555-0112", OfficeID: 1},
		{Model: gorm.Model{ID: 3}, Name: "Priya Shah", Email: "priya.shah@estate.example", Phone: "555-0121", OfficeID: 2},
		{Model: gorm.Model{ID: 4}, Name: "Tom Okafor", Email: "tom.okafor@estate.example", Phone: "555-0122", OfficeID: 2},
		{Model: gorm.Model{ID: 5}, Name: "Lena Fischer", Email: "lena.fischer@estate.example", Phone: "555-0131", OfficeID: 3},
		{Model: gorm.Model{ID: 6}, Name: "Diego Ramos", Email: "diego.ramos@estate.example", Phone: "555-0132", OfficeID: 3},
	}
}

func sellers() []models.Seller {
	return []models.Seller{
		{Model: gorm.Model{ID: 1}, Name: "Harriet Boone", Phone: "555-0201"},
		{Model: gorm.Model{ID: 2}, Name: "Victor Lindqvist", Phone: "555-0202"},
		{Model: gorm.Model{ID: 3}, Name: "Amara Diallo", Phone: "555-0203"},
		{Model: gorm.Model{ID: 4}, Name: "Stanley Kubicek", Phone: "555-0204"},
		{Model: gorm.Model{ID: 5}, Name: "Rosa Medina", Phone: "555-0205"},
		{Model: gorm.Model{ID: 6}, Name: "Gwen Parry", Phone: "555-0206"},
	}
}

func buyers() []models.Buyer {
	return []models.Buyer{
		{Model: gorm.Model{ID: 1}, Name: "Ian McAllister", Phone: "555-0301"},
		{Model: gorm.Model{ID: 2}, Name: "Sofia Petrova", Phone: "555-0302"},
		{Model: gorm.Model{ID: 3}, Name: "Noah Tanaka", Phone: "555-0303"},
		{Model: gorm.Model{ID: 4}, Name: "Beatrice Hall", Phone: "555-0304"},
		{Model: gorm.Model{ID: 5}, Name: "Omar Haddad", Phone: "555-0305"},
	}
}

func listings() []models.Listing {
	return []models.Listing{
		{Model: gorm.Model{ID: 1}, SellerID: 1, Address: "14 Elm Street", ListingPrice: 98000, Bedrooms: 2, Bathrooms: 1, ZipCode: "62701", DateOfListing: date(2024, time.February, 5), ListingAgentID: 1, OfficeID: 1},
		{Model: gorm.Model{ID: 2}, SellerID: 2, Address: "233 Birchwood Drive", ListingPrice: 152000, Bedrooms: 3, Bathrooms: 2, ZipCode: "62702", DateOfListing: date(2024, time.February, 19), ListingAgentID: 2, OfficeID: 1},
		{Model: gorm.Model{ID: 3}, SellerID: 3, Address: "9 Foxglove Lane", ListingPrice: 330000, Bedrooms: 4, Bathrooms: 2, ZipCode: "62550", DateOfListing: date(2024, time.March, 11), ListingAgentID: 3, OfficeID: 2},
		{Model: gorm.Model{ID: 4}, SellerID: 4, Address: "72 Harbor View", ListingPrice: 760000, Bedrooms: 5, Bathrooms: 3, ZipCode: "62551", DateOfListing: date(2024, time.April, 2), ListingAgentID: 4, OfficeID: 2},
		{Model: gorm.Model{ID: 5}, SellerID: 5, Address: "1 Pembroke Terrace", ListingPrice: 1250000, Bedrooms: 6, Bathrooms: 4, ZipCode: "62901", DateOfListing: date(2024, time.April, 23), ListingAgentID: 5, OfficeID: 3},
		{Model: gorm.Model{ID: 6}, SellerID: 6, Address: "310 Willow Bend", ListingPrice: 205000, Bedrooms: 3, Bathrooms: 2, ZipCode: "62902", DateOfListing: date(2024, time.May, 14), ListingAgentID: 6, OfficeID: 3},
		{Model: gorm.Model{ID: 7}, SellerID: 1, Address: "58 Quarry Road", ListingPrice: 445000, Bedrooms: 4, Bathrooms: 3, ZipCode: "62703", DateOfListing: date(2024, time.May, 28), ListingAgentID: 1, OfficeID: 1},
		{Model: gorm.Model{ID: 8}, SellerID: 3, Address: "402 Meridian Way", ListingPrice: 89000, Bedrooms: 1, Bathrooms: 1, ZipCode: "62552", DateOfListing: date(2024, time.June, 3), ListingAgentID: 3, OfficeID: 2},
	}
}

// sales carry the listing's agent and office, matching how a closing is
// recorded from the listing it settles.
func sales() []models.Sale {
	return []models.Sale{
		{Model: gorm.Model{ID: 1}, ListingID: 1, BuyerID: 1, SellingAgentID: 1, OfficeID: 1, SalePrice: 95000, DateOfSale: date(2024, time.June, 7)},
		{Model: gorm.Model{ID: 2}, ListingID: 2, BuyerID: 2, SellingAgentID: 2, OfficeID: 1, SalePrice: 150000, DateOfSale: date(2024, time.June, 12)},
		{Model: gorm.Model{ID: 3}, ListingID: 3, BuyerID: 3, SellingAgentID: 3, OfficeID: 2, SalePrice: 320000, DateOfSale: date(2024, time.June, 18)},
		{Model: gorm.Model{ID: 4}, ListingID: 4, BuyerID: 4, SellingAgentID: 4, OfficeID: 2, SalePrice: 750000, DateOfSale: date(2024, time.June, 21)},
		{Model: gorm.Model{ID: 5}, ListingID: 5, BuyerID: 5, SellingAgentID: 5, OfficeID: 3, SalePrice: 1225000, DateOfSale: date(2024, time.June, 27)},
	}
}

func commissions(saleRows []models.Sale) []models.Commission {
	rows := make([]models.Commission, 0, len(saleRows))
	for _, s := range saleRows {
		rows = append(rows, models.Commission{
			Model:            gorm.Model{ID: s.ID},
			SaleID:           s.ID,
			AgentID:          s.SellingAgentID,
			Amount:           s.SalePrice * CommissionRate(s.SalePrice),
			DateOfCommission: s.DateOfSale,
		})
	}
	return rows
}

// Run inserts the sample dataset in referential order: offices before
// agents, listings before sales, sales before commissions. Violating
// that order trips the foreign key constraints and surfaces as a
// referential integrity error.
func Run(db *gorm.DB) error {
	if err := insert(db, "offices", offices()); err != nil {
		return err
	}
	if err := insert(db, "agents", agents()); err != nil {
		return err
	}
	if err := insert(db, "sellers", sellers()); err != nil {
		return err
	}
	if err := insert(db, "buyers", buyers()); err != nil {
		return err
	}
	if err := insert(db, "listings", listings()); err != nil {
		return err
	}
	saleRows := sales()
	if err := insert(db, "sales", saleRows); err != nil {
		return err
	}
	if err := insert(db, "commissions", commissions(saleRows)); err != nil {
		return err
	}
	return markListingsSold(db, saleRows)
}

func insert[T any](db *gorm.DB, table string, rows []T) error {
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("insert %s: %w", table, database.TranslateConstraint(err))
	}
	return nil
}

func markListingsSold(db *gorm.DB, saleRows []models.Sale) error {
	ids := make([]uint, 0, len(saleRows))
	for _, s := range saleRows {
		ids = append(ids, s.ListingID)
	}
	err := db.Model(&models.Listing{}).Where("id IN ?", ids).Update("is_sold", true).Error
	if err != nil {
		return fmt.Errorf("mark listings sold: %w", err)
	}
	return nil
}
