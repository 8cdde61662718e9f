package models

import (
	"time"

	"gorm.io/gorm"
)

// Sale represents a closed purchase of a listing. The selling agent and
// office are carried over from the listing at the time of sale.
type Sale struct {
	gorm.Model
	ListingID      uint      `gorm:"not null"`
	Listing        *Listing  `gorm:"foreignKey:ListingID"`
	BuyerID        uint      `gorm:"not null"`
	Buyer          *Buyer    `gorm:"foreignKey:BuyerID"`
	SellingAgentID uint      `gorm:"not null;index"`
	SellingAgent   *Agent    `gorm:"foreignKey:SellingAgentID"`
	OfficeID       uint      `gorm:"not null;index"`
	Office         *Office   `gorm:"foreignKey:OfficeID"`
	SalePrice      float64   `gorm:"not null;check:sale_price >= 0"`
	DateOfSale     time.Time `gorm:"not null;index"`
}
