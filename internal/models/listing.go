package models

import (
	"time"

	"gorm.io/gorm"
)

// Listing represents a property put on the market by a seller
type Listing struct {
	gorm.Model
	SellerID       uint      `gorm:"not null"`
	Seller         *Seller   `gorm:"foreignKey:SellerID"`
	Address        string    `gorm:"not null"`
	ListingPrice   float64   `gorm:"not null;check:listing_price >= 0"`
	Bedrooms       int       `gorm:"not null"`
	Bathrooms      int       `gorm:"not null"`
	ZipCode        string    `gorm:"not null"`
	DateOfListing  time.Time `gorm:"not null;index"`
	ListingAgentID uint      `gorm:"not null;index"`
	ListingAgent   *Agent    `gorm:"foreignKey:ListingAgentID"`
	OfficeID       uint      `gorm:"not null;index"`
	Office         *Office   `gorm:"foreignKey:OfficeID"`
	IsSold         bool      `gorm:"not null;default:false"`
}
