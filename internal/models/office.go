package models

import "gorm.io/gorm"

// Office represents a real estate office branch
type Office struct {
	gorm.Model
	Address string `gorm:"not null"`
	Phone   string `gorm:"not null"`
}
