package models

import "gorm.io/gorm"

// Agent represents a real estate agent attached to an office
type Agent struct {
	gorm.Model
	Name     string  `gorm:"not null"`
	Email    string  `gorm:"not null"`
	Phone    string  `gorm:"not null"`
	OfficeID uint    `gorm:"not null;index"`
	Office   *Office `gorm:"foreignKey:OfficeID"`
}
