package models

import (
	"time"

	"gorm.io/gorm"
)

type Cigar struct {
	gorm.Model
	Name          string     `gorm:"not null" json:"name"`
	Vitola        string     `json:"vitola,omitempty"`
	Country       string     `json:"country,omitempty"`
	PurchasePrice *float64   `json:"purchase_price,omitempty"`
	AcquiredOn    *time.Time `json:"acquired_on,omitempty"`
	Quantity      int        `gorm:"not null;default:1" json:"quantity"`
	PhotoURL      string     `json:"photo_url,omitempty"`
	Tastings      []Tasting  `gorm:"foreignKey:CigarID" json:"-"`
}
