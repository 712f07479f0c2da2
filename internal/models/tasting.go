package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TastingInProgress = "in_progress"
	TastingFinalized  = "finalized"
)

const (
	RepurchaseYes            = "yes"
	RepurchaseNo             = "no"
	RepurchasePriceDependent = "price_dependent"
)

// Tasting is one evaluation session of a single cigar. It is created
// in_progress and moves to finalized exactly once; the finalize-only
// fields stay unset until then.
type Tasting struct {
	gorm.Model
	CigarID   uint      `gorm:"not null;index" json:"cigar_id"`
	Cigar     Cigar     `gorm:"foreignKey:CigarID" json:"cigar,omitempty"`
	StartedAt time.Time `gorm:"autoCreateTime" json:"started_at"`

	Setting      string `json:"setting,omitempty"`
	Cut          string `json:"cut,omitempty"`
	Draw         string `json:"draw,omitempty"`
	WrapperNotes string `json:"wrapper_notes,omitempty"`

	DurationMinutes   *int   `json:"duration_minutes,omitempty"`
	Score             *int   `json:"score,omitempty"`
	ConstructionNotes string `json:"construction_notes,omitempty"`
	RepurchaseIntent  string `json:"repurchase_intent,omitempty"`

	FlavorTobacco   bool `gorm:"not null;default:false" json:"flavor_tobacco"`
	FlavorPepper    bool `gorm:"not null;default:false" json:"flavor_pepper"`
	FlavorEarthy    bool `gorm:"not null;default:false" json:"flavor_earthy"`
	FlavorFloral    bool `gorm:"not null;default:false" json:"flavor_floral"`
	FlavorCoffee    bool `gorm:"not null;default:false" json:"flavor_coffee"`
	FlavorFruit     bool `gorm:"not null;default:false" json:"flavor_fruit"`
	FlavorChocolate bool `gorm:"not null;default:false" json:"flavor_chocolate"`
	FlavorNutty     bool `gorm:"not null;default:false" json:"flavor_nutty"`
	FlavorWoody     bool `gorm:"not null;default:false" json:"flavor_woody"`

	Notes        string `json:"notes,omitempty"`
	BandNote     string `json:"band_note,omitempty"`
	BandPhotoURL string `json:"band_photo_url,omitempty"`

	Status      string     `gorm:"not null;default:in_progress;index" json:"status"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
}
