package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a sellable item owned by exactly one store.
type Product struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	StoreID     uuid.UUID `json:"store_id" gorm:"type:uuid;index;not null"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	// PriceCents stores the unit price in minor units. Never negative.
	PriceCents int64  `json:"price_cents" gorm:"type:bigint;not null;default:0"`
	Category   string `json:"category,omitempty" gorm:"type:text;index"`
	ImageURL   string `json:"image_url,omitempty" gorm:"type:text"`
	Stock      int    `json:"stock" gorm:"not null;default:0"`
	Active     bool   `json:"active" gorm:"default:true;index"`
	// AIGenerated marks products whose content came from the generation API
	// rather than manual entry.
	AIGenerated bool           `json:"ai_generated" gorm:"default:false;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
