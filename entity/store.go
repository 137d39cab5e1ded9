package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StoreTemplate enumerates the built-in storefront templates.
type StoreTemplate string

const (
	TemplateClassic  StoreTemplate = "classic"
	TemplateModern   StoreTemplate = "modern"
	TemplateMinimal  StoreTemplate = "minimal"
	TemplateBoutique StoreTemplate = "boutique"
)

// Store is a tenant's catalog container with its own branding and settings.
type Store struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string        `json:"name" gorm:"type:text;not null"`
	Category    string        `json:"category,omitempty" gorm:"type:text;index"`
	Description string        `json:"description,omitempty" gorm:"type:text"`
	Template    StoreTemplate `json:"template" gorm:"type:text;not null;default:'classic'"`
	// CustomDomain is the optional domain the published storefront is served from.
	CustomDomain *string `json:"custom_domain,omitempty" gorm:"type:text;uniqueIndex;default:null"`
	Active       bool    `json:"active" gorm:"default:true;index"`
	// Settings holds storefront configuration the backend treats as opaque
	// (theme colors, currency, social links, ...).
	Settings  datatypes.JSONMap `json:"settings,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `json:"-" gorm:"index"`
}
