package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a stocked part or accessory sold over the counter or on quotes.
type Product struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID     uuid.UUID `gorm:"column:owner_id;type:uuid;not null;index"`
	SKU         *string   `gorm:"column:sku"`
	Name        string    `gorm:"column:name;not null"`
	Description *string   `gorm:"column:description"`
	PriceCents  int       `gorm:"column:price_cents;not null"`
	CostCents   *int      `gorm:"column:cost_cents"`
	Stock       int       `gorm:"column:stock;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
