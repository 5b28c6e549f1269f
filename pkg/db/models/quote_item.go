package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/pkg/enums"
)

// QuoteItem is one persisted line of a quote. Rows are immutable once saved;
// editing happens in memory and a new save replaces the set.
type QuoteItem struct {
	ID             uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	QuoteID        uuid.UUID         `gorm:"column:quote_id;type:uuid;not null;index"`
	OwnerID        uuid.UUID         `gorm:"column:owner_id;type:uuid;not null"`
	ItemKind       enums.CatalogKind `gorm:"column:item_kind;type:text;not null"`
	ItemID         *uuid.UUID        `gorm:"column:item_id;type:uuid"`
	Description    string            `gorm:"column:description;not null"`
	Quantity       int               `gorm:"column:quantity;not null"`
	UnitPriceCents int               `gorm:"column:unit_price_cents;not null"`
	LineTotalCents int               `gorm:"column:line_total_cents;not null"`
	Position       int               `gorm:"column:position;not null;default:0"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime"`
}
