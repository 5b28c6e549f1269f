package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/pkg/enums"
)

// Quote is the persisted quote header. Subtotal/tax/total are snapshots taken
// when the quote was saved; conversion recomputes them from the items.
type Quote struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID       uuid.UUID         `gorm:"column:owner_id;type:uuid;not null;index"`
	CustomerID    uuid.UUID         `gorm:"column:customer_id;type:uuid;not null"`
	Status        enums.QuoteStatus `gorm:"column:status;type:text;not null;default:'draft'"`
	SubtotalCents int               `gorm:"column:subtotal_cents;not null"`
	TaxCents      int               `gorm:"column:tax_cents;not null"`
	TotalCents    int               `gorm:"column:total_cents;not null"`
	Items         []QuoteItem       `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
	Customer      *Customer         `gorm:"foreignKey:CustomerID"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
