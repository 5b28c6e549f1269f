package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/pkg/enums"
)

// Order is created once per quote conversion and never mutated afterwards.
// QuoteID is a back-reference, not ownership.
type Order struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID       uuid.UUID         `gorm:"column:owner_id;type:uuid;not null;index"`
	CustomerID    uuid.UUID         `gorm:"column:customer_id;type:uuid;not null"`
	QuoteID       uuid.UUID         `gorm:"column:quote_id;type:uuid;not null"`
	Status        enums.OrderStatus `gorm:"column:status;type:text;not null;default:'open'"`
	SubtotalCents int               `gorm:"column:subtotal_cents;not null"`
	TaxCents      int               `gorm:"column:tax_cents;not null"`
	TotalCents    int               `gorm:"column:total_cents;not null"`
	Customer      *Customer         `gorm:"foreignKey:CustomerID"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
}
