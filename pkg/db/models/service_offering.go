package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceOffering is a labor item (tune-up, tire change) billed at a flat rate.
type ServiceOffering struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID     uuid.UUID `gorm:"column:owner_id;type:uuid;not null;index"`
	Name        string    `gorm:"column:name;not null"`
	Description *string   `gorm:"column:description"`
	RateCents   int       `gorm:"column:rate_cents;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the original schema's table name.
func (ServiceOffering) TableName() string {
	return "services"
}
