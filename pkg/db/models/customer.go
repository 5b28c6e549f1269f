package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a shop customer together with the bike they usually bring in.
type Customer struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID      uuid.UUID `gorm:"column:owner_id;type:uuid;not null;index"`
	FullName     string    `gorm:"column:full_name;not null"`
	Email        *string   `gorm:"column:email"`
	Phone        *string   `gorm:"column:phone"`
	VehicleMake  *string   `gorm:"column:vehicle_make"`
	VehicleModel *string   `gorm:"column:vehicle_model"`
	VehicleYear  *int      `gorm:"column:vehicle_year"`
	Notes        *string   `gorm:"column:notes"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
