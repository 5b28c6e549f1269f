package customers

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
)

// CustomerDTO is the transport shape for customer rows.
type CustomerDTO struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	VehicleMake  *string   `json:"vehicle_make,omitempty"`
	VehicleModel *string   `json:"vehicle_model,omitempty"`
	VehicleYear  *int      `json:"vehicle_year,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCustomerRequest is the payload for creating a customer.
type CreateCustomerRequest struct {
	FullName     string  `json:"full_name" validate:"required"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
	VehicleMake  *string `json:"vehicle_make,omitempty"`
	VehicleModel *string `json:"vehicle_model,omitempty"`
	VehicleYear  *int    `json:"vehicle_year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	Notes        *string `json:"notes,omitempty"`
}

// UpdateCustomerRequest is the payload for updating a customer. Absent fields
// are left untouched.
type UpdateCustomerRequest struct {
	FullName     *string `json:"full_name,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
	VehicleMake  *string `json:"vehicle_make,omitempty"`
	VehicleModel *string `json:"vehicle_model,omitempty"`
	VehicleYear  *int    `json:"vehicle_year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	Notes        *string `json:"notes,omitempty"`
}

// ListResponse wraps a page of customers with the cursor for the next page.
type ListResponse struct {
	Customers  []CustomerDTO `json:"customers"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

// VehicleLabel renders the customer's vehicle as a single display string.
func (c CustomerDTO) VehicleLabel() string {
	parts := make([]string, 0, 3)
	if c.VehicleYear != nil {
		parts = append(parts, strconv.Itoa(*c.VehicleYear))
	}
	if c.VehicleMake != nil && *c.VehicleMake != "" {
		parts = append(parts, *c.VehicleMake)
	}
	if c.VehicleModel != nil && *c.VehicleModel != "" {
		parts = append(parts, *c.VehicleModel)
	}
	return strings.Join(parts, " ")
}

func FromModel(m *models.Customer) *CustomerDTO {
	if m == nil {
		return nil
	}
	return &CustomerDTO{
		ID:           m.ID,
		FullName:     m.FullName,
		Email:        m.Email,
		Phone:        m.Phone,
		VehicleMake:  m.VehicleMake,
		VehicleModel: m.VehicleModel,
		VehicleYear:  m.VehicleYear,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
