package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/enums"
)

// ProductDTO is the transport shape for stocked parts.
type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	SKU         *string   `json:"sku,omitempty"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PriceCents  int       `json:"price_cents"`
	CostCents   *int      `json:"cost_cents,omitempty"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OfferingDTO is the transport shape for labor items.
type OfferingDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	RateCents   int       `json:"rate_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	SKU         *string `json:"sku,omitempty"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	PriceCents  int     `json:"price_cents" validate:"gte=0"`
	CostCents   *int    `json:"cost_cents,omitempty" validate:"omitempty,gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest is the partial-update payload for a product.
type UpdateProductRequest struct {
	SKU         *string `json:"sku,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int    `json:"price_cents,omitempty" validate:"omitempty,gte=0"`
	CostCents   *int    `json:"cost_cents,omitempty" validate:"omitempty,gte=0"`
	Stock       *int    `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

// CreateOfferingRequest is the payload for creating a labor item.
type CreateOfferingRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	RateCents   int     `json:"rate_cents" validate:"gte=0"`
}

// UpdateOfferingRequest is the partial-update payload for a labor item.
type UpdateOfferingRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	RateCents   *int    `json:"rate_cents,omitempty" validate:"omitempty,gte=0"`
}

// ProductListResponse wraps a page of products.
type ProductListResponse struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// OfferingListResponse wraps a page of labor items.
type OfferingListResponse struct {
	Services   []OfferingDTO `json:"services"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

// LineItemTemplate is one selectable entry in the quote editor's combined
/// catalog: products first, then labor items.
type LineItemTemplate struct {
	ID             uuid.UUID         `json:"id"`
	Kind           enums.CatalogKind `json:"kind"`
	Label          string            `json:"label"`
	UnitPriceCents int               `json:"unit_price_cents"`
}

func productFromModel(m *models.Product) *ProductDTO {
	if m == nil {
		return nil
	}
	return &ProductDTO{
		ID:          m.ID,
		SKU:         m.SKU,
		Name:        m.Name,
		Description: m.Description,
		PriceCents:  m.PriceCents,
		CostCents:   m.CostCents,
		Stock:       m.Stock,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func offeringFromModel(m *models.ServiceOffering) *OfferingDTO {
	if m == nil {
		return nil
	}
	return &OfferingDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		RateCents:   m.RateCents,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
