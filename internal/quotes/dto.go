package quotes

import (
	"time"

	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/internal/customers"
	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/enums"
)

// QuoteItemInput is one line submitted on a quote save. Quantity and price
// are validated server-side and line totals are always recomputed.
type QuoteItemInput struct {
	Kind           enums.CatalogKind `json:"kind" validate:"required"`
	ItemID         *uuid.UUID        `json:"item_id,omitempty"`
	Description    string            `json:"description" validate:"required"`
	Quantity       int               `json:"quantity" validate:"gte=1"`
	UnitPriceCents int               `json:"unit_price_cents" validate:"gte=0"`
}

// CreateQuoteRequest is the payload for persisting a quote.
type CreateQuoteRequest struct {
	CustomerID uuid.UUID        `json:"customer_id" validate:"required"`
	Items      []QuoteItemInput `json:"items" validate:"required,min=1,dive"`
}

// QuoteItemDTO is the transport shape for a saved quote line.
type QuoteItemDTO struct {
	ID             uuid.UUID         `json:"id"`
	Kind           enums.CatalogKind `json:"kind"`
	ItemID         *uuid.UUID        `json:"item_id,omitempty"`
	Description    string            `json:"description"`
	Quantity       int               `json:"quantity"`
	UnitPriceCents int               `json:"unit_price_cents"`
	LineTotalCents int               `json:"line_total_cents"`
	Position       int               `json:"position"`
}

// QuoteDTO is the transport shape for a quote header with its items.
type QuoteDTO struct {
	ID            uuid.UUID              `json:"id"`
	CustomerID    uuid.UUID              `json:"customer_id"`
	Customer      *customers.CustomerDTO `json:"customer,omitempty"`
	Status        enums.QuoteStatus      `json:"status"`
	SubtotalCents int                    `json:"subtotal_cents"`
	TaxCents      int                    `json:"tax_cents"`
	TotalCents    int                    `json:"total_cents"`
	Items         []QuoteItemDTO         `json:"items,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// ListResponse wraps a page of quotes with the cursor for the next page.
type ListResponse struct {
	Quotes     []QuoteDTO `json:"quotes"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

func itemFromModel(m *models.QuoteItem) QuoteItemDTO {
	return QuoteItemDTO{
		ID:             m.ID,
		Kind:           m.ItemKind,
		ItemID:         m.ItemID,
		Description:    m.Description,
		Quantity:       m.Quantity,
		UnitPriceCents: m.UnitPriceCents,
		LineTotalCents: m.LineTotalCents,
		Position:       m.Position,
	}
}

func FromModel(m *models.Quote) *QuoteDTO {
	if m == nil {
		return nil
	}

	items := make([]QuoteItemDTO, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, itemFromModel(&m.Items[i]))
	}

	return &QuoteDTO{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		Customer:      customers.FromModel(m.Customer),
		Status:        m.Status,
		SubtotalCents: m.SubtotalCents,
		TaxCents:      m.TaxCents,
		TotalCents:    m.TotalCents,
		Items:         items,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
