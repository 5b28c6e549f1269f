package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/internal/customers"
	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/enums"
)

// OrderDTO is the transport shape for an order.
type OrderDTO struct {
	ID            uuid.UUID              `json:"id"`
	CustomerID    uuid.UUID              `json:"customer_id"`
	Customer      *customers.CustomerDTO `json:"customer,omitempty"`
	QuoteID       uuid.UUID              `json:"quote_id"`
	Status        enums.OrderStatus      `json:"status"`
	SubtotalCents int                    `json:"subtotal_cents"`
	TaxCents      int                    `json:"tax_cents"`
	TotalCents    int                    `json:"total_cents"`
	CreatedAt     time.Time              `json:"created_at"`
}

// ListResponse wraps a page of orders with the cursor for the next page.
type ListResponse struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

func FromModel(m *models.Order) *OrderDTO {
	if m == nil {
		return nil
	}
	return &OrderDTO{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		Customer:      customers.FromModel(m.Customer),
		QuoteID:       m.QuoteID,
		Status:        m.Status,
		SubtotalCents: m.SubtotalCents,
		TaxCents:      m.TaxCents,
		TotalCents:    m.TotalCents,
		CreatedAt:     m.CreatedAt,
	}
}
