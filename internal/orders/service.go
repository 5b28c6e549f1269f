package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motoshophq/motoshop-backend/internal/quotes"
	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/enums"
	pkgerrors "github.com/motoshophq/motoshop-backend/pkg/errors"
	"github.com/motoshophq/motoshop-backend/pkg/pagination"
	"github.com/motoshophq/motoshop-backend/pkg/pricing"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the behavior needed by the orders controller.
type Service interface {
	Convert(ctx context.Context, ownerID, quoteID uuid.UUID) (*OrderDTO, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*OrderDTO, error)
	List(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*ListResponse, error)
}

type service struct {
	tx     txRunner
	repo   Repository
	quotes quotes.Repository
}

// ServiceParams bundles the dependencies required to build an orders service.
type ServiceParams struct {
	Tx     txRunner
	Repo   Repository
	Quotes quotes.Repository
}

// NewService constructs an orders service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Tx == nil {
		return nil, fmt.Errorf("tx runner is required")
	}
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if params.Quotes == nil {
		return nil, fmt.Errorf("quotes repository is required")
	}
	return &service{
		tx:     params.Tx,
		repo:   params.Repo,
		quotes: params.Quotes,
	}, nil
}

// Convert turns a draft quote into an order exactly once. The status flip is
// a conditional update on status='draft', so of two racing conversions only
// one inserts an order; the loser gets a state conflict. Totals are always
// recomputed from the stored items, never trusted from the header snapshot.
func (s *service) Convert(ctx context.Context, ownerID, quoteID uuid.UUID) (*OrderDTO, error) {
	if quoteID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote id is required")
	}

	var created *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		quoteRepo := s.quotes.WithTx(tx)
		orderRepo := s.repo.WithTx(tx)

		quote, err := quoteRepo.FindByID(ctx, ownerID, quoteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load quote")
		}
		if len(quote.Items) == 0 {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "quote has no items")
		}

		won, err := quoteRepo.MarkConverted(ctx, ownerID, quoteID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark quote converted")
		}
		if !won {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "quote already converted")
		}

		lineTotals := make([]int, 0, len(quote.Items))
		for i := range quote.Items {
			item := &quote.Items[i]
			lineTotals = append(lineTotals, pricing.LineTotal(item.Quantity, item.UnitPriceCents))
		}
		totals := pricing.Compute(lineTotals)

		order := &models.Order{
			OwnerID:       ownerID,
			CustomerID:    quote.CustomerID,
			QuoteID:       quote.ID,
			Status:        enums.OrderStatusOpen,
			SubtotalCents: totals.SubtotalCents,
			TaxCents:      totals.TaxCents,
			TotalCents:    totals.TotalCents,
		}
		if _, err := orderRepo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return FromModel(created), nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return FromModel(order), nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*ListResponse, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	rows, err := s.repo.List(ctx, ownerID, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	page, hasMore := pagination.TrimPage(rows, params.Limit)
	out := make([]OrderDTO, 0, len(page))
	for i := range page {
		out = append(out, *FromModel(&page[i]))
	}

	resp := &ListResponse{Orders: out}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		resp.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return resp, nil
}
