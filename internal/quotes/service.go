package quotes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/enums"
	pkgerrors "github.com/motoshophq/motoshop-backend/pkg/errors"
	"github.com/motoshophq/motoshop-backend/pkg/pagination"
	"github.com/motoshophq/motoshop-backend/pkg/pdf"
	"github.com/motoshophq/motoshop-backend/pkg/pricing"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type customerLoader interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Customer, error)
}

// Service defines the behavior needed by the quotes controller.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateQuoteRequest) (*QuoteDTO, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*QuoteDTO, error)
	List(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*ListResponse, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	RenderPDF(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error)
}

type service struct {
	tx        txRunner
	repo      Repository
	customers customerLoader
}

// ServiceParams bundles the dependencies required to build a quotes service.
type ServiceParams struct {
	Tx        txRunner
	Repo      Repository
	Customers customerLoader
}

// NewService constructs a quotes service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Tx == nil {
		return nil, fmt.Errorf("tx runner is required")
	}
	if params.Repo == nil {
		return nil, fmt.Errorf("quotes repository is required")
	}
	if params.Customers == nil {
		return nil, fmt.Errorf("customer loader is required")
	}
	return &service{
		tx:        params.Tx,
		repo:      params.Repo,
		customers: params.Customers,
	}, nil
}

// Create persists a quote header and its items atomically. Line totals and
// quote totals are always recomputed server-side from quantity and price.
func (s *service) Create(ctx context.Context, ownerID uuid.UUID, req CreateQuoteRequest) (*QuoteDTO, error) {
	if req.CustomerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer_id is required")
	}
	if len(req.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote needs at least one item")
	}

	if _, err := s.customers.FindByID(ctx, ownerID, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load customer")
	}

	items := make([]models.QuoteItem, 0, len(req.Items))
	lineTotals := make([]int, 0, len(req.Items))
	for i, input := range req.Items {
		if !input.Kind.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: invalid kind", i))
		}
		description := strings.TrimSpace(input.Description)
		if description == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: description is required", i))
		}
		if input.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: quantity must be at least 1", i))
		}
		if input.UnitPriceCents < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: unit price cannot be negative", i))
		}

		lineTotal := pricing.LineTotal(input.Quantity, input.UnitPriceCents)
		lineTotals = append(lineTotals, lineTotal)
		items = append(items, models.QuoteItem{
			OwnerID:        ownerID,
			ItemKind:       input.Kind,
			ItemID:         input.ItemID,
			Description:    description,
			Quantity:       input.Quantity,
			UnitPriceCents: input.UnitPriceCents,
			LineTotalCents: lineTotal,
			Position:       i,
		})
	}

	totals := pricing.Compute(lineTotals)
	quote := &models.Quote{
		OwnerID:       ownerID,
		CustomerID:    req.CustomerID,
		Status:        enums.QuoteStatusDraft,
		SubtotalCents: totals.SubtotalCents,
		TaxCents:      totals.TaxCents,
		TotalCents:    totals.TotalCents,
		Items:         items,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.repo.WithTx(tx).Create(ctx, quote); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create quote")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return FromModel(quote), nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (*QuoteDTO, error) {
	quote, err := s.loadQuote(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return FromModel(quote), nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*ListResponse, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	rows, err := s.repo.List(ctx, ownerID, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list quotes")
	}

	page, hasMore := pagination.TrimPage(rows, params.Limit)
	out := make([]QuoteDTO, 0, len(page))
	for i := range page {
		out = append(out, *FromModel(&page[i]))
	}

	resp := &ListResponse{Quotes: out}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		resp.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return resp, nil
}

// Delete removes a draft quote. Converted quotes are kept because orders
// reference them.
func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	quote, err := s.loadQuote(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if quote.Status != enums.QuoteStatusDraft {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "only draft quotes can be deleted")
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete quote")
	}
	return nil
}

// RenderPDF produces the printable document for a quote.
func (s *service) RenderPDF(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error) {
	quote, err := s.loadQuote(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	doc := pdf.QuoteDocument{
		QuoteID:       quote.ID.String(),
		Status:        quote.Status.String(),
		CreatedAt:     quote.CreatedAt,
		SubtotalCents: quote.SubtotalCents,
		TaxCents:      quote.TaxCents,
		TotalCents:    quote.TotalCents,
	}
	if quote.Customer != nil {
		doc.CustomerName = quote.Customer.FullName
		if quote.Customer.Phone != nil {
			doc.CustomerPhone = *quote.Customer.Phone
		}
		doc.VehicleLabel = vehicleLabel(quote.Customer)
	}
	for i := range quote.Items {
		item := &quote.Items[i]
		doc.Lines = append(doc.Lines, pdf.QuoteLine{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			LineTotalCents: item.LineTotalCents,
		})
	}

	rendered, err := pdf.RenderQuote(doc)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render quote pdf")
	}
	return rendered, nil
}

func (s *service) loadQuote(ctx context.Context, ownerID, id uuid.UUID) (*models.Quote, error) {
	quote, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load quote")
	}
	return quote, nil
}

func vehicleLabel(c *models.Customer) string {
	parts := make([]string, 0, 3)
	if c.VehicleYear != nil {
		parts = append(parts, fmt.Sprintf("%d", *c.VehicleYear))
	}
	if c.VehicleMake != nil && *c.VehicleMake != "" {
		parts = append(parts, *c.VehicleMake)
	}
	if c.VehicleModel != nil && *c.VehicleModel != "" {
		parts = append(parts, *c.VehicleModel)
	}
	return strings.Join(parts, " ")
}
