package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motoshophq/motoshop-backend/internal/quotes"
	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/enums"
	pkgerrors "github.com/motoshophq/motoshop-backend/pkg/errors"
	"github.com/motoshophq/motoshop-backend/pkg/pagination"
)

func TestServiceConvertCreatesOrder(t *testing.T) {
	owner := uuid.New()
	quoteRepo := newStubQuoteRepo()
	quote := quoteRepo.seedWithItems(owner, []models.QuoteItem{
		{Quantity: 1, UnitPriceCents: 8900},
		{Quantity: 2, UnitPriceCents: 5000},
	})
	orderRepo := newStubOrderRepo()
	svc := mustOrderService(t, orderRepo, quoteRepo)

	dto, err := svc.Convert(context.Background(), owner, quote.ID)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if dto.QuoteID != quote.ID {
		t.Fatalf("expected order referencing quote %s, got %s", quote.ID, dto.QuoteID)
	}
	if dto.Status != enums.OrderStatusOpen {
		t.Fatalf("expected open order, got %s", dto.Status)
	}
	if dto.SubtotalCents != 18900 || dto.TaxCents != 1890 || dto.TotalCents != 20790 {
		t.Fatalf("unexpected totals: %+v", dto)
	}
	if quoteRepo.rows[quote.ID].Status != enums.QuoteStatusConverted {
		t.Fatalf("expected quote marked converted")
	}
	if len(orderRepo.rows) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orderRepo.rows))
	}
}

func TestServiceConvertRecomputesTotalsFromItems(t *testing.T) {
	owner := uuid.New()
	quoteRepo := newStubQuoteRepo()
	quote := quoteRepo.seedWithItems(owner, []models.QuoteItem{
		{Quantity: 3, UnitPriceCents: 35, LineTotalCents: 9999},
	})
	// header snapshot is stale on purpose
	quote.SubtotalCents = 1
	quote.TaxCents = 2
	quote.TotalCents = 3

	svc := mustOrderService(t, newStubOrderRepo(), quoteRepo)

	dto, err := svc.Convert(context.Background(), owner, quote.ID)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if dto.SubtotalCents != 105 || dto.TaxCents != 11 || dto.TotalCents != 116 {
		t.Fatalf("expected totals recomputed from items, got %+v", dto)
	}
}

func TestServiceConvertSecondCallConflicts(t *testing.T) {
	owner := uuid.New()
	quoteRepo := newStubQuoteRepo()
	quote := quoteRepo.seedWithItems(owner, []models.QuoteItem{
		{Quantity: 1, UnitPriceCents: 1000},
	})
	orderRepo := newStubOrderRepo()
	svc := mustOrderService(t, orderRepo, quoteRepo)

	if _, err := svc.Convert(context.Background(), owner, quote.ID); err != nil {
		t.Fatalf("first convert: %v", err)
	}

	_, err := svc.Convert(context.Background(), owner, quote.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict on second convert, got %v", err)
	}

	if len(orderRepo.rows) != 1 {
		t.Fatalf("expected exactly 1 order after double convert, got %d", len(orderRepo.rows))
	}
}

func TestServiceConvertUnknownQuote(t *testing.T) {
	svc := mustOrderService(t, newStubOrderRepo(), newStubQuoteRepo())

	_, err := svc.Convert(context.Background(), uuid.New(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceConvertScopedToOwner(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	quoteRepo := newStubQuoteRepo()
	quote := quoteRepo.seedWithItems(owner, []models.QuoteItem{
		{Quantity: 1, UnitPriceCents: 1000},
	})

	svc := mustOrderService(t, newStubOrderRepo(), quoteRepo)

	_, err := svc.Convert(context.Background(), other, quote.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for other owner, got %v", err)
	}
	if quoteRepo.rows[quote.ID].Status != enums.QuoteStatusDraft {
		t.Fatalf("expected quote untouched")
	}
}

func TestServiceConvertEmptyQuote(t *testing.T) {
	owner := uuid.New()
	quoteRepo := newStubQuoteRepo()
	quote := quoteRepo.seedWithItems(owner, nil)

	svc := mustOrderService(t, newStubOrderRepo(), quoteRepo)

	_, err := svc.Convert(context.Background(), owner, quote.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict for empty quote, got %v", err)
	}
}

func mustOrderService(t *testing.T, repo Repository, quoteRepo quotes.Repository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Tx:     stubTxRunner{},
		Repo:   repo,
		Quotes: quoteRepo,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubOrderRepo struct {
	rows map[uuid.UUID]*models.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{rows: map[uuid.UUID]*models.Order{}}
}

func (s *stubOrderRepo) WithTx(*gorm.DB) Repository {
	return s
}

func (s *stubOrderRepo) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now().UTC()
	s.rows[order.ID] = order
	return order, nil
}

func (s *stubOrderRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*models.Order, error) {
	row := s.rows[id]
	if row == nil || row.OwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (s *stubOrderRepo) List(_ context.Context, ownerID uuid.UUID, _ *pagination.Cursor, limit int) ([]models.Order, error) {
	out := make([]models.Order, 0)
	for _, row := range s.rows {
		if row.OwnerID == ownerID && len(out) < limit {
			out = append(out, *row)
		}
	}
	return out, nil
}

type stubQuoteRepo struct {
	rows map[uuid.UUID]*models.Quote
}

func newStubQuoteRepo() *stubQuoteRepo {
	return &stubQuoteRepo{rows: map[uuid.UUID]*models.Quote{}}
}

func (s *stubQuoteRepo) seedWithItems(ownerID uuid.UUID, items []models.QuoteItem) *models.Quote {
	quote := &models.Quote{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		CustomerID: uuid.New(),
		Status:     enums.QuoteStatusDraft,
		Items:      items,
		CreatedAt:  time.Now().UTC(),
	}
	s.rows[quote.ID] = quote
	return quote
}

func (s *stubQuoteRepo) WithTx(*gorm.DB) quotes.Repository {
	return s
}

func (s *stubQuoteRepo) Create(_ context.Context, quote *models.Quote) (*models.Quote, error) {
	s.rows[quote.ID] = quote
	return quote, nil
}

func (s *stubQuoteRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*models.Quote, error) {
	row := s.rows[id]
	if row == nil || row.OwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (s *stubQuoteRepo) List(_ context.Context, ownerID uuid.UUID, _ *pagination.Cursor, limit int) ([]models.Quote, error) {
	out := make([]models.Quote, 0)
	for _, row := range s.rows {
		if row.OwnerID == ownerID && len(out) < limit {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *stubQuoteRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	row := s.rows[id]
	if row != nil && row.OwnerID == ownerID {
		delete(s.rows, id)
	}
	return nil
}

func (s *stubQuoteRepo) MarkConverted(_ context.Context, ownerID, id uuid.UUID) (bool, error) {
	row := s.rows[id]
	if row == nil || row.OwnerID != ownerID || row.Status != enums.QuoteStatusDraft {
		return false, nil
	}
	row.Status = enums.QuoteStatusConverted
	return true, nil
}
