package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/enums"
	pkgerrors "github.com/motoshophq/motoshop-backend/pkg/errors"
	"github.com/motoshophq/motoshop-backend/pkg/pagination"
)

func TestTemplatesProductsBeforeServices(t *testing.T) {
	owner := uuid.New()
	products := newStubProductRepo()
	offerings := newStubOfferingRepo()

	products.add(owner, "Chain Kit", 8900)
	products.add(owner, "Brake Pads", 4500)
	offerings.add(owner, "Tire Change", 3500)

	svc := mustService(t, products, offerings)

	templates, err := svc.Templates(context.Background(), owner)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(templates) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(templates))
	}

	if templates[0].Kind != enums.CatalogKindProduct || templates[1].Kind != enums.CatalogKindProduct {
		t.Fatalf("expected products first, got %+v", templates)
	}
	if templates[2].Kind != enums.CatalogKindService {
		t.Fatalf("expected service last, got %s", templates[2].Kind)
	}
	if templates[2].Label != "Tire Change" || templates[2].UnitPriceCents != 3500 {
		t.Fatalf("expected service template with rate, got %+v", templates[2])
	}
}

func TestTemplatesScopedToOwner(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	products := newStubProductRepo()
	offerings := newStubOfferingRepo()

	products.add(owner, "Chain Kit", 8900)
	products.add(other, "Other Part", 100)

	svc := mustService(t, products, offerings)

	templates, err := svc.Templates(context.Background(), owner)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(templates))
	}
	if templates[0].Label != "Chain Kit" {
		t.Fatalf("expected owner's product, got %q", templates[0].Label)
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc := mustService(t, newStubProductRepo(), newStubOfferingRepo())

	_, err := svc.CreateProduct(context.Background(), uuid.New(), CreateProductRequest{Name: "  "})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = svc.CreateProduct(context.Background(), uuid.New(), CreateProductRequest{
		Name:       "Oil Filter",
		PriceCents: -5,
	})
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for negative price, got %v", err)
	}
}

func TestUpdateOfferingPartial(t *testing.T) {
	owner := uuid.New()
	offerings := newStubOfferingRepo()
	created := offerings.add(owner, "Tune Up", 12000)

	svc := mustService(t, newStubProductRepo(), offerings)

	rate := 15000
	dto, err := svc.UpdateOffering(context.Background(), owner, created.ID, UpdateOfferingRequest{
		RateCents: &rate,
	})
	if err != nil {
		t.Fatalf("update offering: %v", err)
	}
	if dto.RateCents != 15000 {
		t.Fatalf("expected rate 15000, got %d", dto.RateCents)
	}
	if dto.Name != "Tune Up" {
		t.Fatalf("expected name untouched, got %q", dto.Name)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := mustService(t, newStubProductRepo(), newStubOfferingRepo())

	err := svc.DeleteProduct(context.Background(), uuid.New(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func mustService(t *testing.T, products productRepository, offerings offeringRepository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Products: products, Offerings: offerings})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

type stubProductRepo struct {
	rows  map[uuid.UUID]*models.Product
	order []uuid.UUID
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{rows: map[uuid.UUID]*models.Product{}}
}

func (s *stubProductRepo) add(ownerID uuid.UUID, name string, price int) *models.Product {
	product := &models.Product{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       name,
		PriceCents: price,
		CreatedAt:  time.Now().UTC(),
	}
	s.rows[product.ID] = product
	s.order = append(s.order, product.ID)
	return product
}

func (s *stubProductRepo) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	s.rows[product.ID] = product
	s.order = append(s.order, product.ID)
	return product, nil
}

func (s *stubProductRepo) Update(_ context.Context, product *models.Product) (*models.Product, error) {
	s.rows[product.ID] = product
	return product, nil
}

func (s *stubProductRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	row := s.rows[id]
	if row != nil && row.OwnerID == ownerID {
		delete(s.rows, id)
	}
	return nil
}

func (s *stubProductRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*models.Product, error) {
	row := s.rows[id]
	if row == nil || row.OwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *row
	return &copy, nil
}

func (s *stubProductRepo) List(_ context.Context, ownerID uuid.UUID, _ *pagination.Cursor, limit int) ([]models.Product, error) {
	return s.listAll(ownerID, limit)
}

func (s *stubProductRepo) ListAll(_ context.Context, ownerID uuid.UUID) ([]models.Product, error) {
	return s.listAll(ownerID, len(s.order))
}

func (s *stubProductRepo) listAll(ownerID uuid.UUID, limit int) ([]models.Product, error) {
	out := make([]models.Product, 0)
	for _, id := range s.order {
		row := s.rows[id]
		if row != nil && row.OwnerID == ownerID && len(out) < limit {
			out = append(out, *row)
		}
	}
	return out, nil
}

type stubOfferingRepo struct {
	rows  map[uuid.UUID]*models.ServiceOffering
	order []uuid.UUID
}

func newStubOfferingRepo() *stubOfferingRepo {
	return &stubOfferingRepo{rows: map[uuid.UUID]*models.ServiceOffering{}}
}

func (s *stubOfferingRepo) add(ownerID uuid.UUID, name string, rate int) *models.ServiceOffering {
	offering := &models.ServiceOffering{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		RateCents: rate,
		CreatedAt: time.Now().UTC(),
	}
	s.rows[offering.ID] = offering
	s.order = append(s.order, offering.ID)
	return offering
}

func (s *stubOfferingRepo) Create(_ context.Context, offering *models.ServiceOffering) (*models.ServiceOffering, error) {
	if offering.ID == uuid.Nil {
		offering.ID = uuid.New()
	}
	s.rows[offering.ID] = offering
	s.order = append(s.order, offering.ID)
	return offering, nil
}

func (s *stubOfferingRepo) Update(_ context.Context, offering *models.ServiceOffering) (*models.ServiceOffering, error) {
	s.rows[offering.ID] = offering
	return offering, nil
}

func (s *stubOfferingRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	row := s.rows[id]
	if row != nil && row.OwnerID == ownerID {
		delete(s.rows, id)
	}
	return nil
}

func (s *stubOfferingRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*models.ServiceOffering, error) {
	row := s.rows[id]
	if row == nil || row.OwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *row
	return &copy, nil
}

func (s *stubOfferingRepo) List(_ context.Context, ownerID uuid.UUID, _ *pagination.Cursor, limit int) ([]models.ServiceOffering, error) {
	return s.listAll(ownerID, limit)
}

func (s *stubOfferingRepo) ListAll(_ context.Context, ownerID uuid.UUID) ([]models.ServiceOffering, error) {
	return s.listAll(ownerID, len(s.order))
}

func (s *stubOfferingRepo) listAll(ownerID uuid.UUID, limit int) ([]models.ServiceOffering, error) {
	out := make([]models.ServiceOffering, 0)
	for _, id := range s.order {
		row := s.rows[id]
		if row != nil && row.OwnerID == ownerID && len(out) < limit {
			out = append(out, *row)
		}
	}
	return out, nil
}
