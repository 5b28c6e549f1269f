package catalog

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
)

// Service defines the behavior needed by the catalog controllers: product and
// labor item CRUD plus the combined template list for the quote editor.
type Service interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, req CreateProductRequest) (*ProductDTO, error)
	GetProduct(ctx context.Context, ownerID, id uuid.UUID) (*ProductDTO, error)
	ListProducts(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*ProductListResponse, error)
	UpdateProduct(ctx context.Context, ownerID, id uuid.UUID, req UpdateProductRequest) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, ownerID, id uuid.UUID) error

	CreateOffering(ctx context.Context, ownerID uuid.UUID, req CreateOfferingRequest) (*OfferingDTO, error)
	GetOffering(ctx context.Context, ownerID, id uuid.UUID) (*OfferingDTO, error)
	ListOfferings(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*OfferingListResponse, error)
	UpdateOffering(ctx context.Context, ownerID, id uuid.UUID, req UpdateOfferingRequest) (*OfferingDTO, error)
	DeleteOffering(ctx context.Context, ownerID, id uuid.UUID) error

	Templates(ctx context.Context, ownerID uuid.UUID) ([]LineItemTemplate, error)
}

type productRepository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, ownerID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Product, error)
	ListAll(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error)
}

type offeringRepository interface {
	Create(ctx context.Context, offering *models.ServiceOffering) (*models.ServiceOffering, error)
	Update(ctx context.Context, offering *models.ServiceOffering) (*models.ServiceOffering, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.ServiceOffering, error)
	List(ctx context.Context, ownerID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.ServiceOffering, error)
	ListAll(ctx context.Context, ownerID uuid.UUID) ([]models.ServiceOffering, error)
}

type service struct {
	products  productRepository
	offerings offeringRepository
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Products  productRepository
	Offerings offeringRepository
}

// NewService constructs a catalog service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Products == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	if params.Offerings == nil {
		return nil, fmt.Errorf("offering repository is required")
	}
	return &service{
		products:  params.Products,
		offerings: params.Offerings,
	}, nil
}

func (s *service) CreateProduct(ctx context.Context, ownerID uuid.UUID, req CreateProductRequest) (*ProductDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if req.PriceCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_cents cannot be negative")
	}

	product := &models.Product{
		OwnerID:     ownerID,
		SKU:         req.SKU,
		Name:        name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		CostCents:   req.CostCents,
		Stock:       req.Stock,
	}
	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return productFromModel(created), nil
}

func (s *service) GetProduct(ctx context.Context, ownerID, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.products.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return productFromModel(product), nil
}

func (s *service) ListProducts(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*ProductListResponse, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	rows, err := s.products.List(ctx, ownerID, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	page, hasMore := pagination.TrimPage(rows, params.Limit)
	out := make([]ProductDTO, 0, len(page))
	for i := range page {
		out = append(out, *productFromModel(&page[i]))
	}

	resp := &ProductListResponse{Products: out}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		resp.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return resp, nil
}

func (s *service) UpdateProduct(ctx context.Context, ownerID, id uuid.UUID, req UpdateProductRequest) (*ProductDTO, error) {
	product, err := s.products.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		product.Name = name
	}
	if req.SKU != nil {
		product.SKU = req.SKU
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_cents cannot be negative")
		}
		product.PriceCents = *req.PriceCents
	}
	if req.CostCents != nil {
		product.CostCents = req.CostCents
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
		}
		product.Stock = *req.Stock
	}

	updated, err := s.products.Update(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}
	return productFromModel(updated), nil
}

func (s *service) DeleteProduct(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	if err := s.products.Delete(ctx, ownerID, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return nil
}

func (s *service) CreateOffering(ctx context.Context, ownerID uuid.UUID, req CreateOfferingRequest) (*OfferingDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if req.RateCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rate_cents cannot be negative")
	}

	offering := &models.ServiceOffering{
		OwnerID:     ownerID,
		Name:        name,
		Description: req.Description,
		RateCents:   req.RateCents,
	}
	created, err := s.offerings.Create(ctx, offering)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create service")
	}
	return offeringFromModel(created), nil
}

func (s *service) GetOffering(ctx context.Context, ownerID, id uuid.UUID) (*OfferingDTO, error) {
	offering, err := s.offerings.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "service not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load service")
	}
	return offeringFromModel(offering), nil
}

func (s *service) ListOfferings(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*OfferingListResponse, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	rows, err := s.offerings.List(ctx, ownerID, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list services")
	}

	page, hasMore := pagination.TrimPage(rows, params.Limit)
	out := make([]OfferingDTO, 0, len(page))
	for i := range page {
		out = append(out, *offeringFromModel(&page[i]))
	}

	resp := &OfferingListResponse{Services: out}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		resp.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return resp, nil
}

func (s *service) UpdateOffering(ctx context.Context, ownerID, id uuid.UUID, req UpdateOfferingRequest) (*OfferingDTO, error) {
	offering, err := s.offerings.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "service not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load service")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		offering.Name = name
	}
	if req.Description != nil {
		offering.Description = req.Description
	}
	if req.RateCents != nil {
		if *req.RateCents < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "rate_cents cannot be negative")
		}
		offering.RateCents = *req.RateCents
	}

	updated, err := s.offerings.Update(ctx, offering)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update service")
	}
	return offeringFromModel(updated), nil
}

func (s *service) DeleteOffering(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.offerings.FindByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "service not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load service")
	}
	if err := s.offerings.Delete(ctx, ownerID, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete service")
	}
	return nil
}

// Templates merges the owner's products and labor items into the combined
// list the quote editor presents. Products always come before labor items.
func (s *service) Templates(ctx context.Context, ownerID uuid.UUID) ([]LineItemTemplate, error) {
	products, err := s.products.ListAll(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	offerings, err := s.offerings.ListAll(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list services")
	}

	templates := make([]LineItemTemplate, 0, len(products)+len(offerings))
	for i := range products {
		templates = append(templates, LineItemTemplate{
			ID:             products[i].ID,
			Kind:           enums.CatalogKindProduct,
			Label:          products[i].Name,
			UnitPriceCents: products[i].PriceCents,
		})
	}
	for i := range offerings {
		templates = append(templates, LineItemTemplate{
			ID:             offerings[i].ID,
			Kind:           enums.CatalogKindService,
			Label:          offerings[i].Name,
			UnitPriceCents: offerings[i].RateCents,
		})
	}
	return templates, nil
}
