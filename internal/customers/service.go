package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	pkgerrors "github.com/motoshophq/motoshop-backend/pkg/errors"
	"github.com/motoshophq/motoshop-backend/pkg/pagination"
)

// Service defines the behavior needed by the customers controller.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateCustomerRequest) (*CustomerDTO, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*CustomerDTO, error)
	List(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*ListResponse, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateCustomerRequest) (*CustomerDTO, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Customer, error)
	List(ctx context.Context, ownerID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Customer, error)
}

type service struct {
	repo repository
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Repo repository
}

// NewService constructs a customers service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("customers repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, req CreateCustomerRequest) (*CustomerDTO, error) {
	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "full_name is required")
	}

	customer := &models.Customer{
		OwnerID:      ownerID,
		FullName:     name,
		Email:        req.Email,
		Phone:        req.Phone,
		VehicleMake:  req.VehicleMake,
		VehicleModel: req.VehicleModel,
		VehicleYear:  req.VehicleYear,
		Notes:        req.Notes,
	}
	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create customer")
	}
	return FromModel(created), nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load customer")
	}
	return FromModel(customer), nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*ListResponse, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	rows, err := s.repo.List(ctx, ownerID, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list customers")
	}

	page, hasMore := pagination.TrimPage(rows, params.Limit)
	out := make([]CustomerDTO, 0, len(page))
	for i := range page {
		out = append(out, *FromModel(&page[i]))
	}

	resp := &ListResponse{Customers: out}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		resp.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateCustomerRequest) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load customer")
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "full_name cannot be empty")
		}
		customer.FullName = name
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.VehicleMake != nil {
		customer.VehicleMake = req.VehicleMake
	}
	if req.VehicleModel != nil {
		customer.VehicleModel = req.VehicleModel
	}
	if req.VehicleYear != nil {
		customer.VehicleYear = req.VehicleYear
	}
	if req.Notes != nil {
		customer.Notes = req.Notes
	}

	updated, err := s.repo.Update(ctx, customer)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update customer")
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load customer")
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete customer")
	}
	return nil
}
