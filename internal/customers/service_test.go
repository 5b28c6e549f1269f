package customers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	pkgerrors "github.com/motoshophq/motoshop-backend/pkg/errors"
	"github.com/motoshophq/motoshop-backend/pkg/pagination"
)

func TestServiceCreateStampsOwner(t *testing.T) {
	repo := newStubRepo()
	svc := mustService(t, repo)
	ownerID := uuid.New()

	dto, err := svc.Create(context.Background(), ownerID, CreateCustomerRequest{
		FullName: "  Dana Rider  ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.FullName != "Dana Rider" {
		t.Fatalf("expected trimmed name, got %q", dto.FullName)
	}

	stored := repo.rows[dto.ID]
	if stored == nil {
		t.Fatalf("expected customer to be persisted")
	}
	if stored.OwnerID != ownerID {
		t.Fatalf("expected owner %s, got %s", ownerID, stored.OwnerID)
	}
}

func TestServiceCreateRequiresName(t *testing.T) {
	svc := mustService(t, newStubRepo())

	_, err := svc.Create(context.Background(), uuid.New(), CreateCustomerRequest{FullName: "   "})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceGetScopedToOwner(t *testing.T) {
	repo := newStubRepo()
	svc := mustService(t, repo)
	owner := uuid.New()
	other := uuid.New()

	customer := seedCustomer(repo, owner, "Dana Rider")

	if _, err := svc.Get(context.Background(), owner, customer.ID); err != nil {
		t.Fatalf("get as owner: %v", err)
	}

	_, err := svc.Get(context.Background(), other, customer.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for other owner, got %v", err)
	}
}

func TestServiceUpdatePartial(t *testing.T) {
	repo := newStubRepo()
	svc := mustService(t, repo)
	owner := uuid.New()

	customer := seedCustomer(repo, owner, "Dana Rider")
	phone := "555-0101"
	customer.Phone = &phone

	vehicleMake := "Yamaha"
	dto, err := svc.Update(context.Background(), owner, customer.ID, UpdateCustomerRequest{
		VehicleMake: &vehicleMake,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.VehicleMake == nil || *dto.VehicleMake != "Yamaha" {
		t.Fatalf("expected vehicle make update, got %+v", dto.VehicleMake)
	}
	if dto.FullName != "Dana Rider" {
		t.Fatalf("expected name untouched, got %q", dto.FullName)
	}
}

func TestServiceUpdateRejectsEmptyName(t *testing.T) {
	repo := newStubRepo()
	svc := mustService(t, repo)
	owner := uuid.New()
	customer := seedCustomer(repo, owner, "Dana Rider")

	empty := ""
	_, err := svc.Update(context.Background(), owner, customer.ID, UpdateCustomerRequest{FullName: &empty})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	repo := newStubRepo()
	svc := mustService(t, repo)
	owner := uuid.New()
	customer := seedCustomer(repo, owner, "Dana Rider")

	if err := svc.Delete(context.Background(), owner, customer.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if repo.rows[customer.ID] != nil {
		t.Fatalf("expected customer removed")
	}

	err := svc.Delete(context.Background(), owner, customer.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestServiceListPaginates(t *testing.T) {
	repo := newStubRepo()
	svc := mustService(t, repo)
	owner := uuid.New()

	for i := 0; i < 3; i++ {
		seedCustomer(repo, owner, "Customer")
	}

	resp, err := svc.List(context.Background(), owner, pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(resp.Customers))
	}
	if resp.NextCursor == "" {
		t.Fatalf("expected next cursor for remaining page")
	}
}

func mustService(t *testing.T, repo repository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func seedCustomer(repo *stubRepo, ownerID uuid.UUID, name string) *models.Customer {
	customer := &models.Customer{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		FullName:  name,
		CreatedAt: time.Now().UTC().Add(-time.Duration(len(repo.rows)) * time.Minute),
	}
	repo.rows[customer.ID] = customer
	return customer
}

type stubRepo struct {
	rows map[uuid.UUID]*models.Customer
}

func newStubRepo() *stubRepo {
	return &stubRepo{rows: map[uuid.UUID]*models.Customer{}}
}

func (s *stubRepo) Create(_ context.Context, customer *models.Customer) (*models.Customer, error) {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedAt = time.Now().UTC()
	s.rows[customer.ID] = customer
	return customer, nil
}

func (s *stubRepo) Update(_ context.Context, customer *models.Customer) (*models.Customer, error) {
	s.rows[customer.ID] = customer
	return customer, nil
}

func (s *stubRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	row := s.rows[id]
	if row != nil && row.OwnerID == ownerID {
		delete(s.rows, id)
	}
	return nil
}

func (s *stubRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*models.Customer, error) {
	row := s.rows[id]
	if row == nil || row.OwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *row
	return &copy, nil
}

func (s *stubRepo) List(_ context.Context, ownerID uuid.UUID, _ *pagination.Cursor, limit int) ([]models.Customer, error) {
	out := make([]models.Customer, 0)
	for _, row := range s.rows {
		if row.OwnerID == ownerID {
			out = append(out, *row)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
