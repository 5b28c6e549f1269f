package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	pkgerrors "github.com/motoshophq/motoshop-backend/pkg/errors"
)

// RevenueMonths is how many trailing months the revenue report covers,
// including the current one.
const RevenueMonths = 6

// RevenueBucket is one month of converted revenue.
type RevenueBucket struct {
	Label        string `json:"label"`
	RevenueCents int    `json:"revenue_cents"`
	OrderCount   int    `json:"order_count"`
}

// RevenueResponse is the monthly revenue report, oldest month first.
type RevenueResponse struct {
	Buckets []RevenueBucket `json:"buckets"`
}

// SummaryResponse carries the dashboard headline numbers.
type SummaryResponse struct {
	Customers         int64 `json:"customers"`
	Products          int64 `json:"products"`
	Services          int64 `json:"services"`
	DraftQuotes       int64 `json:"draft_quotes"`
	Orders            int64 `json:"orders"`
	TotalRevenueCents int   `json:"total_revenue_cents"`
}

// Service defines the behavior needed by the reports controller.
type Service interface {
	Revenue(ctx context.Context, ownerID uuid.UUID, now time.Time) (*RevenueResponse, error)
	Summary(ctx context.Context, ownerID uuid.UUID) (*SummaryResponse, error)
}

type repository interface {
	OrdersSince(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]models.Order, error)
	CountAll(ctx context.Context, ownerID uuid.UUID) (*Counts, error)
	TotalRevenueCents(ctx context.Context, ownerID uuid.UUID) (int, error)
}

type service struct {
	repo repository
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Repo repository
}

// NewService constructs a reports service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("reports repository is required")
	}
	return &service{repo: params.Repo}, nil
}

// Revenue buckets the trailing six months of orders by calendar month.
// Months without orders appear with zero totals so charts stay continuous.
func (s *service) Revenue(ctx context.Context, ownerID uuid.UUID, now time.Time) (*RevenueResponse, error) {
	now = now.UTC()
	start := monthStart(now).AddDate(0, -(RevenueMonths - 1), 0)

	orders, err := s.repo.OrdersSince(ctx, ownerID, start)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load orders")
	}

	buckets := make([]RevenueBucket, RevenueMonths)
	index := map[string]int{}
	for i := 0; i < RevenueMonths; i++ {
		month := start.AddDate(0, i, 0)
		label := month.Format("Jan 2006")
		buckets[i] = RevenueBucket{Label: label}
		index[label] = i
	}

	for i := range orders {
		label := monthStart(orders[i].CreatedAt.UTC()).Format("Jan 2006")
		pos, ok := index[label]
		if !ok {
			continue
		}
		buckets[pos].RevenueCents += orders[i].TotalCents
		buckets[pos].OrderCount++
	}

	return &RevenueResponse{Buckets: buckets}, nil
}

func (s *service) Summary(ctx context.Context, ownerID uuid.UUID) (*SummaryResponse, error) {
	counts, err := s.repo.CountAll(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count records")
	}
	revenue, err := s.repo.TotalRevenueCents(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "sum revenue")
	}

	return &SummaryResponse{
		Customers:         counts.Customers,
		Products:          counts.Products,
		Services:          counts.Services,
		DraftQuotes:       counts.DraftQuotes,
		Orders:            counts.Orders,
		TotalRevenueCents: revenue,
	}, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
