package reports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
)

func TestRevenueBucketsByMonth(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	repo := &stubReportsRepo{
		orders: []models.Order{
			{OwnerID: owner, TotalCents: 10000, CreatedAt: time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)},
			{OwnerID: owner, TotalCents: 5000, CreatedAt: time.Date(2025, time.June, 14, 9, 0, 0, 0, time.UTC)},
			{OwnerID: owner, TotalCents: 2500, CreatedAt: time.Date(2025, time.April, 3, 9, 0, 0, 0, time.UTC)},
		},
	}
	svc := mustReportsService(t, repo)

	resp, err := svc.Revenue(context.Background(), owner, now)
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}

	if len(resp.Buckets) != RevenueMonths {
		t.Fatalf("expected %d buckets, got %d", RevenueMonths, len(resp.Buckets))
	}
	if resp.Buckets[0].Label != "Jan 2025" {
		t.Fatalf("expected oldest bucket Jan 2025, got %s", resp.Buckets[0].Label)
	}
	if resp.Buckets[5].Label != "Jun 2025" {
		t.Fatalf("expected newest bucket Jun 2025, got %s", resp.Buckets[5].Label)
	}

	june := resp.Buckets[5]
	if june.RevenueCents != 15000 || june.OrderCount != 2 {
		t.Fatalf("unexpected june bucket: %+v", june)
	}

	april := resp.Buckets[3]
	if april.RevenueCents != 2500 || april.OrderCount != 1 {
		t.Fatalf("unexpected april bucket: %+v", april)
	}

	// months without orders stay present with zeros
	if resp.Buckets[0].RevenueCents != 0 || resp.Buckets[0].OrderCount != 0 {
		t.Fatalf("expected empty january bucket, got %+v", resp.Buckets[0])
	}
}

func TestRevenuePassesCutoffToRepo(t *testing.T) {
	repo := &stubReportsRepo{}
	svc := mustReportsService(t, repo)
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	if _, err := svc.Revenue(context.Background(), uuid.New(), now); err != nil {
		t.Fatalf("revenue: %v", err)
	}

	want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !repo.since.Equal(want) {
		t.Fatalf("expected cutoff %v, got %v", want, repo.since)
	}
}

func TestSummary(t *testing.T) {
	repo := &stubReportsRepo{
		counts: Counts{
			Customers:   4,
			Products:    10,
			Services:    3,
			DraftQuotes: 2,
			Orders:      7,
		},
		revenue: 123450,
	}
	svc := mustReportsService(t, repo)

	resp, err := svc.Summary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if resp.Customers != 4 || resp.Products != 10 || resp.Services != 3 {
		t.Fatalf("unexpected counts: %+v", resp)
	}
	if resp.DraftQuotes != 2 || resp.Orders != 7 {
		t.Fatalf("unexpected quote/order counts: %+v", resp)
	}
	if resp.TotalRevenueCents != 123450 {
		t.Fatalf("expected revenue 123450, got %d", resp.TotalRevenueCents)
	}
}

func mustReportsService(t *testing.T, repo repository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

type stubReportsRepo struct {
	orders  []models.Order
	counts  Counts
	revenue int
	since   time.Time
}

func (s *stubReportsRepo) OrdersSince(_ context.Context, ownerID uuid.UUID, since time.Time) ([]models.Order, error) {
	s.since = since
	out := make([]models.Order, 0)
	for _, order := range s.orders {
		if order.OwnerID == ownerID && !order.CreatedAt.Before(since) {
			out = append(out, order)
		}
	}
	return out, nil
}

func (s *stubReportsRepo) CountAll(context.Context, uuid.UUID) (*Counts, error) {
	counts := s.counts
	return &counts, nil
}

func (s *stubReportsRepo) TotalRevenueCents(context.Context, uuid.UUID) (int, error) {
	return s.revenue, nil
}
