package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/enums"
)

// Repository exposes the aggregate queries behind the reporting endpoints.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reports repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// OrdersSince returns the owner's orders created at or after the cutoff,
// oldest first.
func (r *Repository) OrdersSince(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND created_at >= ?", ownerID, since).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Counts captures the headline numbers for the dashboard summary.
type Counts struct {
	Customers   int64
	Products    int64
	Services    int64
	DraftQuotes int64
	Orders      int64
}

// CountAll gathers the per-table counts for the owner.
func (r *Repository) CountAll(ctx context.Context, ownerID uuid.UUID) (*Counts, error) {
	var counts Counts

	type target struct {
		model any
		dest  *int64
		extra func(*gorm.DB) *gorm.DB
	}
	targets := []target{
		{model: &models.Customer{}, dest: &counts.Customers},
		{model: &models.Product{}, dest: &counts.Products},
		{model: &models.ServiceOffering{}, dest: &counts.Services},
		{model: &models.Quote{}, dest: &counts.DraftQuotes, extra: func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", enums.QuoteStatusDraft)
		}},
		{model: &models.Order{}, dest: &counts.Orders},
	}

	for _, t := range targets {
		query := r.db.WithContext(ctx).Model(t.model).Where("owner_id = ?", ownerID)
		if t.extra != nil {
			query = t.extra(query)
		}
		if err := query.Count(t.dest).Error; err != nil {
			return nil, err
		}
	}
	return &counts, nil
}

// TotalRevenueCents sums the owner's order totals.
func (r *Repository) TotalRevenueCents(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var total *int
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("owner_id = ?", ownerID).
		Select("SUM(total_cents)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
