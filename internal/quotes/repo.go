package quotes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/enums"
	"github.com/motoshophq/motoshop-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a quotes repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// Create inserts the quote header together with its items.
func (r *repository) Create(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	if err := r.db.WithContext(ctx).Create(quote).Error; err != nil {
		return nil, err
	}
	return quote, nil
}

// FindByID loads the owner's quote with items and customer preloaded.
func (r *repository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Customer").
		First(&quote, "owner_id = ? AND id = ?", ownerID, id).
		Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// List returns the owner's quotes newest first, honoring the cursor.
func (r *repository) List(ctx context.Context, ownerID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Quote, error) {
	query := r.db.WithContext(ctx).
		Preload("Customer").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Quote
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes the owner's quote; items cascade at the database level.
func (r *repository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&models.Quote{}).Error
}

// MarkConverted flips a draft quote to converted and reports whether this
// call won the transition. A zero row count means another conversion got
// there first or the quote is gone.
func (r *repository) MarkConverted(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Quote{}).
		Where("owner_id = ? AND id = ? AND status = ?", ownerID, id, enums.QuoteStatusDraft).
		Update("status", enums.QuoteStatusConverted)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
