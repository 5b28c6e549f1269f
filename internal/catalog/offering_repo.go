package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/pagination"
)

// OfferingRepository exposes labor item persistence scoped to the owning user.
type OfferingRepository struct {
	db *gorm.DB
}

// NewOfferingRepository builds a repository tied to the provided GORM DB.
func NewOfferingRepository(db *gorm.DB) *OfferingRepository {
	return &OfferingRepository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *OfferingRepository) WithTx(tx *gorm.DB) *OfferingRepository {
	return &OfferingRepository{db: tx}
}

// Create inserts a new labor item row.
func (r *OfferingRepository) Create(ctx context.Context, offering *models.ServiceOffering) (*models.ServiceOffering, error) {
	if err := r.db.WithContext(ctx).Create(offering).Error; err != nil {
		return nil, err
	}
	return offering, nil
}

// Update saves all fields of the labor item row.
func (r *OfferingRepository) Update(ctx context.Context, offering *models.ServiceOffering) (*models.ServiceOffering, error) {
	if err := r.db.WithContext(ctx).Save(offering).Error; err != nil {
		return nil, err
	}
	return offering, nil
}

// Delete removes the owner's labor item by ID.
func (r *OfferingRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&models.ServiceOffering{}).Error
}

// FindByID loads the owner's labor item by ID.
func (r *OfferingRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.ServiceOffering, error) {
	var offering models.ServiceOffering
	if err := r.db.WithContext(ctx).
		First(&offering, "owner_id = ? AND id = ?", ownerID, id).Error; err != nil {
		return nil, err
	}
	return &offering, nil
}

// List returns the owner's labor items newest first, honoring the cursor.
func (r *OfferingRepository) List(ctx context.Context, ownerID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.ServiceOffering, error) {
	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.ServiceOffering
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every labor item the owner has, ordered by name for the
// combined catalog.
func (r *OfferingRepository) ListAll(ctx context.Context, ownerID uuid.UUID) ([]models.ServiceOffering, error) {
	var rows []models.ServiceOffering
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
