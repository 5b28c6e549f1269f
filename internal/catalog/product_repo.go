package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/pagination"
)

// ProductRepository exposes product persistence scoped to the owning user.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a repository tied to the provided GORM DB.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	return &ProductRepository{db: tx}
}

// Create inserts a new product row.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update saves all fields of the product row.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the owner's product by ID.
func (r *ProductRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&models.Product{}).Error
}

// FindByID loads the owner's product by ID.
func (r *ProductRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		First(&product, "owner_id = ? AND id = ?", ownerID, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns the owner's products newest first, honoring the cursor.
func (r *ProductRepository) List(ctx context.Context, ownerID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Product
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every product the owner has, ordered by name for the
// combined catalog.
func (r *ProductRepository) ListAll(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
