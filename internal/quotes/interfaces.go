package quotes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motoshophq/motoshop-backend/pkg/db/models"
	"github.com/motoshophq/motoshop-backend/pkg/pagination"
)

// Repository defines persistence operations for quotes and their items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, quote *models.Quote) (*models.Quote, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Quote, error)
	List(ctx context.Context, ownerID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Quote, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	MarkConverted(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}
