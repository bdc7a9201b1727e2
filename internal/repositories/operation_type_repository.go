package repositories

import (
	"context"
	"errors"
	"fmt"

	"walletpay/internal/models"
	"walletpay/internal/repositories/cache"

	"gorm.io/gorm"
)

// OperationTypeRepository reads operation-type reference data.
type OperationTypeRepository interface {
	FindByID(ctx context.Context, id uint) (*models.OperationType, error)
}

type operationTypeRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewOperationTypeRepository returns a read-through cached repository.
// Operation types are immutable reference data, so cached entries are
// never invalidated, only expired.
func NewOperationTypeRepository(db *gorm.DB, cacheService *cache.CacheService) OperationTypeRepository {
	return &operationTypeRepository{db: db, cache: cacheService}
}

func (r *operationTypeRepository) FindByID(ctx context.Context, id uint) (*models.OperationType, error) {
	if r.cache != nil {
		if ot, err := r.cache.GetOperationType(ctx, id); err == nil && ot != nil {
			return ot, nil
		}
	}

	var ot models.OperationType
	err := r.db.WithContext(ctx).First(&ot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperationTypeNotFound
		}
		return nil, fmt.Errorf("failed to find operation type: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.CacheOperationType(ctx, &ot); err != nil {
			// Cache failures must not break reads.
			fmt.Printf("Failed to cache operation type %d: %v\n", id, err)
		}
	}
	return &ot, nil
}
