package repositories

import (
	"context"
	"errors"
	"fmt"

	"walletpay/internal/models"

	"gorm.io/gorm"
)

type accountRepository struct {
	db    *gorm.DB
	cache AccountCache
}

// NewAccountRepository returns a repository with read-through account
// caching. The wallet service invalidates cached accounts after a
// balance mutation commits.
func NewAccountRepository(db *gorm.DB, accountCache AccountCache) AccountRepository {
	return &accountRepository{db: db, cache: accountCache}
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Preload("User").First(&account, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) FindByAccountNumber(ctx context.Context, number int64) (*models.Account, error) {
	if r.cache != nil {
		if cached, err := r.cache.GetAccount(ctx, number); err == nil && cached != nil {
			return cached, nil
		}
	}

	var account models.Account
	err := r.db.WithContext(ctx).Preload("User").
		Where("account_number = ?", number).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.CacheAccount(ctx, &account); err != nil {
			// Cache failures must not break reads.
			fmt.Printf("Failed to cache account %d: %v\n", number, err)
		}
	}
	return &account, nil
}

func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

func (r *accountRepository) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ExecuteInTransaction wraps fn in a database transaction. The
// repository passed to fn shares the transaction handle, so every
// operation inside commits or rolls back as one unit.
func (r *accountRepository) ExecuteInTransaction(fn func(AccountRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&accountRepository{db: tx, cache: r.cache})
	})
}
