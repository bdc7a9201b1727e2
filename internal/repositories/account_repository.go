package repositories

import (
	"context"
	"errors"

	"walletpay/internal/models"
)

var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrOperationTypeNotFound = errors.New("operation type not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
)

// AccountCache is the caching contract the account repository reads
// through. Writers invalidate after commit via the wallet service.
type AccountCache interface {
	GetAccount(ctx context.Context, accountNumber int64) (*models.Account, error)
	CacheAccount(ctx context.Context, account *models.Account) error
}

// AccountRepository defines the interface for account-related database
// operations. ExecuteInTransaction runs the given function against a
// repository bound to a single database transaction; the account update
// and the ledger append of one wallet operation go through it so they
// commit or roll back together.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	FindByAccountNumber(ctx context.Context, number int64) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error

	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	ExecuteInTransaction(fn func(AccountRepository) error) error
}
