package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"walletpay/internal/models"
	"walletpay/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) Create(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountStore) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountStore) FindByAccountNumber(ctx context.Context, number int64) (*models.Account, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountStore) Update(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountStore) ExecuteInTransaction(fn func(repositories.AccountRepository) error) error {
	args := m.Called()
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

type MockLedgerStore struct {
	mock.Mock
}

func (m *MockLedgerStore) Create(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLedgerStore) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockLedgerStore) ListByAccount(ctx context.Context, accountID uint, limit, offset int) ([]models.Transaction, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func newHistoryApp(accounts *MockAccountStore, ledger *MockLedgerStore) *fiber.App {
	h := NewWalletHandler(nil, accounts, ledger, nil)
	app := fiber.New()
	app.Get("/wallet/:accountNumber/transactions", h.GetTransactions)
	return app
}

func testAccount() *models.Account {
	return &models.Account{
		ID:            1,
		AccountNumber: 123456,
		UserID:        7,
		Balance:       decimal.RequireFromString("500.00"),
	}
}

func TestGetTransactions_CapsOversizedLimit(t *testing.T) {
	accounts := new(MockAccountStore)
	accounts.On("FindByAccountNumber", mock.Anything, int64(123456)).Return(testAccount(), nil)

	ledger := new(MockLedgerStore)
	ledger.On("ListByAccount", mock.Anything, uint(1), 100, 0).Return([]models.Transaction{}, nil)

	app := newHistoryApp(accounts, ledger)
	req := httptest.NewRequest("GET", "/wallet/123456/transactions?limit=100000", nil)

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ledger.AssertExpectations(t)
}

func TestGetTransactions_DefaultsInvalidPagination(t *testing.T) {
	accounts := new(MockAccountStore)
	accounts.On("FindByAccountNumber", mock.Anything, int64(123456)).Return(testAccount(), nil)

	ledger := new(MockLedgerStore)
	ledger.On("ListByAccount", mock.Anything, uint(1), 20, 0).Return([]models.Transaction{}, nil)

	app := newHistoryApp(accounts, ledger)
	req := httptest.NewRequest("GET", "/wallet/123456/transactions?limit=-5&offset=-3", nil)

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ledger.AssertExpectations(t)
}

func TestGetTransactions_UnknownAccount(t *testing.T) {
	accounts := new(MockAccountStore)
	accounts.On("FindByAccountNumber", mock.Anything, int64(999999)).Return(nil, repositories.ErrAccountNotFound)

	ledger := new(MockLedgerStore)

	app := newHistoryApp(accounts, ledger)
	req := httptest.NewRequest("GET", "/wallet/999999/transactions", nil)

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	ledger.AssertNotCalled(t, "ListByAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
