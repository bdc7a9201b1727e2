package audit

import (
	"context"
	"testing"

	"walletpay/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Create(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLedger) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockLedger) ListByAccount(ctx context.Context, accountID uint, limit, offset int) ([]models.Transaction, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func failedRecord(reference string) *models.Transaction {
	return &models.Transaction{
		Reference:      reference,
		AccountID:      1,
		Amount:         decimal.RequireFromString("100.00"),
		AdjustedAmount: decimal.RequireFromString("10.00"),
		Status:         models.TransactionStatusFailed,
	}
}

func TestRecorder_FlushesQueuedRecordsOnStop(t *testing.T) {
	ledger := new(MockLedger)
	ledger.On("Create", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Status == models.TransactionStatusFailed
	})).Return(nil).Twice()

	r := NewRecorder(8, ledger, nil)
	r.Start(2)

	r.Record(failedRecord("ref-1"))
	r.Record(failedRecord("ref-2"))
	r.Stop()

	ledger.AssertExpectations(t)
}

func TestRecorder_WritesInlineWhenQueueFull(t *testing.T) {
	ledger := new(MockLedger)
	ledger.On("Create", mock.Anything, mock.Anything).Return(nil)

	// No workers started, zero buffer: Record must fall back to the
	// synchronous write.
	r := NewRecorder(0, ledger, nil)
	r.Record(failedRecord("ref-1"))

	ledger.AssertNumberOfCalls(t, "Create", 1)
}

func TestRecorder_PersistErrorDoesNotPanic(t *testing.T) {
	ledger := new(MockLedger)
	ledger.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	r := NewRecorder(0, ledger, nil)
	assert.NotPanics(t, func() {
		r.Record(failedRecord("ref-1"))
	})
}
