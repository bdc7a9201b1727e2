package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"walletpay/internal/gateway"
	"walletpay/internal/models"
	"walletpay/internal/repositories"
	"walletpay/internal/services/operation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type service struct {
	accounts       repositories.AccountRepository
	operationTypes repositories.OperationTypeRepository
	gateway        PaymentGateway
	cache          Cache
	metrics        MetricsCollector
}

// NewService creates a new wallet service
func NewService(
	accounts repositories.AccountRepository,
	operationTypes repositories.OperationTypeRepository,
	paymentGateway PaymentGateway,
	cache Cache,
	metrics MetricsCollector,
) Service {
	if accounts == nil {
		panic("account repository is required")
	}
	if operationTypes == nil {
		panic("operation type repository is required")
	}
	if paymentGateway == nil {
		panic("payment gateway is required")
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		accounts:       accounts,
		operationTypes: operationTypes,
		gateway:        paymentGateway,
		cache:          cache,
		metrics:        metrics,
	}
}

// ExecuteTransaction runs one wallet operation to completion. The
// account update and the COMPLETED ledger append commit as a single
// database transaction; nothing is persisted when the gateway rejects
// the payment.
func (s *service) ExecuteTransaction(ctx context.Context, req TransactionRequest) (*TransactionResponse, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration("transaction", time.Since(start))
	}()

	operationType, err := s.operationTypes.FindByID(ctx, req.OperationType)
	if err != nil {
		if errors.Is(err, repositories.ErrOperationTypeNotFound) {
			return nil, ErrOperationTypeNotFound
		}
		return nil, fmt.Errorf("failed to resolve operation type: %w", err)
	}

	account, err := s.accounts.FindByAccountNumber(ctx, req.WalletAccountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	strategy, err := operation.ForOperationType(operationType.ID)
	if err != nil {
		s.metrics.RecordError("transaction", "unsupported_operation")
		return nil, err
	}

	adjusted := strategy.CalculatePercent(PercentRate, req.Amount)

	// Balance mutation stays in memory until the gateway accepts the
	// payment.
	account.Balance = strategy.CalculateAmount(account.Balance, adjusted)

	payment, err := s.gateway.SubmitPayment(ctx, gateway.PaymentRequest{
		Amount: adjusted,
		UserID: account.UserID,
	})
	if err != nil {
		var clientErr *gateway.ClientError
		if errors.As(err, &clientErr) {
			s.metrics.RecordError("transaction", "external_payment")
			// The FAILED record is constructed but not persisted here;
			// the error handler owns that write.
			record := buildRecord(req, operationType, account, models.TransactionStatusFailed, nil, adjusted)
			return nil, &ExternalPaymentError{Record: record, Cause: err}
		}
		return nil, fmt.Errorf("payment gateway call failed: %w", err)
	}

	record := buildRecord(req, operationType, account, models.TransactionStatusCompleted, payment, adjusted)

	err = s.accounts.ExecuteInTransaction(func(tx repositories.AccountRepository) error {
		if err := tx.Update(ctx, account); err != nil {
			return err
		}
		return tx.CreateTransaction(ctx, record)
	})
	if err != nil {
		s.metrics.RecordError("transaction", "commit")
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateAccount(ctx, account.AccountNumber); err != nil {
			fmt.Printf("Failed to invalidate account cache %d: %v\n", account.AccountNumber, err)
		}
	}

	s.metrics.RecordTransaction(operationType.Description, req.Amount.InexactFloat64())

	return &TransactionResponse{
		UserID:           account.UserID,
		Amount:           req.Amount,
		AccountNumber:    account.AccountNumber,
		ExternalWalletID: record.ExternalWalletID,
		Balance:          account.Balance,
		OperationType:    operationType.Description,
	}, nil
}

// GetBalance delegates the balance inquiry to the payment provider.
// No local state is read or written.
func (s *service) GetBalance(ctx context.Context, userID uint) (*gateway.BalanceResponse, error) {
	balance, err := s.gateway.FetchBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return balance, nil
}

// buildRecord assembles one append-only ledger entry for the attempt.
func buildRecord(
	req TransactionRequest,
	operationType *models.OperationType,
	account *models.Account,
	status string,
	payment *gateway.PaymentResponse,
	adjusted decimal.Decimal,
) *models.Transaction {
	record := &models.Transaction{
		Reference:       uuid.NewString(),
		AccountID:       account.ID,
		OperationTypeID: operationType.ID,
		Amount:          req.Amount,
		AdjustedAmount:  adjusted,
		Status:          status,
		Metadata: models.NewJSON(map[string]interface{}{
			"external_account_number": req.ExternalAccountNumber,
		}),
	}
	if payment != nil && payment.WalletID != "" {
		walletID := payment.WalletID
		record.ExternalWalletID = &walletID
	}
	return record
}
