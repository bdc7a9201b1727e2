package wallet

import (
	"context"

	"walletpay/internal/gateway"
)

// Service defines the main wallet service interface
type Service interface {
	// ExecuteTransaction runs one wallet operation end-to-end: strategy
	// selection, amount calculation, balance mutation, gateway call and
	// ledger append.
	ExecuteTransaction(ctx context.Context, req TransactionRequest) (*TransactionResponse, error)

	// GetBalance is a pass-through read against the payment provider.
	GetBalance(ctx context.Context, userID uint) (*gateway.BalanceResponse, error)
}

// PaymentGateway is the external collaborator performing the actual
// funds movement.
type PaymentGateway interface {
	SubmitPayment(ctx context.Context, req gateway.PaymentRequest) (*gateway.PaymentResponse, error)
	FetchBalance(ctx context.Context, userID uint) (*gateway.BalanceResponse, error)
}

// Cache is the subset of caching operations the wallet service needs.
type Cache interface {
	InvalidateAccount(ctx context.Context, accountNumber int64) error
}
