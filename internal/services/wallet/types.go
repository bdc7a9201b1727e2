package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRequest is the validated input for one wallet transaction.
// All fields are required; the value is immutable once constructed.
type TransactionRequest struct {
	WalletAccountNumber   int64           `json:"wallet_account_number"`
	ExternalAccountNumber int64           `json:"external_account_number"`
	OperationType         uint            `json:"operation_type"`
	Amount                decimal.Decimal `json:"amount"`
}

// TransactionResponse is the assembled result of a completed
// transaction. Balance is the persisted post-save balance.
type TransactionResponse struct {
	UserID           uint            `json:"user_id"`
	Amount           decimal.Decimal `json:"amount"`
	AccountNumber    int64           `json:"account_number"`
	ExternalWalletID *string         `json:"wallet_id,omitempty"`
	Balance          decimal.Decimal `json:"balance"`
	OperationType    string          `json:"operation_type"`
}

// MetricsCollector defines the interface for collecting wallet metrics
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordTransaction(operationType string, amount float64)
	RecordError(operation, errType string)
}
