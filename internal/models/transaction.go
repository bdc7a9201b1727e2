package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses
const (
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
)

// Transaction is one ledger entry per attempted wallet operation.
// Records are append-only and never mutated after creation.
type Transaction struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	Reference        string          `gorm:"uniqueIndex;not null" json:"reference"`
	AccountID        uint            `gorm:"not null;index" json:"account_id"`
	Account          *Account        `gorm:"foreignKey:AccountID" json:"-"`
	OperationTypeID  uint            `gorm:"not null" json:"operation_type_id"`
	OperationType    *OperationType  `gorm:"foreignKey:OperationTypeID" json:"-"`
	Amount           decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	AdjustedAmount   decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"adjusted_amount"`
	Status           string          `gorm:"not null" json:"status"`
	ExternalWalletID *string         `json:"external_wallet_id,omitempty"`
	Metadata         JSON            `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
