// Package operation encapsulates the operation-type specific arithmetic
// applied to wallet transactions. Each operation type maps to exactly
// one strategy variant; unregistered ids fail loudly instead of
// defaulting to a variant.
package operation

import (
	"walletpay/internal/models"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Strategy is the arithmetic capability of one operation-type variant.
// Both methods are pure; all math is exact decimal arithmetic.
type Strategy interface {
	// CalculatePercent returns amount * rate / 100.
	CalculatePercent(rate int64, amount decimal.Decimal) decimal.Decimal
	// CalculateAmount combines the current balance with the adjusted
	// amount; the direction depends on the variant.
	CalculateAmount(balance, adjusted decimal.Decimal) decimal.Decimal
}

// creditStrategy adds the adjusted amount to the balance (top-up).
type creditStrategy struct{}

func (creditStrategy) CalculatePercent(rate int64, amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(rate)).Div(oneHundred)
}

func (creditStrategy) CalculateAmount(balance, adjusted decimal.Decimal) decimal.Decimal {
	return balance.Add(adjusted)
}

// debitStrategy subtracts the adjusted amount from the balance (withdrawal).
type debitStrategy struct{}

func (debitStrategy) CalculatePercent(rate int64, amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(rate)).Div(oneHundred)
}

func (debitStrategy) CalculateAmount(balance, adjusted decimal.Decimal) decimal.Decimal {
	return balance.Sub(adjusted)
}

// strategies is the closed set of registered variants keyed by
// operation-type id.
var strategies = map[uint]Strategy{
	models.OperationTypeTopup:      creditStrategy{},
	models.OperationTypeWithdrawal: debitStrategy{},
}

// ForOperationType returns the strategy registered for the given
// operation-type id, or ErrUnsupportedOperation if none is.
func ForOperationType(id uint) (Strategy, error) {
	s, ok := strategies[id]
	if !ok {
		return nil, ErrUnsupportedOperation
	}
	return s, nil
}
