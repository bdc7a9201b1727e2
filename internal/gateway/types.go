package gateway

import "github.com/shopspring/decimal"

// PaymentRequest is the payload submitted to the external payment
// provider. The amount is the adjusted amount, not the requested one.
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	UserID uint            `json:"user_id"`
}

// PaymentResponse is the provider's reply to a submitted payment.
type PaymentResponse struct {
	WalletID string `json:"wallet_id"`
	Status   string `json:"status,omitempty"`
}

// BalanceResponse is the provider's reply to a balance inquiry.
type BalanceResponse struct {
	UserID  uint            `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}
