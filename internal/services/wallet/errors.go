package wallet

import (
	"errors"
	"fmt"

	"walletpay/internal/models"
)

// Service errors
var (
	ErrOperationTypeNotFound = errors.New("operation type not found")
	ErrAccountNotFound       = errors.New("account not found")
)

// ExternalPaymentError wraps a provider-side rejection. It carries the
// constructed FAILED transaction record; the orchestrator does not
// persist it, the error handler hands it to the audit recorder.
type ExternalPaymentError struct {
	Record *models.Transaction
	Cause  error
}

func (e *ExternalPaymentError) Error() string {
	return fmt.Sprintf("external payment failed: %v", e.Cause)
}

func (e *ExternalPaymentError) Unwrap() error {
	return e.Cause
}
