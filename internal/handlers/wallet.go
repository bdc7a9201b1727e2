package handlers

import (
	"errors"

	"walletpay/internal/audit"
	"walletpay/internal/repositories"
	"walletpay/internal/services/operation"
	"walletpay/internal/services/wallet"
	"walletpay/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// History pagination bounds. The cap keeps a single request from
// pulling an entire ledger.
const (
	defaultTransactionsLimit = 20
	maxTransactionsLimit     = 100
)

type WalletHandler struct {
	walletService wallet.Service
	accounts      repositories.AccountRepository
	ledger        repositories.TransactionRepository
	auditRecorder *audit.Recorder
}

func NewWalletHandler(
	walletService wallet.Service,
	accounts repositories.AccountRepository,
	ledger repositories.TransactionRepository,
	auditRecorder *audit.Recorder,
) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		accounts:      accounts,
		ledger:        ledger,
		auditRecorder: auditRecorder,
	}
}

type transactionInput struct {
	WalletAccountNumber   int64           `json:"wallet_account_number"`
	ExternalAccountNumber int64           `json:"external_account_number"`
	OperationType         uint            `json:"operation_type"`
	Amount                decimal.Decimal `json:"amount"`
}

// ExecuteTransaction handles POST /wallet/transaction.
func (h *WalletHandler) ExecuteTransaction(c *fiber.Ctx) error {
	var input transactionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	if input.WalletAccountNumber == 0 {
		return utils.BadRequest(c, "The wallet_account_number cannot be null")
	}
	if input.ExternalAccountNumber == 0 {
		return utils.BadRequest(c, "The external_account_number cannot be null")
	}
	if input.OperationType == 0 {
		return utils.BadRequest(c, "The operation_type cannot be null")
	}
	if !input.Amount.IsPositive() {
		return utils.BadRequest(c, "Amount must be greater than 0")
	}

	resp, err := h.walletService.ExecuteTransaction(c.Context(), wallet.TransactionRequest{
		WalletAccountNumber:   input.WalletAccountNumber,
		ExternalAccountNumber: input.ExternalAccountNumber,
		OperationType:         input.OperationType,
		Amount:                input.Amount,
	})
	if err != nil {
		var paymentErr *wallet.ExternalPaymentError
		switch {
		case errors.Is(err, wallet.ErrOperationTypeNotFound):
			return utils.BadRequest(c, "Operation type not found")
		case errors.Is(err, wallet.ErrAccountNotFound):
			return utils.BadRequest(c, "Account not found")
		case errors.Is(err, operation.ErrUnsupportedOperation):
			return utils.InternalError(c, "Operation type not supported")
		case errors.As(err, &paymentErr):
			// The orchestrator constructs the FAILED record but never
			// writes it; the audit recorder owns that append.
			h.auditRecorder.Record(paymentErr.Record)
			return utils.BadGateway(c, "External payment failed")
		default:
			return utils.InternalError(c, err.Error())
		}
	}

	return utils.Success(c, resp)
}

// GetBalance handles GET /wallet/balance/:userId. It is a pass-through
// read against the payment provider.
func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return utils.BadRequest(c, "Invalid user id")
	}

	balance, err := h.walletService.GetBalance(c.Context(), uint(userID))
	if err != nil {
		return utils.BadGateway(c, "Failed to fetch balance")
	}

	return utils.Success(c, balance)
}

// GetTransactions handles GET /wallet/:accountNumber/transactions.
func (h *WalletHandler) GetTransactions(c *fiber.Ctx) error {
	accountNumber, err := c.ParamsInt("accountNumber")
	if err != nil || accountNumber <= 0 {
		return utils.BadRequest(c, "Invalid account number")
	}

	limit := c.QueryInt("limit", defaultTransactionsLimit)
	if limit < 1 {
		limit = defaultTransactionsLimit
	}
	if limit > maxTransactionsLimit {
		limit = maxTransactionsLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	account, err := h.accounts.FindByAccountNumber(c.Context(), int64(accountNumber))
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return utils.NotFound(c, "Account not found")
		}
		return utils.InternalError(c, "Failed to resolve account")
	}

	txs, err := h.ledger.ListByAccount(c.Context(), account.ID, limit, offset)
	if err != nil {
		return utils.InternalError(c, "Failed to list transactions")
	}

	return utils.Success(c, fiber.Map{
		"account_number": account.AccountNumber,
		"transactions":   txs,
	})
}
