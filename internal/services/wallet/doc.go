/*
Package wallet orchestrates wallet financial operations end-to-end.

One call to ExecuteTransaction performs:
- operation-type resolution and strategy selection
- percentage adjustment of the requested amount (fixed 10% rate)
- in-memory balance mutation via the selected strategy
- the payment provider call with the adjusted amount
- atomic persistence of the account update and the COMPLETED ledger entry

Usage:

	svc := wallet.NewService(accounts, operationTypes, gatewayClient, cache, metrics)

	resp, err := svc.ExecuteTransaction(ctx, wallet.TransactionRequest{
	    WalletAccountNumber:   123456,
	    ExternalAccountNumber: 654321,
	    OperationType:         models.OperationTypeWithdrawal,
	    Amount:                decimal.RequireFromString("100.00"),
	})

Error Handling:

- ErrOperationTypeNotFound, ErrAccountNotFound: business-rule rejections
- operation.ErrUnsupportedOperation: no strategy registered for the id
- *ExternalPaymentError: provider rejected the payment; carries the
  constructed FAILED ledger record for the caller to persist

No account mutation is ever committed when the provider call fails; the
FAILED record travels on the error, not into the ledger.
*/
package wallet
