// Package audit persists the FAILED transaction records that the
// orchestrator constructs but deliberately does not write itself.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"walletpay/internal/models"
	"walletpay/internal/repositories"
)

const appendTimeout = 5 * time.Second

// Recorder appends failed-transaction records to the ledger from a
// pool of background workers. Enqueueing never blocks the request path
// longer than the channel buffer allows.
type Recorder struct {
	jobs   chan *models.Transaction
	ledger repositories.TransactionRepository
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewRecorder(bufferSize int, ledger repositories.TransactionRepository, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		jobs:   make(chan *models.Transaction, bufferSize),
		ledger: ledger,
		logger: logger,
	}
}

// Start launches the worker goroutines.
func (r *Recorder) Start(workerCount int) {
	for i := 0; i < workerCount; i++ {
		r.wg.Add(1)
		go r.worker()
	}
}

// Record enqueues a FAILED record for persistence. When the queue is
// full the record is written synchronously so it is never dropped.
func (r *Recorder) Record(record *models.Transaction) {
	select {
	case r.jobs <- record:
	default:
		r.logger.Warn("audit queue full, writing record inline", "reference", record.Reference)
		r.append(record)
	}
}

// Stop closes the queue and waits for in-flight records to be written.
func (r *Recorder) Stop() {
	close(r.jobs)
	r.wg.Wait()
}

func (r *Recorder) worker() {
	defer r.wg.Done()

	for record := range r.jobs {
		r.append(record)
	}
}

func (r *Recorder) append(record *models.Transaction) {
	ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
	defer cancel()

	if err := r.ledger.Create(ctx, record); err != nil {
		r.logger.Error("failed to persist failed-transaction record",
			"reference", record.Reference,
			"account_id", record.AccountID,
			"error", err,
		)
		return
	}
	r.logger.Info("failed transaction recorded",
		"reference", record.Reference,
		"account_id", record.AccountID,
	)
}
