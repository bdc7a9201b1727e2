// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"log/slog"

	"walletpay/internal/audit"
	"walletpay/internal/config"
	"walletpay/internal/gateway"
	"walletpay/internal/handlers"
	"walletpay/internal/metrics"
	"walletpay/internal/middleware"
	"walletpay/internal/repositories"
	"walletpay/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes. It wires the
// repositories, the payment gateway client, the orchestrator and the
// audit recorder, and returns the recorder so main can stop it on
// shutdown.
func SetupRoutes(app *fiber.App, db *gorm.DB) *audit.Recorder {
	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db, repositories.CacheService)
	operationTypeRepo := repositories.NewOperationTypeRepository(db, repositories.CacheService)
	transactionRepo := repositories.NewTransactionRepository(db)

	// Payment provider client
	gatewayClient := gateway.NewClient(gateway.Config{
		PaymentURL: config.GetEnv("WALLET_TRANSACTION_URI", "http://localhost:9000/payments"),
		BalanceURL: config.GetEnv("WALLET_BALANCE_URI", "http://localhost:9000/balance"),
		Timeout:    config.GetDurationEnv("GATEWAY_TIMEOUT", wallet.DefaultTimeout),
	})

	// Failed transactions are persisted off the request path.
	auditRecorder := audit.NewRecorder(
		config.GetIntEnv("AUDIT_BUFFER_SIZE", 64),
		transactionRepo,
		slog.Default(),
	)
	auditRecorder.Start(config.GetIntEnv("AUDIT_WORKERS", 2))

	walletService := wallet.NewService(
		accountRepo,
		operationTypeRepo,
		gatewayClient,
		repositories.CacheService,
		metrics.NewPrometheusCollector(),
	)

	walletHandler := handlers.NewWalletHandler(walletService, accountRepo, transactionRepo, auditRecorder)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	api.Use(middleware.RequestID)

	authMiddleware := middleware.NewAuthMiddleware()
	protected := api.Use(authMiddleware.Handler)

	walletGroup := protected.Group("/wallet")
	walletGroup.Post("/transaction", middleware.Idempotency(repositories.CacheService), walletHandler.ExecuteTransaction)
	walletGroup.Get("/balance/:userId", walletHandler.GetBalance)
	walletGroup.Get("/:accountNumber/transactions", walletHandler.GetTransactions)

	return auditRecorder
}
