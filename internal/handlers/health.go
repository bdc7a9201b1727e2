package handlers

import (
	"walletpay/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports liveness of the service and its backing stores.
// The endpoint always returns 200; degraded dependencies are surfaced
// in the services map.
func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "connected"
	if repositories.DB == nil {
		dbStatus = "unavailable"
	} else if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unavailable"
	}

	redisStatus := "connected"
	if repositories.CacheService == nil || repositories.CacheService.Ping(c.Context()) != nil {
		redisStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"services": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
