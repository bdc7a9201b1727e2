package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck_ReportsUnavailableDependencies(t *testing.T) {
	app := fiber.New()
	app.Get("/health", HealthCheck)

	// No database or Redis is initialized in tests, so both must be
	// reported as unavailable rather than hardcoded healthy.
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "unavailable", body.Services["database"])
	assert.Equal(t, "unavailable", body.Services["redis"])
}
