package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/ouaf-asso/ouaf-api/internal/config"
	"github.com/ouaf-asso/ouaf-api/internal/handler"
)

func TestHealthCheck(t *testing.T) {
	app := fiber.New()
	app.Get("/api/v1/health", handler.HealthCheck(config.Config{
		AppName: "Ouaf API",
		AppEnv:  "test",
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	require.Equal(t, "ok", data["status"])
	require.Equal(t, "Ouaf API", data["service"])
}
