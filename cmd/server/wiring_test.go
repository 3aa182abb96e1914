package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oba/internal/platform/config"
	"oba/pkg/platform/middleware/admin"
	"oba/pkg/testutil"
)

func testConfig() config.Config {
	cfg := config.FromEnv()
	cfg.ConsentData.Backend = config.BackendMemory
	cfg.Redis.URL = ""
	cfg.Postgres.DSN = ""
	cfg.Kafka.Brokers = nil
	cfg.Server.AdminToken = "ops"
	cfg.Server.MetricsEnabled = true
	return cfg
}

func TestBuildInMemory(t *testing.T) {
	app, err := build(context.Background(), testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(app.close)

	t.Run("health", func(t *testing.T) {
		rr := testutil.DoRequest(app.router, testutil.NewRequest(t, http.MethodGet, "/health"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "status", "ok")
	})

	t.Run("metrics", func(t *testing.T) {
		rr := testutil.DoRequest(app.router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
		testutil.AssertStatusOK(t, rr)
		assert.True(t, strings.Contains(rr.Body.String(), "go_goroutines"))
	})

	t.Run("consents api requires a token", func(t *testing.T) {
		rr := testutil.DoRequest(app.router, testutil.NewRequest(t, http.MethodGet, "/api/v1/consents/anton.brueckner"))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})

	t.Run("admin purge", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/admin/consent-data/purge", `{"encryptedIds":["ENC_1"]}`)
		req.Header.Set(admin.HeaderAdminToken, "ops")
		rr := testutil.DoRequest(app.router, req)
		testutil.AssertStatus(t, rr, http.StatusNoContent)
	})

	t.Run("redirect entry without parameters", func(t *testing.T) {
		rr := testutil.DoRequest(app.router, testutil.NewRequest(t, http.MethodGet, "/pis/auth"))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}

func TestBuildRejectsMisconfiguredBackend(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := testConfig()
	cfg.ConsentData.Backend = config.BackendRedis
	_, err := build(context.Background(), cfg, logger)
	require.ErrorContains(t, err, "REDIS_URL")

	cfg.ConsentData.Backend = "sqlite"
	_, err = build(context.Background(), cfg, logger)
	require.ErrorContains(t, err, "unknown consent data backend")
}
