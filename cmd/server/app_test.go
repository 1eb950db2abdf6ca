package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diewo77/quotemaster/internal/config"
	"github.com/diewo77/quotemaster/internal/db"
	"github.com/diewo77/quotemaster/internal/httpx"
	"github.com/diewo77/quotemaster/internal/metrics"
	"github.com/diewo77/quotemaster/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *App {
	t.Helper()
	gdb, err := db.Open(config.DatabaseConfig{
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	m := metrics.New()
	s := store.New(gdb, zap.NewNop(), m)
	require.NoError(t, s.Init(context.Background()))

	app, err := NewApp(s, zap.NewNop(), m)
	require.NoError(t, err)
	return app
}

func TestHealthz(t *testing.T) {
	app := setupTestApp(t)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(httpx.RequestIDHeader))
}

func TestRoutes(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/clients", "", http.StatusOK},
		{http.MethodPost, "/clients", `{"name":"Ada"}`, http.StatusCreated},
		{http.MethodGet, "/clients/1", "", http.StatusOK},
		{http.MethodPut, "/clients/1", `{"name":"Ada L"}`, http.StatusNoContent},
		{http.MethodGet, "/settings", "", http.StatusOK},
		{http.MethodGet, "/estimates", "", http.StatusOK},
		{http.MethodGet, "/estimates/1", "", http.StatusNotFound},
		{http.MethodDelete, "/estimates/1", "", http.StatusNotFound},
		{http.MethodGet, "/invoices", "", http.StatusOK},
		{http.MethodGet, "/invoices/1", "", http.StatusNotFound},
		{http.MethodDelete, "/invoices/1", "", http.StatusNotFound},
		{http.MethodGet, "/products", "", http.StatusOK},
		{http.MethodGet, "/products/1", "", http.StatusNotFound},
		{http.MethodGet, "/revenue?year=2024", "", http.StatusOK},
		{http.MethodGet, "/dashboard", "", http.StatusOK},
		{http.MethodDelete, "/clients/1", "", http.StatusNoContent},
		{http.MethodPatch, "/clients/1", "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, body))
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := setupTestApp(t)

	app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/clients", nil))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	text := rec.Body.String()
	assert.Contains(t, text, `quotemaster_http_requests_total{method="GET",route="GET /clients",status="200"} 1`)
	assert.Contains(t, text, `quotemaster_store_operations_total{operation="list_clients",outcome="ok"} 1`)
}
