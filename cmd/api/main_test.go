package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-ecom-admin/internal/config"
	"github.com/imrishuroy/go-ecom-admin/internal/session"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		APIBaseURL:       "http://127.0.0.1:1",
		RunLocal:         true,
		RemoteTimeout:    time.Second,
		MetricsNamespace: "EcomAdmin",
	}
	sessions := session.NewManager(session.Options{Name: "nanubhai", Secret: "test-secret", TTL: time.Hour})
	hcfg, err := newHandlerConfig(context.Background(), cfg, zap.NewNop(), sessions)
	require.NoError(t, err)
	assert.Nil(t, hcfg.Idempotency)
	assert.Nil(t, hcfg.Audit)
	return setupRouter(zap.NewNop(), sessions, hcfg)
}

func TestSetupRouter_HealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "ecom_admin_http_requests_total"))
}

func TestSetupRouter_AdminRequiresSession(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/products", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
