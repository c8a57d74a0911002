package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Toheedullah-K3/SentiScope/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, srv *Server, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHandleLiveness(t *testing.T) {
	srv := newTestServer(t, &mockAnalyzer{})

	code, body := getJSON(t, srv, "/health/live")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "uptime")
}

func TestHandleReadiness_NoChecks(t *testing.T) {
	srv := newTestServer(t, &mockAnalyzer{})

	code, body := getJSON(t, srv, "/health/ready")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", body["status"])
}

func TestHandleReadiness_FailingCheck(t *testing.T) {
	checks := []HealthCheck{
		{Name: "always-ok", Check: func(context.Context) error { return nil }},
		{Name: "upstream", Check: func(context.Context) error { return errors.New("connection refused") }},
	}
	cfg := &config.Config{AppEnv: "test", Port: "8080"}
	srv := NewServer(cfg, &mockAnalyzer{}, checks)

	code, body := getJSON(t, srv, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "upstream", body["failed_check"])
	assert.Equal(t, "connection refused", body["error"])
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t, &mockAnalyzer{})

	code, body := getJSON(t, srv, "/version")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "version")
	assert.Contains(t, body, "commit")
}
