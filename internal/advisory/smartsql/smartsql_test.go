package smartsql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smartbizsa/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(cfg config.SmartSQLConfig) Service {
	if cfg.BridgeTimeout == 0 {
		cfg.BridgeTimeout = 5 * time.Second
	}
	return New(Params{Cfg: config.Config{SmartSQL: cfg}, Log: zap.NewNop()})
}

func TestExecuteNeitherConfigured(t *testing.T) {
	svc := newService(config.SmartSQLConfig{})
	_, err := svc.Execute(context.Background(), "list invoices")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestExecuteBridgeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer bridge-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "list invoices", body["query"])

		_, _ = w.Write([]byte(`{"success":true,"sql":"SELECT * FROM invoices","results":[{"id":"a"}]}`))
	}))
	defer srv.Close()

	svc := newService(config.SmartSQLConfig{BridgeURL: srv.URL, BridgeAPIKey: "bridge-key"})
	result, err := svc.Execute(context.Background(), "list invoices")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM invoices", result.SQL)

	rows, ok := result.Results.([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
}

func TestExecuteBridgeWithoutKeySkipsAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"sql":"SELECT 1","results":[]}`))
	}))
	defer srv.Close()

	svc := newService(config.SmartSQLConfig{BridgeURL: srv.URL})
	_, err := svc.Execute(context.Background(), "q")
	require.NoError(t, err)
}

func TestExecuteBridgeTakesPrecedence(t *testing.T) {
	bridgeCalls := 0
	bridge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bridgeCalls++
		_, _ = w.Write([]byte(`{"success":true,"sql":"SELECT 1","results":[]}`))
	}))
	defer bridge.Close()

	fallbackCalls := 0
	fb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackCalls++
		_, _ = w.Write([]byte(`{"sql":"SELECT 2","results":[]}`))
	}))
	defer fb.Close()

	svc := newService(config.SmartSQLConfig{
		BridgeURL:       bridge.URL,
		FallbackAPIKey:  "fb-key",
		FallbackBaseURL: fb.URL,
	})
	_, err := svc.Execute(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, 1, bridgeCalls)
	assert.Zero(t, fallbackCalls)
}

func TestExecuteBridgeFailureDoesNotFallBack(t *testing.T) {
	bridge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bridge.Close()

	fallbackCalls := 0
	fb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackCalls++
	}))
	defer fb.Close()

	svc := newService(config.SmartSQLConfig{
		BridgeURL:       bridge.URL,
		FallbackAPIKey:  "fb-key",
		FallbackBaseURL: fb.URL,
	})
	_, err := svc.Execute(context.Background(), "q")
	require.Error(t, err)
	assert.Zero(t, fallbackCalls)
}

func TestExecuteBridgeReportedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"schema unknown"}`))
	}))
	defer srv.Close()

	svc := newService(config.SmartSQLConfig{BridgeURL: srv.URL})
	_, err := svc.Execute(context.Background(), "q")
	require.Error(t, err)
	assert.Equal(t, "schema unknown", err.Error())
}

func TestExecuteBridgeDataField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"sql":"SELECT 1","data":[{"n":1}]}`))
	}))
	defer srv.Close()

	svc := newService(config.SmartSQLConfig{BridgeURL: srv.URL})
	result, err := svc.Execute(context.Background(), "q")
	require.NoError(t, err)

	rows, ok := result.Results.([]any)
	require.True(t, ok)
	assert.Len(t, rows, 1)
}

func TestExecuteBridgeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	svc := newService(config.SmartSQLConfig{BridgeURL: srv.URL, BridgeTimeout: 50 * time.Millisecond})
	_, err := svc.Execute(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestExecuteFallbackOnlyWithoutBridge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/smartsql", r.URL.Path)
		assert.Equal(t, "Bearer fb-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "q", body["query"])
		assert.Equal(t, databaseContext, body["context"])

		_, _ = w.Write([]byte(`{"sql":"SELECT 2","results":[]}`))
	}))
	defer srv.Close()

	svc := newService(config.SmartSQLConfig{FallbackAPIKey: "fb-key", FallbackBaseURL: srv.URL})
	result, err := svc.Execute(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 2", result.SQL)
}

func TestExecuteFallbackErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	svc := newService(config.SmartSQLConfig{FallbackAPIKey: "fb-key", FallbackBaseURL: srv.URL})
	_, err := svc.Execute(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
