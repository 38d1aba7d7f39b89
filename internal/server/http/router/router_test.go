package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dribbleops/orderadmin/internal/server/http/handlers"
	testhelpers "github.com/dribbleops/orderadmin/internal/test"
)

var _ handlers.AdminFacade = (*testhelpers.AdminFacadeStub)(nil)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.AdminFacadeStub{}, logger)

	t.Run("login is open", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "admin@example.com", "password": "secret"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for login, got %d", resp.Code)
		}
	})

	t.Run("health is open", func(t *testing.T) {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for health, got %d", resp.Code)
		}
	})

	t.Run("admin routes require token", func(t *testing.T) {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401 without token, got %d", resp.Code)
		}
	})

	authed := func(method, path string, body []byte) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Authorization", "Bearer token")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		return resp
	}

	t.Run("authenticated routes", func(t *testing.T) {
		routes := []struct {
			method string
			path   string
			body   []byte
		}{
			{http.MethodGet, "/auth/me", nil},
			{http.MethodGet, "/admin/orders", nil},
			{http.MethodGet, "/admin/orders/stats", nil},
			{http.MethodGet, "/orders/o1", nil},
			{http.MethodGet, "/admin/orders/o1", nil},
			{http.MethodPut, "/admin/orders/o1/status", []byte(`{"status":"confirmed"}`)},
			{http.MethodPatch, "/admin/orders/o1/status", []byte(`{"status":"confirmed"}`)},
			{http.MethodPost, "/admin/orders/o1/cancel", []byte(`{"reason":"test"}`)},
			{http.MethodPost, "/admin/push-tokens", []byte(`{"push_token":"device"}`)},
			{http.MethodDelete, "/admin/push-tokens", []byte(`{"push_token":"device"}`)},
		}
		for _, r := range routes {
			if resp := authed(r.method, r.path, r.body); resp.Code != http.StatusOK {
				t.Fatalf("expected status 200 for %s %s, got %d", r.method, r.path, resp.Code)
			}
		}
	})

	t.Run("stats not shadowed by order id", func(t *testing.T) {
		resp := authed(http.MethodGet, "/admin/orders/stats", nil)
		var stats map[string]any
		if err := json.Unmarshal(resp.Body.Bytes(), &stats); err != nil {
			t.Fatalf("decode stats: %v", err)
		}
		if _, ok := stats["total_orders"]; !ok {
			t.Fatalf("expected stats payload, got %s", resp.Body.String())
		}
	})
}
