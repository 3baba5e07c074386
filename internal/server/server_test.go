package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/flavorgen/backend/config"
	"github.com/pageza/flavorgen/backend/internal/middleware"
)

func testServerConfig() *config.Config {
	return &config.Config{
		ServerHost:       "127.0.0.1",
		ServerPort:       "0",
		OpenRouterAPIKey: "dummy",
		OpenRouterAPIURL: "https://openrouter.ai/api/v1/chat/completions",
		Model:            "meta-llama/llama-3-70b-instruct:free",
		AppReferer:       "https://flavorgen.app",
		AppTitle:         "AI Recipe Generator",
		RequestTimeout:   30 * time.Second,
		AllowedOrigins:   []string{"http://localhost:5173"},
	}
}

func TestNewServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("serves the health endpoint", func(t *testing.T) {
		srv, err := NewServer(testServerConfig(), nil)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "healthy")
	})

	t.Run("tags responses with a request id", func(t *testing.T) {
		srv, err := NewServer(testServerConfig(), nil)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("answers CORS preflight for allowed origins", func(t *testing.T) {
		srv, err := NewServer(testServerConfig(), nil)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/recipes/generate", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("fails to build without a credential", func(t *testing.T) {
		cfg := testServerConfig()
		cfg.OpenRouterAPIKey = ""

		srv, err := NewServer(cfg, nil)

		assert.Error(t, err)
		assert.Nil(t, srv)
	})
}
