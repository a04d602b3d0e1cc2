package stub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"account-recommendation/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 0, Mode: gin.TestMode},
		Redis:  config.RedisConfig{},
	}
}

func TestInitializeDependencies_WithoutRedis(t *testing.T) {
	deps := InitializeDependencies(context.Background(), testConfig(), zap.NewNop())

	assert.NotNil(t, deps.Events)
	assert.NotNil(t, deps.RecommendationService)
	assert.Nil(t, deps.RedisClient)
	assert.Nil(t, deps.Stats)
	assert.NoError(t, deps.Close())
}

func TestInitializeDependencies_RedisUnavailable(t *testing.T) {
	cfg := testConfig()
	cfg.Redis = config.RedisConfig{Host: "127.0.0.1", Port: "1"}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	deps := InitializeDependencies(ctx, cfg, zap.NewNop())

	assert.Nil(t, deps.Stats)
	assert.NotNil(t, deps.RecommendationService)
}

func TestNewServer_ServesContract(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Port = 5001
	deps := InitializeDependencies(context.Background(), cfg, zap.NewNop())

	srv := NewServer(cfg, deps, zap.NewNop())
	assert.Equal(t, ":5001", srv.Addr)

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api_test", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ai_recommendation_test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sample Account")
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, testConfig(), zap.NewNop())
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestGinMode(t *testing.T) {
	assert.Equal(t, gin.DebugMode, ginMode("debug"))
	assert.Equal(t, gin.ReleaseMode, ginMode(""))
	assert.Equal(t, gin.ReleaseMode, ginMode("verbose"))
}
