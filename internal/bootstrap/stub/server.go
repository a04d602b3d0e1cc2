package stub

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"account-recommendation/internal/api/rest"
	"account-recommendation/internal/config"
)

const shutdownTimeout = 5 * time.Second

// NewServer собирает HTTP сервер заглушки
func NewServer(cfg *config.Config, deps *Dependencies, log *zap.Logger) *http.Server {
	gin.SetMode(ginMode(cfg.Server.Mode))

	handlers := rest.NewHandlers(deps.RecommendationService, deps.Events, log)
	router := rest.SetupRouter(handlers, deps.Events, deps.Stats, log)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run запускает заглушку и блокируется до отмены ctx, после чего корректно останавливает сервер
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	deps := InitializeDependencies(ctx, cfg, log)
	defer func() {
		if err := deps.Close(); err != nil {
			log.Warn("failed to close dependencies", zap.Error(err))
		}
	}()

	srv := NewServer(cfg, deps, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("recommendation stub starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}

func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.ReleaseMode
	}
}
