package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "account-recommendation/docs" // Swagger docs
	"account-recommendation/internal/logger"
	"account-recommendation/internal/models"
	"account-recommendation/internal/redis"
)

// CORSMiddleware возвращает middleware для обработки CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// RecoveryMiddleware перехватывает панику и отвечает по контракту рекомендаций (HTTP 500, success=false)
func RecoveryMiddleware(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic in handler",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"))

		c.AbortWithStatusJSON(http.StatusInternalServerError,
			models.NewErrorResponse(errorMessage(recovered)))
	})
}

// SetupCommonEndpoints добавляет общие endpoints (health, events, stats) к роутеру.
// stats может быть nil, если Redis не настроен.
func SetupCommonEndpoints(router *gin.Engine, events *logger.EventLogger, stats redis.StatsRecorder) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Events endpoint
	router.GET("/api/v1/events", func(c *gin.Context) {
		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
				limit = parsed
			}
		}
		c.JSON(http.StatusOK, gin.H{"events": events.GetEvents(limit)})
	})

	// Stats endpoint
	router.GET("/api/v1/stats", func(c *gin.Context) {
		result := events.GetStats()
		if stats != nil {
			requests, err := stats.GetRequestStats(c.Request.Context())
			if err != nil {
				result["requests_error"] = err.Error()
			} else {
				result["requests"] = requests
			}
		}
		c.JSON(http.StatusOK, result)
	})

	router.DELETE("/api/v1/stats", func(c *gin.Context) {
		if stats == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Redis is not configured"})
			return
		}
		if err := stats.ClearRequestStats(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear request stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Request stats cleared successfully"})
	})
}

// SetupRouter настраивает маршруты заглушки сервиса рекомендаций
func SetupRouter(handlers *Handlers, events *logger.EventLogger, stats redis.StatsRecorder, log *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(CORSMiddleware())
	router.Use(gin.Logger(), RecoveryMiddleware(log))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/api_test", handlers.APITest)
	router.POST("/ai_recommendation", handlers.HandleRecommendation)
	router.GET("/ai_recommendation_test", handlers.HandleRecommendationTest)
	router.POST("/ai_recommendation_test", handlers.HandleRecommendationTest)

	// Общие endpoints (health, events, stats)
	SetupCommonEndpoints(router, events, stats)

	return router
}
