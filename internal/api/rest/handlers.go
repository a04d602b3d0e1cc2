package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"account-recommendation/internal/logger"
	"account-recommendation/internal/models"
	"account-recommendation/internal/services"
)

const serviceName = "recommendation-stub"

type Handlers struct {
	recommendationService services.RecommendationService
	decoders              *decoderChain
	events                *logger.EventLogger
	logger                *zap.Logger
}

// Создает новые обработчики REST API
func NewHandlers(recommendationService services.RecommendationService, events *logger.EventLogger, log *zap.Logger) *Handlers {
	return &Handlers{
		recommendationService: recommendationService,
		decoders:              newDecoderChain(log),
		events:                events,
		logger:                log,
	}
}

// HandleRecommendation обрабатывает POST запрос на рекомендацию стандартного счета
// @Summary Рекомендовать стандартный счет
// @Description Принимает JSON с названием счета и типом отчетности и возвращает рекомендованный стандартный счет.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body models.AccountRecommendationRequest true "Счет для классификации"
// @Success 200 {object} models.AccountRecommendationResponse "Рекомендация"
// @Failure 400 {object} models.AccountRecommendationResponse "Bad Request"
// @Failure 500 {object} models.AccountRecommendationResponse "Internal Server Error"
// @Router /ai_recommendation [post]
func (h *Handlers) HandleRecommendation(c *gin.Context) {
	requestID := h.logRequest(c)

	var req models.AccountRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectRequest(c, requestID, err)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.rejectRequest(c, requestID, err)
		return
	}

	h.respond(c, requestID, &req, "json")
}

// rejectRequest отвечает 400 в том же формате, что и ошибки сервиса
func (h *Handlers) rejectRequest(c *gin.Context, requestID string, err error) {
	h.logger.Warn("invalid recommendation request",
		zap.String("request_id", requestID),
		zap.Error(err))
	h.events.LogEvent(logger.EventRequestFailed, serviceName, "api", map[string]interface{}{
		"request_id": requestID,
		"status":     http.StatusBadRequest,
	})
	c.JSON(http.StatusBadRequest, models.NewErrorResponse(errorMessage(err)))
}

func errorMessage(err interface{}) string {
	return fmt.Sprintf("エラーが発生しました: %v", err)
}

// HandleRecommendationTest обрабатывает упрощенный тестовый запрос рекомендации
// @Summary Тестовая рекомендация
// @Description Принимает параметры в query string, JSON, форме или сыром теле. Нечитаемый ввод заменяется значениями по умолчанию.
// @Tags recommendations
// @Accept json,x-www-form-urlencoded,plain
// @Produce json
// @Param account_name query string false "Название счета" default(Sample Account)
// @Param file_type query string false "Тип отчетности (bs, pl, cf)" default(bs)
// @Success 200 {object} models.AccountRecommendationResponse "Рекомендация"
// @Failure 500 {object} models.AccountRecommendationResponse "Internal Server Error"
// @Router /ai_recommendation_test [get]
// @Router /ai_recommendation_test [post]
func (h *Handlers) HandleRecommendationTest(c *gin.Context) {
	requestID := h.logRequest(c)

	req, decoder := h.decoders.Decode(c)
	if decoder == defaultDecoder {
		h.events.LogEvent(logger.EventDecodeFallback, serviceName, "decoder", map[string]interface{}{
			"request_id":   requestID,
			"content_type": c.ContentType(),
		})
	} else {
		h.events.LogEvent(logger.EventRequestDecoded, serviceName, "decoder", map[string]interface{}{
			"request_id":   requestID,
			"decoder":      decoder,
			"account_name": req.AccountName,
			"file_type":    string(req.FileType),
		})
	}

	h.respond(c, requestID, req, decoder)
}

// APITest отвечает статическим сообщением
// @Summary Проверка API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api_test [get]
func (h *Handlers) APITest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API test endpoint is working"})
}

func (h *Handlers) logRequest(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	c.Header("X-Request-ID", requestID)

	h.logger.Info("recommendation request received",
		zap.String("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("content_type", c.ContentType()),
		zap.Any("headers", c.Request.Header))

	h.events.LogEvent(logger.EventRequestReceived, serviceName, "api", map[string]interface{}{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	})

	return requestID
}

// respond вызывает сервис и отвечает по контракту: 200 с рекомендацией, 400 на неверный ввод, 500 на прочие ошибки
func (h *Handlers) respond(c *gin.Context, requestID string, req *models.AccountRecommendationRequest, decoder string) {
	rec, err := h.recommendationService.Recommend(c.Request.Context(), req, decoder)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrInvalidRequest) || errors.Is(err, models.ErrInvalidFileType) {
			status = http.StatusBadRequest
		}

		h.logger.Error("recommendation failed",
			zap.String("request_id", requestID),
			zap.Int("status", status),
			zap.Error(err))
		h.events.LogEvent(logger.EventRequestFailed, serviceName, "service", map[string]interface{}{
			"request_id": requestID,
			"status":     status,
			"error":      err.Error(),
		})

		c.JSON(status, models.NewErrorResponse(errorMessage(err)))
		return
	}

	response := models.NewSuccessResponse(rec)

	h.logger.Info("sending recommendation",
		zap.String("request_id", requestID),
		zap.String("decoder", decoder),
		zap.Any("response", response))
	h.events.LogEvent(logger.EventRecommendationSent, serviceName, "api", map[string]interface{}{
		"request_id":            requestID,
		"account_name":          rec.AccountName,
		"standard_account_code": rec.StandardAccountCode,
		"confidence":            rec.Confidence,
	})

	c.JSON(http.StatusOK, response)
}
