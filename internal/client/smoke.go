package client

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"account-recommendation/internal/models"
)

// Запрос smoke-проверки по умолчанию
const (
	SmokeAccountName = "定期性貯金積金"
	SmokeFileType    = models.FileTypeBalanceSheet
)

// DefaultSmokeRequest возвращает запрос smoke-проверки по умолчанию
func DefaultSmokeRequest() *models.AccountRecommendationRequest {
	return &models.AccountRecommendationRequest{
		AccountName: SmokeAccountName,
		FileType:    SmokeFileType,
	}
}

// Smoke выполняет один запрос рекомендации и логирует результат.
// Возвращает true, если получена корректная рекомендация. Не паникует.
func (c *Client) Smoke(ctx context.Context, req *models.AccountRecommendationRequest) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("smoke check panicked", zap.Any("panic", r))
			ok = false
		}
	}()

	c.logger.Info("sending recommendation request",
		zap.String("url", c.baseURL+recommendationPath),
		zap.String("account_name", req.AccountName),
		zap.String("file_type", string(req.FileType)))

	resp, err := c.Recommend(ctx, req)
	if err != nil {
		c.logFailure(err)
		return false
	}

	rec := resp.Recommendation
	c.logger.Info("recommendation received",
		zap.String("account_name", rec.AccountName),
		zap.String("standard_account_code", rec.StandardAccountCode),
		zap.String("standard_account_name", rec.StandardAccountName),
		zap.Float64("confidence", rec.Confidence),
		zap.String("rationale", rec.Rationale),
		zap.String("account_type", rec.AccountType))
	return true
}

func (c *Client) logFailure(err error) {
	var statusErr *StatusError
	var apiErr *APIError

	switch {
	case errors.As(err, &statusErr):
		c.logger.Error("recommendation request returned non-200 status",
			zap.Int("status", statusErr.StatusCode),
			zap.String("body", statusErr.Body))
	case errors.As(err, &apiErr):
		c.logger.Error("recommendation request reported failure",
			zap.String("error", apiErr.Message))
	case errors.Is(err, models.ErrMalformedResponse):
		c.logger.Error("recommendation response could not be decoded", zap.Error(err))
	default:
		c.logger.Error("recommendation request failed", zap.Error(fmt.Errorf("transport: %w", err)))
	}
}
