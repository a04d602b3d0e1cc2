package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"account-recommendation/internal/config"
	"account-recommendation/internal/models"
)

const (
	recommendationPath = "/ai_recommendation"
	defaultBaseDelay   = 500 * time.Millisecond
	maxRetriesLimit    = 10
	maxBackoff         = 30 * time.Second
	maxErrorBodyBytes  = 4 << 10
)

// Client обращается к эндпоинту рекомендаций развернутого приложения
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	baseDelay  time.Duration
	logger     *zap.Logger
}

type Option func(*Client)

// WithHTTPClient подменяет HTTP клиент (используется в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseDelay задает начальную задержку между повторами
func WithBaseDelay(d time.Duration) Option {
	return func(c *Client) {
		c.baseDelay = d
	}
}

// New создает клиент по конфигурации. Timeout 0 означает отсутствие таймаута.
func New(cfg config.ClientConfig, logger *zap.Logger, opts ...Option) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: cfg.MaxRetries,
		baseDelay:  defaultBaseDelay,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxRetries < 0 {
		c.maxRetries = 0
	}
	if c.maxRetries > maxRetriesLimit {
		c.maxRetries = maxRetriesLimit
	}
	return c
}

// BaseURL возвращает адрес сервера без завершающего слэша
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Recommend отправляет POST {base}/ai_recommendation и разбирает ответ.
// Ошибки: *StatusError (код != 200), *APIError (success=false),
// models.ErrMalformedResponse (нечитаемое тело), ошибки транспорта.
func (c *Client) Recommend(ctx context.Context, req *models.AccountRecommendationRequest) (*models.AccountRecommendationResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		resp, err := c.do(ctx, payload)
		if err == nil {
			return resp, nil
		}
		// Ответ с success=false возвращается вызывающему вместе с ошибкой
		if !isRetryable(ctx, err) {
			return resp, err
		}
		lastErr = err

		if attempt == c.maxRetries {
			break
		}

		wait := c.backoff(attempt)
		c.logger.Warn("recommendation request failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, payload []byte) (*models.AccountRecommendationResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+recommendationPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", httpReq.URL, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBodyBytes))
		return nil, &StatusError{StatusCode: httpResp.StatusCode, Body: string(body)}
	}

	var resp models.AccountRecommendationResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedResponse, err)
	}

	if !resp.Success {
		return &resp, &APIError{Message: resp.Error}
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}
	return &resp, nil
}

// isRetryable: повторяются только ошибки транспорта и ответы 5xx
func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) || errors.Is(err, models.ErrMalformedResponse) {
		return false
	}
	return true
}

// backoff растет экспоненциально с 20% jitter и ограничен maxBackoff
func (c *Client) backoff(attempt int) time.Duration {
	backoff := float64(c.baseDelay) * math.Pow(2, float64(attempt))
	if backoff > float64(maxBackoff) {
		backoff = float64(maxBackoff)
	}
	jitter := (rand.Float64() * 0.2) * backoff
	return time.Duration(backoff + jitter)
}
