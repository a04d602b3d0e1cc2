package provider

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"account-recommendation/internal/config"
)

// Имена проверок
const (
	CheckClientLibrary = "client_library"
	CheckAPIKey        = "api_key"
	CheckClientInit    = "client_init"
)

// Поддерживаемые бэкенды провайдера
const (
	BackendGeminiAPI = "gemini-api"
	BackendVertexAI  = "vertex-ai"
)

// CheckResult - итог одной проверки
type CheckResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Skipped bool   `json:"skipped"`
	Message string `json:"message"`
}

// ClientFactory создает клиента GenAI. Подменяется в тестах.
type ClientFactory func(ctx context.Context, cc *genai.ClientConfig) (*genai.Client, error)

// Checker проверяет, что учетные данные провайдера пригодны для создания клиента.
// Сетевых запросов к модели не выполняет.
type Checker struct {
	cfg       config.ProviderConfig
	newClient ClientFactory
	logger    *zap.Logger
}

type Option func(*Checker)

// WithClientFactory подменяет создание клиента GenAI
func WithClientFactory(f ClientFactory) Option {
	return func(c *Checker) {
		c.newClient = f
	}
}

func NewChecker(cfg config.ProviderConfig, logger *zap.Logger, opts ...Option) *Checker {
	c := &Checker{
		cfg:       cfg,
		newClient: genai.NewClient,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run выполняет проверки по порядку. Если проверка не прошла, зависящие от нее пропускаются.
// Ошибки не возвращаются: каждая проверка только логируется.
func (c *Checker) Run(ctx context.Context) []CheckResult {
	results := make([]CheckResult, 0, 3)

	backend, libResult := c.checkClientLibrary()
	results = append(results, c.log(libResult))

	var keyResult CheckResult
	if libResult.Passed {
		keyResult = c.checkAPIKey(backend)
	} else {
		keyResult = skipped(CheckAPIKey, CheckClientLibrary)
	}
	results = append(results, c.log(keyResult))

	var initResult CheckResult
	if keyResult.Passed {
		initResult = c.checkClientInit(ctx, backend)
	} else {
		initResult = skipped(CheckClientInit, CheckAPIKey)
	}
	results = append(results, c.log(initResult))

	return results
}

// AllPassed сообщает, прошли ли все проверки
func AllPassed(results []CheckResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return len(results) > 0
}

func (c *Checker) checkClientLibrary() (genai.Backend, CheckResult) {
	switch strings.ToLower(strings.TrimSpace(c.cfg.Backend)) {
	case "", BackendGeminiAPI:
		return genai.BackendGeminiAPI, passed(CheckClientLibrary, "google.golang.org/genai supports backend "+BackendGeminiAPI)
	case BackendVertexAI:
		return genai.BackendVertexAI, passed(CheckClientLibrary, "google.golang.org/genai supports backend "+BackendVertexAI)
	default:
		return genai.BackendUnspecified, failed(CheckClientLibrary, fmt.Sprintf("unsupported backend %q (expected %s or %s)", c.cfg.Backend, BackendGeminiAPI, BackendVertexAI))
	}
}

func (c *Checker) checkAPIKey(backend genai.Backend) CheckResult {
	if backend == genai.BackendVertexAI {
		if c.cfg.Project == "" {
			return failed(CheckAPIKey, "GOOGLE_CLOUD_PROJECT is not set")
		}
		if c.cfg.Location == "" {
			return failed(CheckAPIKey, "GOOGLE_CLOUD_LOCATION is not set")
		}
		return passed(CheckAPIKey, fmt.Sprintf("project %s, location %s", c.cfg.Project, c.cfg.Location))
	}

	if c.cfg.APIKey == "" {
		return failed(CheckAPIKey, "GEMINI_API_KEY (or GOOGLE_API_KEY) is not set")
	}
	return passed(CheckAPIKey, "API key is set: "+maskKey(c.cfg.APIKey))
}

func (c *Checker) checkClientInit(ctx context.Context, backend genai.Backend) CheckResult {
	cc := &genai.ClientConfig{Backend: backend}
	if backend == genai.BackendVertexAI {
		cc.Project = c.cfg.Project
		cc.Location = c.cfg.Location
	} else {
		cc.APIKey = c.cfg.APIKey
	}

	client, err := c.newClient(ctx, cc)
	if err != nil {
		return failed(CheckClientInit, fmt.Sprintf("failed to create GenAI client: %v", err))
	}
	if client == nil {
		return failed(CheckClientInit, "GenAI client factory returned nil client")
	}
	return passed(CheckClientInit, "GenAI client created")
}

func (c *Checker) log(r CheckResult) CheckResult {
	fields := []zap.Field{zap.String("check", r.Name), zap.String("message", r.Message)}
	switch {
	case r.Passed:
		c.logger.Info("provider check passed", fields...)
	case r.Skipped:
		c.logger.Warn("provider check skipped", fields...)
	default:
		c.logger.Error("provider check failed", fields...)
	}
	return r
}

func passed(name, msg string) CheckResult {
	return CheckResult{Name: name, Passed: true, Message: msg}
}

func failed(name, msg string) CheckResult {
	return CheckResult{Name: name, Message: msg}
}

func skipped(name, dependsOn string) CheckResult {
	return CheckResult{Name: name, Skipped: true, Message: "skipped: " + dependsOn + " check failed"}
}

// maskKey оставляет только первые символы ключа
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
