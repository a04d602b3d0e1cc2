package rest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"account-recommendation/internal/models"
)

const (
	maxBodyBytes   = 1 << 20
	defaultDecoder = "default"
)

// errNotApplicable означает, что запрос не закодирован так, как ожидает декодер
var errNotApplicable = errors.New("decoder not applicable")

// recommendationParams - входные параметры без обязательных полей
type recommendationParams struct {
	AccountName string `json:"account_name" form:"account_name"`
	FileType    string `json:"file_type" form:"file_type"`
}

// toRequest подставляет значения по умолчанию для отсутствующих полей
func (p *recommendationParams) toRequest() *models.AccountRecommendationRequest {
	req := &models.AccountRecommendationRequest{
		AccountName: p.AccountName,
		FileType:    models.FileType(p.FileType),
	}
	req.Normalize()
	if req.AccountName == "" {
		req.AccountName = models.DefaultAccountName
	}
	return req
}

func defaultRequest() *models.AccountRecommendationRequest {
	return &models.AccountRecommendationRequest{
		AccountName: models.DefaultAccountName,
		FileType:    models.DefaultFileType,
	}
}

type requestDecoder interface {
	Name() string
	Decode(c *gin.Context, body []byte) (*recommendationParams, error)
}

// queryDecoder читает параметры из query string
type queryDecoder struct{}

func (queryDecoder) Name() string { return "query" }

func (queryDecoder) Decode(c *gin.Context, _ []byte) (*recommendationParams, error) {
	query := c.Request.URL.Query()
	if !query.Has("account_name") && !query.Has("file_type") {
		return nil, errNotApplicable
	}
	var params recommendationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// jsonDecoder читает тело с Content-Type application/json
type jsonDecoder struct{}

func (jsonDecoder) Name() string { return "json" }

func (jsonDecoder) Decode(c *gin.Context, body []byte) (*recommendationParams, error) {
	if c.ContentType() != binding.MIMEJSON {
		return nil, errNotApplicable
	}
	var params recommendationParams
	if err := binding.JSON.BindBody(body, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// formDecoder читает urlencoded и multipart формы
type formDecoder struct{}

func (formDecoder) Name() string { return "form" }

func (formDecoder) Decode(c *gin.Context, _ []byte) (*recommendationParams, error) {
	var b binding.Binding
	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		b = binding.FormPost
	case binding.MIMEMultipartPOSTForm:
		b = binding.FormMultipart
	default:
		return nil, errNotApplicable
	}

	var params recommendationParams
	if err := c.ShouldBindWith(&params, b); err != nil {
		return nil, err
	}
	// Пустая форма обрабатывается следующим декодером
	if len(c.Request.PostForm) == 0 {
		return nil, errNotApplicable
	}
	return &params, nil
}

// rawJSONDecoder пытается разобрать тело как JSON независимо от Content-Type
type rawJSONDecoder struct{}

func (rawJSONDecoder) Name() string { return "raw" }

func (rawJSONDecoder) Decode(_ *gin.Context, body []byte) (*recommendationParams, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errNotApplicable
	}
	var params recommendationParams
	if err := binding.JSON.BindBody(body, &params); err != nil {
		return nil, fmt.Errorf("could not parse raw data: %w", err)
	}
	return &params, nil
}

// decoderChain перебирает декодеры в порядке приоритета
type decoderChain struct {
	decoders []requestDecoder
	logger   *zap.Logger
}

func newDecoderChain(logger *zap.Logger) *decoderChain {
	return &decoderChain{
		decoders: []requestDecoder{queryDecoder{}, jsonDecoder{}, formDecoder{}, rawJSONDecoder{}},
		logger:   logger,
	}
}

// Decode возвращает запрос и имя декодера, который его разобрал.
// Если ни один декодер не подошел, возвращается запрос по умолчанию.
func (dc *decoderChain) Decode(c *gin.Context) (*models.AccountRecommendationRequest, string) {
	body, err := readBody(c)
	if err != nil {
		dc.logger.Warn("failed to read request body", zap.Error(err))
	}

	for _, d := range dc.decoders {
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		params, err := d.Decode(c, body)
		if errors.Is(err, errNotApplicable) {
			continue
		}
		if err != nil {
			dc.logger.Warn("decoder failed, falling through",
				zap.String("decoder", d.Name()),
				zap.Error(err))
			continue
		}

		req := params.toRequest()
		if err := req.Validate(); err != nil {
			dc.logger.Warn("decoded request rejected, falling through",
				zap.String("decoder", d.Name()),
				zap.Error(err))
			continue
		}

		dc.logger.Info("request decoded",
			zap.String("decoder", d.Name()),
			zap.String("account_name", req.AccountName),
			zap.String("file_type", string(req.FileType)))
		return req, d.Name()
	}

	dc.logger.Info("no decoder matched, using defaults",
		zap.String("content_type", c.ContentType()),
		zap.Int("body_bytes", len(body)),
		zap.String("body", strings.ToValidUTF8(string(body), "?")))
	return defaultRequest(), defaultDecoder
}

func readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	defer c.Request.Body.Close()
	return io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
}
