package models

import (
	"fmt"
	"strings"
)

// FileType определяет, к какой финансовой отчетности относится счет
type FileType string

const (
	FileTypeBalanceSheet FileType = "bs"
	FileTypeProfitLoss   FileType = "pl"
	FileTypeCashFlow     FileType = "cf"
)

const (
	DefaultAccountName          = "Sample Account"
	DefaultFileType    FileType = FileTypeBalanceSheet
)

// Valid проверяет, что тег относится к известному типу отчетности
func (f FileType) Valid() bool {
	switch f {
	case FileTypeBalanceSheet, FileTypeProfitLoss, FileTypeCashFlow:
		return true
	}
	return false
}

// AccountRecommendationRequest представляет запрос на классификацию счета.
// Допустимость file_type проверяется в Validate после Normalize, чтобы "BS" и " bs " принимались.
type AccountRecommendationRequest struct {
	AccountName string   `json:"account_name" form:"account_name" binding:"required"`
	FileType    FileType `json:"file_type" form:"file_type" enums:"bs,pl,cf"`
}

// Normalize обрезает пробелы и подставляет тип отчетности по умолчанию
func (r *AccountRecommendationRequest) Normalize() {
	r.AccountName = strings.TrimSpace(r.AccountName)
	r.FileType = FileType(strings.ToLower(strings.TrimSpace(string(r.FileType))))
	if r.FileType == "" {
		r.FileType = DefaultFileType
	}
}

// Validate проверяет запрос после Normalize
func (r *AccountRecommendationRequest) Validate() error {
	if r.AccountName == "" {
		return fmt.Errorf("%w: account_name is required", ErrInvalidRequest)
	}
	if !r.FileType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFileType, r.FileType)
	}
	return nil
}

// Recommendation представляет рекомендованный стандартный счет
type Recommendation struct {
	AccountName         string  `json:"account_name"`
	StandardAccountCode string  `json:"standard_account_code"`
	StandardAccountName string  `json:"standard_account_name"`
	Confidence          float64 `json:"confidence"`
	Rationale           string  `json:"rationale"`
	AccountType         string  `json:"account_type"`
}

// AccountRecommendationResponse представляет ответ эндпоинта рекомендаций.
// Ровно одно из полей Recommendation или Error заполнено, в зависимости от Success.
type AccountRecommendationResponse struct {
	Success        bool            `json:"success"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	Error          string          `json:"error,omitempty"`
}

func NewSuccessResponse(rec *Recommendation) *AccountRecommendationResponse {
	return &AccountRecommendationResponse{Success: true, Recommendation: rec}
}

func NewErrorResponse(message string) *AccountRecommendationResponse {
	return &AccountRecommendationResponse{Success: false, Error: message}
}

// Validate проверяет инварианты ответа
func (r *AccountRecommendationResponse) Validate() error {
	if r.Success {
		if r.Recommendation == nil {
			return fmt.Errorf("%w: success response without recommendation", ErrMalformedResponse)
		}
		if r.Error != "" {
			return fmt.Errorf("%w: success response carries an error", ErrMalformedResponse)
		}
		if r.Recommendation.Confidence < 0 || r.Recommendation.Confidence > 1 {
			return fmt.Errorf("%w: confidence %v out of range", ErrMalformedResponse, r.Recommendation.Confidence)
		}
		return nil
	}
	if r.Recommendation != nil {
		return fmt.Errorf("%w: failed response carries a recommendation", ErrMalformedResponse)
	}
	if r.Error == "" {
		return fmt.Errorf("%w: failed response without error message", ErrMalformedResponse)
	}
	return nil
}
