package generator

import (
	"math/rand"
	"time"

	"account-recommendation/internal/models"
)

// Названия счетов из отчетности JA по типам отчетов
var sampleAccounts = map[models.FileType][]string{
	models.FileTypeBalanceSheet: {
		"現金", "預金", "定期性貯金積金", "当座性貯金", "貸出金",
		"有価証券", "現金及び現金同等物", "借用金", "利益剰余金",
	},
	models.FileTypeProfitLoss: {
		"事業総利益", "信用事業総利益", "共済事業総利益", "事業収益", "事業費用",
		"借用金利息", "その他経常収益", "その他経常費用", "当期剰余金",
	},
	models.FileTypeCashFlow: {
		"営業活動によるキャッシュ・フロー", "投資活動によるキャッシュ・フロー",
		"財務活動によるキャッシュ・フロー", "現金及び現金同等物の期末残高",
		"貸出金の純増減", "預金の純増減",
	},
}

var fileTypes = []models.FileType{
	models.FileTypeBalanceSheet,
	models.FileTypeProfitLoss,
	models.FileTypeCashFlow,
}

// RequestGenerator создает запросы рекомендаций для smoke-проверок
type RequestGenerator struct {
	rand *rand.Rand
}

func NewRequestGenerator() *RequestGenerator {
	return NewRequestGeneratorWithSeed(time.Now().UnixNano())
}

// NewRequestGeneratorWithSeed создает генератор с фиксированным зерном для воспроизводимых прогонов
func NewRequestGeneratorWithSeed(seed int64) *RequestGenerator {
	return &RequestGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// GenerateRequest возвращает запрос со случайным счетом заданного типа отчетности.
// Пустой или неизвестный тип заменяется случайным.
func (g *RequestGenerator) GenerateRequest(fileType models.FileType) *models.AccountRecommendationRequest {
	if !fileType.Valid() {
		fileType = fileTypes[g.rand.Intn(len(fileTypes))]
	}

	names := sampleAccounts[fileType]
	return &models.AccountRecommendationRequest{
		AccountName: names[g.rand.Intn(len(names))],
		FileType:    fileType,
	}
}

// GenerateBatch возвращает n запросов, перебирая типы отчетности по кругу
func (g *RequestGenerator) GenerateBatch(n int) []*models.AccountRecommendationRequest {
	batch := make([]*models.AccountRecommendationRequest, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, g.GenerateRequest(fileTypes[i%len(fileTypes)]))
	}
	return batch
}
