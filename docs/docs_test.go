package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc_ValidJSONWithRoutes(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec struct {
		Swagger     string                            `json:"swagger"`
		Paths       map[string]map[string]interface{} `json:"paths"`
		Definitions map[string]interface{}            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))

	assert.Equal(t, "2.0", spec.Swagger)
	assert.Contains(t, spec.Paths["/ai_recommendation"], "post")
	assert.Contains(t, spec.Paths["/ai_recommendation_test"], "get")
	assert.Contains(t, spec.Paths["/ai_recommendation_test"], "post")
	assert.Contains(t, spec.Paths["/api_test"], "get")

	for _, name := range []string{"models.AccountRecommendationRequest", "models.AccountRecommendationResponse", "models.Recommendation"} {
		assert.Contains(t, spec.Definitions, name)
	}
}
