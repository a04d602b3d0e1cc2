// Package docs содержит спецификацию Swagger 2.0 для /swagger/*any.
// Поддерживается вручную в формате swag и должна совпадать с аннотациями в internal/api/rest/handlers.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ai_recommendation": {
            "post": {
                "description": "Принимает JSON с названием счета и типом отчетности и возвращает рекомендованный стандартный счет.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recommendations"],
                "summary": "Рекомендовать стандартный счет",
                "parameters": [
                    {
                        "description": "Счет для классификации",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.AccountRecommendationRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Рекомендация", "schema": {"$ref": "#/definitions/models.AccountRecommendationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.AccountRecommendationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.AccountRecommendationResponse"}}
                }
            }
        },
        "/ai_recommendation_test": {
            "get": {
                "description": "Принимает параметры в query string, JSON, форме или сыром теле. Нечитаемый ввод заменяется значениями по умолчанию.",
                "produces": ["application/json"],
                "tags": ["recommendations"],
                "summary": "Тестовая рекомендация",
                "parameters": [
                    {"type": "string", "default": "Sample Account", "description": "Название счета", "name": "account_name", "in": "query"},
                    {"type": "string", "default": "bs", "description": "Тип отчетности (bs, pl, cf)", "name": "file_type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Рекомендация", "schema": {"$ref": "#/definitions/models.AccountRecommendationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.AccountRecommendationResponse"}}
                }
            },
            "post": {
                "description": "Принимает параметры в query string, JSON, форме или сыром теле. Нечитаемый ввод заменяется значениями по умолчанию.",
                "consumes": ["application/json", "application/x-www-form-urlencoded", "text/plain"],
                "produces": ["application/json"],
                "tags": ["recommendations"],
                "summary": "Тестовая рекомендация",
                "parameters": [
                    {"type": "string", "default": "Sample Account", "description": "Название счета", "name": "account_name", "in": "query"},
                    {"type": "string", "default": "bs", "description": "Тип отчетности (bs, pl, cf)", "name": "file_type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Рекомендация", "schema": {"$ref": "#/definitions/models.AccountRecommendationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.AccountRecommendationResponse"}}
                }
            }
        },
        "/api_test": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Проверка API",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "models.AccountRecommendationRequest": {
            "type": "object",
            "required": ["account_name"],
            "properties": {
                "account_name": {"type": "string"},
                "file_type": {"type": "string", "enum": ["bs", "pl", "cf"]}
            }
        },
        "models.AccountRecommendationResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "recommendation": {"$ref": "#/definitions/models.Recommendation"},
                "success": {"type": "boolean"}
            }
        },
        "models.Recommendation": {
            "type": "object",
            "properties": {
                "account_name": {"type": "string"},
                "account_type": {"type": "string"},
                "confidence": {"type": "number"},
                "rationale": {"type": "string"},
                "standard_account_code": {"type": "string"},
                "standard_account_name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5001",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Account Recommendation Stub API",
	Description:      "Заглушка сервиса рекомендаций стандартных счетов для проверки клиентов.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
