// Package docs registra el documento OpenAPI que sirve /swagger.
// Mantener en sync con las anotaciones godoc de internal/domain/analytics/handler.go.
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
        "/analytics/report": {
            "get": {
                "description": "KPIs de producción y distribuciones del hato para un modo temporal.",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Production report",
                "parameters": [
                    {
                        "enum": ["daily", "monthly", "yearly"],
                        "type": "string",
                        "description": "daily | monthly | yearly",
                        "name": "mode",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analytics.ReportResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}}
                }
            }
        },
        "/analytics/animals": {
            "get": {
                "description": "Peso efectivo, edad y si el peso es estimado, por animal.",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Effective weights",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/analytics.AnimalResponse"}}
                    },
                    "502": {"description": "Bad Gateway", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        }
    },
    "definitions": {
        "analytics.AnimalResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "gender": {"type": "string"},
                "birth_date": {"type": "string"},
                "recorded_weight": {"type": "number"},
                "stable_id": {"type": "integer"},
                "age_years": {"type": "number"},
                "effective_weight": {"type": "number"},
                "estimated": {"type": "boolean"},
                "milk_per_day": {"type": "number"}
            }
        },
        "analytics.ReportResponse": {
            "type": "object",
            "properties": {
                "snapshot_id": {"type": "string"},
                "generated_at": {"type": "string"},
                "data_available": {"type": "boolean"},
                "mode": {"type": "string", "enum": ["daily", "monthly", "yearly"]},
                "meat_total": {"type": "number"},
                "milk_production": {"type": "integer"},
                "average_weight": {"type": "integer"},
                "estimated_value": {"type": "integer"},
                "herd_size": {"type": "integer"},
                "breed_distribution": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "breed": {"type": "string"},
                            "average_weight": {"type": "integer"},
                            "count": {"type": "integer"},
                            "share": {"type": "number"}
                        }
                    }
                },
                "gender_distribution": {
                    "type": "array",
                    "items": {"type": "object", "properties": {"gender": {"type": "string"}, "count": {"type": "integer"}}}
                },
                "age_distribution": {
                    "type": "array",
                    "items": {"type": "object", "properties": {"age_group": {"type": "string"}, "count": {"type": "integer"}}}
                },
                "stable_distribution": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {"stable_id": {"type": "integer"}, "stable": {"type": "string"}, "count": {"type": "integer"}}
                    }
                },
                "vaccine_distribution": {
                    "type": "array",
                    "items": {"type": "object", "properties": {"type": {"type": "string"}, "count": {"type": "integer"}}}
                },
                "top_heaviest": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/analytics.AnimalResponse"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Herd Analytics API",
	Description:      "Estimación de pesos y KPIs de producción del hato.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
