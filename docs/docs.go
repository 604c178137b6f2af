// Package docs registers the Swagger 2.0 document served at /swagger/*.
// It is maintained by hand alongside the handler annotations in api/http/handlers;
// docs_test.go checks it still parses and lists every route.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/content/home": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Home page content",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.Home"}}
                }
            }
        },
        "/content/services": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Service lines",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.Service"}}}
                }
            }
        },
        "/content/services/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "One service line",
                "parameters": [
                    {"type": "string", "description": "Service slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.Service"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/quotes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Generate a freight quote",
                "parameters": [
                    {"description": "Quote request", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/quote.Request"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/quotes/defaults": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Quote form defaults",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/quote.Request"}}
                }
            }
        },
        "/tracking/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tracking"],
                "summary": "Track a shipment",
                "parameters": [
                    {"type": "string", "description": "Tracking ID (case-insensitive)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tracking.Shipment"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Talk to SwiftBot",
                "parameters": [
                    {"description": "Chat message", "name": "input", "in": "body", "required": true, "schema": {"type": "object", "properties": {"message": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"reply": {"$ref": "#/definitions/chat.Message"}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Operator login",
                "parameters": [
                    {"description": "login payload", "name": "input", "in": "body", "required": true, "schema": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/shipments/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "The path id wins over any trackingId in the body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["console"],
                "summary": "Replace a shipment record",
                "parameters": [
                    {"type": "string", "description": "Tracking ID", "name": "id", "in": "path", "required": true},
                    {"description": "Shipment", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/tracking.Shipment"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tracking.Shipment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["console"],
                "summary": "Delete a shipment record",
                "parameters": [
                    {"type": "string", "description": "Tracking ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "catalog.Highlight": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "text": {"type": "string"}}
        },
        "catalog.Home": {
            "type": "object",
            "properties": {
                "headline": {"type": "string"},
                "tagline": {"type": "string"},
                "intro": {"type": "string"},
                "highlights": {"type": "array", "items": {"$ref": "#/definitions/catalog.Highlight"}},
                "callToAction": {"$ref": "#/definitions/catalog.Highlight"},
                "demoTrackingId": {"type": "string"}
            }
        },
        "catalog.Service": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "slug": {"type": "string"},
                "title": {"type": "string"},
                "transport": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "chat.Message": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "model"]},
                "text": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "quote.Request": {
            "type": "object",
            "required": ["origin", "destination", "weight", "type"],
            "properties": {
                "origin": {"type": "string"},
                "destination": {"type": "string"},
                "weight": {"type": "number"},
                "dimensions": {"type": "string"},
                "type": {"type": "string", "enum": ["air", "ocean", "road", "rail"]}
            }
        },
        "quote.Response": {
            "type": "object",
            "properties": {
                "estimatedCost": {"type": "number"},
                "currency": {"type": "string"},
                "transitTimeDays": {"type": "string"},
                "routeSummary": {"type": "string"},
                "recommendation": {"type": "string"}
            }
        },
        "tracking.Shipment": {
            "type": "object",
            "properties": {
                "trackingId": {"type": "string"},
                "origin": {"type": "string"},
                "destination": {"type": "string"},
                "estimatedDelivery": {"type": "string"},
                "currentStatus": {"type": "string"},
                "updates": {"type": "array", "items": {"$ref": "#/definitions/tracking.Update"}}
            }
        },
        "tracking.Update": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "location": {"type": "string"},
                "status": {"type": "string"},
                "description": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Console token. Accepted formats: \"Bearer <JWT>\" or \"<JWT>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "SwiftStream Logistics API",
	Description:      "Marketing content, AI freight quotes, shipment tracking and the SwiftBot assistant for the SwiftStream Logistics site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
