// Package docs holds the OpenAPI description served under /swagger. It is
// kept in the layout swag emits; update it by hand with the route annotations.
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
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/api/auth": {
            "post": {
                "description": "Checks the fixed credential pair and returns the session token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [{"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/inventory_dashboard.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory_dashboard.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/inventory_dashboard.MessageResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/inventory_dashboard.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/inventory_dashboard.MessageResponse"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory_dashboard.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/inventory_dashboard.ErrorResponse"}}
                }
            }
        },
        "/api/v1/products": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Query products",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"enum": ["id", "name", "price", "category", "stock"], "type": "string", "name": "sortBy", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "name": "sortOrder", "in": "query"},
                    {"type": "string", "name": "filter", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory_dashboard.ProductsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/inventory_dashboard.ErrorResponse"}}
                }
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard state",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory_dashboard.DashboardResponse"}}}
            }
        },
        "/api/v1/dashboard/refresh": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Refresh dashboard",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory_dashboard.DashboardResponse"}}}
            }
        },
        "/api/v1/dashboard/page": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Go to page",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/inventory_dashboard.SetPageRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory_dashboard.DashboardResponse"}}}
            }
        },
        "/api/v1/dashboard/page-size": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Change page size",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/inventory_dashboard.SetPageSizeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory_dashboard.DashboardResponse"}}}
            }
        },
        "/api/v1/dashboard/sort": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Sort by column",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/inventory_dashboard.SetSortRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory_dashboard.DashboardResponse"}}}
            }
        },
        "/api/v1/dashboard/filter": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Filter rows",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/inventory_dashboard.SetFilterRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory_dashboard.DashboardResponse"}}}
            }
        },
        "/api/v1/dashboard/chart": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Category chart",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryCount"}}}}
            }
        },
        "/api/v1/logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "List activity",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"},
                    {"type": "string", "description": "comma-separated LOGIN, LOGIN_FAILED, LOGOUT, FETCH_FAILED", "name": "type", "in": "query"},
                    {"type": "integer", "description": "max entries, default 100, capped at 1000", "name": "limit", "in": "query"},
                    {"enum": ["desc", "asc"], "type": "string", "default": "desc", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "count, events", "schema": {"type": "object", "properties": {
                        "count": {"type": "integer"},
                        "events": {"type": "array", "items": {"$ref": "#/definitions/models.ActivityEvent"}}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/inventory_dashboard.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "inventory_dashboard.LoginRequest": {"type": "object", "properties": {"username": {"type": "string", "example": "shrisant"}, "password": {"type": "string", "example": "shrisantp"}}},
        "inventory_dashboard.TokenResponse": {"type": "object", "properties": {"token": {"type": "string", "example": "mocked_token"}}},
        "inventory_dashboard.MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "inventory_dashboard.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "inventory_dashboard.SetPageRequest": {"type": "object", "required": ["page"], "properties": {"page": {"type": "integer", "example": 2}}},
        "inventory_dashboard.SetPageSizeRequest": {"type": "object", "required": ["page_size"], "properties": {"page_size": {"type": "integer", "example": 20}}},
        "inventory_dashboard.SetSortRequest": {"type": "object", "required": ["field"], "properties": {"field": {"type": "string", "example": "price"}}},
        "inventory_dashboard.SetFilterRequest": {"type": "object", "required": ["text"], "properties": {"text": {"type": "string", "example": "book"}}},
        "inventory_dashboard.ProductsResponse": {"type": "object", "properties": {
            "data": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}},
            "total": {"type": "integer"}, "page": {"type": "integer"}, "limit": {"type": "integer"}, "total_pages": {"type": "integer"}}},
        "inventory_dashboard.DashboardResponse": {"type": "object", "properties": {
            "items": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}},
            "total": {"type": "integer"}, "loading": {"type": "boolean"}, "error": {"type": "string"},
            "page": {"type": "integer"}, "page_size": {"type": "integer"}, "sort_field": {"type": "string"},
            "sort_order": {"type": "string"}, "filter_text": {"type": "string"}, "request_seq": {"type": "integer"},
            "total_pages": {"type": "integer"},
            "chart": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryCount"}}}},
        "models.Product": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "price": {"type": "number"},
            "category": {"type": "string"}, "stock": {"type": "integer"}}},
        "models.CategoryCount": {"type": "object", "properties": {"name": {"type": "string"}, "value": {"type": "integer"}}},
        "models.ActivityEvent": {"type": "object", "properties": {
            "id": {"type": "string"}, "at": {"type": "string", "format": "date-time"},
            "type": {"type": "string", "enum": ["LOGIN", "LOGIN_FAILED", "LOGOUT", "FETCH_FAILED"]},
            "message": {"type": "string"}, "meta": {"type": "object", "additionalProperties": true}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inventory Dashboard API",
	Description:      "Authenticated product dashboard: paging, sorting, filtering and a category chart over a generated catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
