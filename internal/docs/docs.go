// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
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
        "/api/health": {
            "get": {"tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SignUpRequest"}}],
                "responses": {
                    "303": {"description": "Redirect to /"},
                    "400": {"description": "Invalid fields or passwords do not match", "schema": {"$ref": "#/definitions/handlers.FormErrorResponse"}},
                    "409": {"description": "Username already exists", "schema": {"$ref": "#/definitions/handlers.FormErrorResponse"}}
                }
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SignInRequest"}}],
                "responses": {
                    "303": {"description": "Redirect to /"},
                    "400": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/handlers.FormErrorResponse"}},
                    "401": {"description": "Incorrect username or password", "schema": {"$ref": "#/definitions/handlers.FormErrorResponse"}}
                }
            }
        },
        "/auth/sign-out": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign out",
                "responses": {
                    "303": {"description": "Redirect to /sign-in"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.FormErrorResponse"}}
                }
            }
        },
        "/api/auth/session": {
            "get": {"tags": ["auth"], "summary": "Current session", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SessionResponse"}}}}
        },
        "/api/accounts": {
            "get": {
                "security": [{"SessionCookie": []}],
                "tags": ["accounts"],
                "summary": "List accounts",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            },
            "post": {
                "security": [{"SessionCookie": []}],
                "tags": ["accounts"],
                "summary": "Create account",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AccountRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Account"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            }
        },
        "/api/accounts/bulk-delete": {
            "post": {
                "security": [{"SessionCookie": []}],
                "tags": ["accounts"],
                "summary": "Bulk delete accounts",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.BulkDeleteRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.IDResponse"}}}}
            }
        },
        "/api/accounts/{id}": {
            "get": {
                "security": [{"SessionCookie": []}],
                "tags": ["accounts"],
                "summary": "Get account",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Account"}}, "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            },
            "patch": {
                "security": [{"SessionCookie": []}],
                "tags": ["accounts"],
                "summary": "Rename account",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AccountRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Account"}}, "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            },
            "delete": {
                "security": [{"SessionCookie": []}],
                "tags": ["accounts"],
                "summary": "Delete account",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.IDResponse"}}, "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            }
        },
        "/api/categories": {
            "get": {
                "security": [{"SessionCookie": []}],
                "tags": ["categories"],
                "summary": "List categories",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"SessionCookie": []}],
                "tags": ["categories"],
                "summary": "Create category",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CategoryRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Category"}}}
            }
        },
        "/api/categories/bulk-delete": {
            "post": {
                "security": [{"SessionCookie": []}],
                "tags": ["categories"],
                "summary": "Bulk delete categories",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.BulkDeleteRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.IDResponse"}}}}
            }
        },
        "/api/categories/{id}": {
            "get": {
                "security": [{"SessionCookie": []}],
                "tags": ["categories"],
                "summary": "Get category",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}}}
            },
            "patch": {
                "security": [{"SessionCookie": []}],
                "tags": ["categories"],
                "summary": "Rename category",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CategoryRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}}}
            },
            "delete": {
                "security": [{"SessionCookie": []}],
                "tags": ["categories"],
                "summary": "Delete category",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.IDResponse"}}}
            }
        },
        "/api/transactions": {
            "get": {
                "security": [{"SessionCookie": []}],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"},
                    {"type": "string", "name": "accountId", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/services.TransactionRow"}}}}
            },
            "post": {
                "security": [{"SessionCookie": []}],
                "tags": ["transactions"],
                "summary": "Create transaction",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TransactionRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Transaction"}}}
            }
        },
        "/api/transactions/bulk-create": {
            "post": {
                "security": [{"SessionCookie": []}],
                "tags": ["transactions"],
                "summary": "Bulk create transactions",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.TransactionRequest"}}}],
                "responses": {"201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}}}
            }
        },
        "/api/transactions/bulk-delete": {
            "post": {
                "security": [{"SessionCookie": []}],
                "tags": ["transactions"],
                "summary": "Bulk delete transactions",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.BulkDeleteRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.IDResponse"}}}}
            }
        },
        "/api/transactions/{id}": {
            "get": {
                "security": [{"SessionCookie": []}],
                "tags": ["transactions"],
                "summary": "Get transaction",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Transaction"}}}
            },
            "patch": {
                "security": [{"SessionCookie": []}],
                "tags": ["transactions"],
                "summary": "Update transaction",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TransactionRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Transaction"}}}
            },
            "delete": {
                "security": [{"SessionCookie": []}],
                "tags": ["transactions"],
                "summary": "Delete transaction",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.IDResponse"}}}
            }
        },
        "/api/summary": {
            "get": {
                "security": [{"SessionCookie": []}],
                "tags": ["summary"],
                "summary": "Dashboard summary",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"},
                    {"type": "string", "name": "accountId", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/summary.Summary"}}}
            }
        }
    },
    "definitions": {
        "handlers.AccountRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string", "maxLength": 100}}},
        "handlers.CategoryRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string", "maxLength": 100}}},
        "handlers.BulkDeleteRequest": {"type": "object", "required": ["ids"], "properties": {"ids": {"type": "array", "items": {"type": "string"}}}},
        "handlers.IDResponse": {"type": "object", "properties": {"id": {"type": "string"}}},
        "handlers.ErrorDetail": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}}},
        "handlers.ErrorResponse": {"type": "object", "properties": {"error": {"$ref": "#/definitions/handlers.ErrorDetail"}}},
        "handlers.FormErrorResponse": {"type": "object", "properties": {"fieldError": {"type": "object", "additionalProperties": {"type": "string"}}, "formError": {"type": "string"}}},
        "handlers.SignUpRequest": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}, "confirmPassword": {"type": "string"}}},
        "handlers.SignInRequest": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "handlers.SessionResponse": {"type": "object", "properties": {"user": {"$ref": "#/definitions/models.User"}, "session": {"$ref": "#/definitions/models.Session"}}},
        "handlers.TransactionRequest": {
            "type": "object",
            "required": ["accountId", "amount", "date", "payee"],
            "properties": {
                "date": {"type": "string"},
                "accountId": {"type": "string"},
                "categoryId": {"type": "string"},
                "payee": {"type": "string", "maxLength": 255},
                "amount": {"type": "integer"},
                "notes": {"type": "string", "maxLength": 1000}
            }
        },
        "models.User": {"type": "object", "properties": {"id": {"type": "string"}, "username": {"type": "string"}}},
        "models.Session": {"type": "object", "properties": {"id": {"type": "string"}, "userId": {"type": "string"}, "expiresAt": {"type": "string"}, "fresh": {"type": "boolean"}}},
        "models.Account": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}}},
        "models.Category": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}}},
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "date": {"type": "string"},
                "accountId": {"type": "string"},
                "categoryId": {"type": "string"},
                "payee": {"type": "string"},
                "amount": {"type": "integer"},
                "notes": {"type": "string"}
            }
        },
        "services.TransactionRow": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "date": {"type": "string"},
                "category": {"type": "string"},
                "categoryId": {"type": "string"},
                "payee": {"type": "string"},
                "amount": {"type": "integer"},
                "notes": {"type": "string"},
                "account": {"type": "string"},
                "accountId": {"type": "string"}
            }
        },
        "summary.CategoryTotal": {"type": "object", "properties": {"name": {"type": "string"}, "value": {"type": "integer"}}},
        "summary.DayTotal": {"type": "object", "properties": {"date": {"type": "string"}, "income": {"type": "integer"}, "expenses": {"type": "integer"}}},
        "summary.Summary": {
            "type": "object",
            "properties": {
                "remainingAmount": {"type": "integer"},
                "remainingChange": {"type": "number"},
                "incomeAmount": {"type": "integer"},
                "incomeChange": {"type": "number"},
                "expensesAmount": {"type": "integer"},
                "expensesChange": {"type": "number"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/summary.CategoryTotal"}},
                "days": {"type": "array", "items": {"$ref": "#/definitions/summary.DayTotal"}}
            }
        }
    },
    "securityDefinitions": {
        "SessionCookie": {"type": "apiKey", "name": "auth_session", "in": "cookie"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Finboard API",
	Description:      "Finboard is a personal finance dashboard: accounts, categories, transactions and a period summary.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
