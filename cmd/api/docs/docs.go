// Package docs registers the OpenAPI document served at /swagger.
// The document is maintained by hand in the layout swag init produces. It lists
// routes, path parameters and security only; request and response schemas are not
// described, so keep it in step with handler/routes.go when routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    },
    "paths": {
        "/health": {"get": {"tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK"}, "503": {"description": "Degraded"}}}},
        "/users": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["users"], "summary": "List users", "parameters": [{"type": "string", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["users"], "summary": "Create a user", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}}}
        },
        "/users/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["users"], "summary": "Get a user", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["users"], "summary": "Update a user", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["users"], "summary": "Delete a user", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/users/state/{id}": {"put": {"security": [{"ApiKeyAuth": []}], "tags": ["users"], "summary": "Toggle user state", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/roles": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["roles"], "summary": "List roles", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["roles"], "summary": "Create a role", "responses": {"201": {"description": "Created"}}}
        },
        "/roles/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["roles"], "summary": "Get a role", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["roles"], "summary": "Update a role", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["roles"], "summary": "Delete a role", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/roles/state/{id}": {"put": {"security": [{"ApiKeyAuth": []}], "tags": ["roles"], "summary": "Toggle role state", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/permissions": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["roles"], "summary": "List permissions", "responses": {"200": {"description": "OK"}}}},
        "/surveys": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["surveys"], "summary": "List surveys", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["surveys"], "summary": "Create a survey", "responses": {"201": {"description": "Created"}}}
        },
        "/surveys/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["surveys"], "summary": "Get a survey", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["surveys"], "summary": "Update survey metadata", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/surveys/state/{id}": {"put": {"security": [{"ApiKeyAuth": []}], "tags": ["surveys"], "summary": "Toggle survey state", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/surveys/{id}/structure": {"put": {"security": [{"ApiKeyAuth": []}], "tags": ["editor"], "summary": "Replace survey structure", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/surveys/{id}/editor": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["editor"], "summary": "Get editor session", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["editor"], "summary": "Discard editor session", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/surveys/{id}/editor/actions": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["editor"], "summary": "Apply an editor action", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Editor is renaming a section"}}}},
        "/surveys/{id}/editor/save": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["editor"], "summary": "Save editor session", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/question-types": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["editor"], "summary": "List question types", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Survey Console API",
	Description:      "Administration API for users, roles, surveys and the survey structuring editor.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
