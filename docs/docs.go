// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler
// annotations.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Logout",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/auth/session": {
            "get": {
                "tags": ["auth"],
                "summary": "Current session state",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/prompts": {
            "get": {
                "tags": ["prompts"],
                "summary": "List prompts through the active filter",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["prompts"],
                "summary": "Create a new prompt",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/prompts/filters": {
            "put": {
                "tags": ["prompts"],
                "summary": "Update the active filter spec",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/prompts/categories": {
            "get": {
                "tags": ["prompts"],
                "summary": "List prompt categories",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/prompts/favorites": {
            "get": {
                "tags": ["prompts"],
                "summary": "List favorite prompts",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/prompts/recent": {
            "get": {
                "tags": ["prompts"],
                "summary": "List the recent-prompts slice of the collection",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/prompts/{id}": {
            "get": {
                "tags": ["prompts"],
                "summary": "Get a prompt by id",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["prompts"],
                "summary": "Update a prompt",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}}
            },
            "delete": {
                "tags": ["prompts"],
                "summary": "Delete a prompt",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/prompts/{id}/favorite": {
            "post": {
                "tags": ["prompts"],
                "summary": "Toggle a prompt's favorite flag",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/templates": {
            "get": {
                "tags": ["templates"],
                "summary": "List built-in prompt templates",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/templates/render": {
            "post": {
                "tags": ["templates"],
                "summary": "Render a template with variables",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/tools": {
            "get": {
                "tags": ["tools"],
                "summary": "List catalog tools",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/tools/categories": {
            "get": {
                "tags": ["tools"],
                "summary": "List tool catalog categories",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/tools/recommendations": {
            "get": {
                "tags": ["tools"],
                "summary": "Recommend tools for a prompt category",
                "parameters": [{"name": "category", "in": "query", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Prompt Library API",
	Description:      "Personal prompt library: prompts, templates, tool recommendations and session auth.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
