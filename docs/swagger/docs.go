// Package swagger registers the API description served at /swagger.
// Regenerate with: swag init -g cmd/start.go -o docs/swagger
package swagger

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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Liveness",
                "responses": {
                    "200": {"description": "API Working", "schema": {"type": "string"}}
                }
            }
        },
        "/api/user/status": {
            "get": {
                "description": "Pings the database backing the user router and returns pool statistics.",
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "User Router Status",
                "responses": {
                    "200": {"description": "Database up", "schema": {"$ref": "#/definitions/user.Status"}},
                    "503": {"description": "Database down", "schema": {"$ref": "#/definitions/user.Status"}}
                }
            }
        },
        "/api/image": {
            "get": {
                "produces": ["application/json"],
                "tags": ["image"],
                "summary": "List Images",
                "responses": {
                    "200": {"description": "Image names", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/api/image/{name}": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["image"],
                "summary": "Get Image",
                "parameters": [{"type": "string", "description": "Image name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Image content", "schema": {"type": "file"}},
                    "400": {"description": "Invalid name", "schema": {"$ref": "#/definitions/error"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/error"}}
                }
            },
            "put": {
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["image"],
                "summary": "Store Image",
                "parameters": [{"type": "string", "description": "Image name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Stored", "schema": {"type": "object"}},
                    "400": {"description": "Invalid name", "schema": {"$ref": "#/definitions/error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/error"}}
                }
            },
            "delete": {
                "tags": ["image"],
                "summary": "Delete Image",
                "parameters": [{"type": "string", "description": "Image name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "400": {"description": "Invalid name", "schema": {"$ref": "#/definitions/error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        }
    },
    "definitions": {
        "error": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "user.Status": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "idle": {"type": "integer"},
                "in_use": {"type": "integer"},
                "open_connections": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Imagine API",
	Description:      "Backend for the Imagine frontend: user and image routers behind an origin allow-list.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
