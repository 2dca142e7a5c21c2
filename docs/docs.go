// Package docs registers the OpenAPI document served under /swagger.
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
        "/login": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login screen",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginScreen"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorBody"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/login/screens": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Open a login screen",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.screenResponse"}}
                }
            }
        },
        "/login/screens/{id}": {
            "delete": {
                "tags": ["auth"],
                "summary": "Dispose a login screen",
                "parameters": [
                    {"type": "string", "description": "Screen id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/login/demo/{role}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Demo login",
                "parameters": [
                    {"type": "string", "description": "admin, manager or provider", "name": "role", "in": "path", "required": true},
                    {"type": "string", "description": "Login screen id", "name": "screen_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/logout": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK"},
                    "428": {"description": "Confirmation required"}
                }
            }
        },
        "/schedule": {
            "get": {
                "produces": ["application/json"],
                "tags": ["schedule"],
                "summary": "Filtered schedule",
                "parameters": [
                    {"type": "string", "description": "Today, Tomorrow, Yesterday or All", "name": "date", "in": "query"},
                    {"type": "string", "description": "all, scheduled or completed", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/schedule/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["schedule"],
                "summary": "Visit detail",
                "parameters": [
                    {"type": "string", "description": "Visit id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "screen_id": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "navigation": {"type": "object"},
                "user": {"type": "object"},
                "discarded": {"type": "boolean"}
            }
        },
        "handler.loginScreen": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "subtitle": {"type": "string"},
                "footer": {"type": "string"},
                "demo_title": {"type": "string"},
                "demo_accounts": {"type": "array", "items": {"type": "object"}}
            }
        },
        "handler.screenResponse": {
            "type": "object",
            "properties": {
                "screen_id": {"type": "string"}
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
	Title:            "Home Aid Care Portal API",
	Description:      "Screen API for the Home Aid staff portal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
