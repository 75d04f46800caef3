// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"},
        "BasicAuth": {"type": "basic"}
    },
    "paths": {
        "/api/auth/register": {
            "post": {
                "tags": ["auth"], "summary": "Register a new user",
                "consumes": ["application/x-protobuf", "application/json"],
                "produces": ["application/x-protobuf", "application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/registrationRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/userSimple"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorInfo"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["auth"], "summary": "Login",
                "consumes": ["application/x-protobuf", "application/json"],
                "produces": ["application/x-protobuf", "application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorInfo"}}
                }
            }
        },
        "/api/news": {
            "get": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["news"], "summary": "List or search news",
                "produces": ["application/x-protobuf", "application/json"],
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"},
                    {"type": "string", "name": "title", "in": "query"},
                    {"type": "string", "name": "titleLike", "in": "query"},
                    {"type": "string", "name": "text", "in": "query"},
                    {"type": "string", "name": "textLike", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/newsSimpleList"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["news"], "summary": "Create news",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/newsSimple"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/newsSimple"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorInfo"}}
                }
            }
        },
        "/api/news/{id}": {
            "get": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["news"], "summary": "Get news with its comments",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/news"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorInfo"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["news"], "summary": "Update news",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/newsSimple"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorInfo"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["news"], "summary": "Delete news and its comments",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorInfo"}}}
            }
        },
        "/api/comment": {
            "get": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["comment"], "summary": "List or search comments",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"},
                    {"type": "string", "name": "text", "in": "query"},
                    {"type": "string", "name": "textLike", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/commentSimpleList"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["comment"], "summary": "Create comment",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/commentSimple"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/commentSimple"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorInfo"}}
                }
            }
        },
        "/api/comment/{id}": {
            "get": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["comment"], "summary": "Get comment with its news",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorInfo"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["comment"], "summary": "Update comment",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/commentSimple"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["comment"], "summary": "Delete comment",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/user": {
            "get": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["user"], "summary": "List users",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/userSimpleList"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["user"], "summary": "Create user",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/userSimple"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/userSimple"}}}
            }
        },
        "/api/user/{id}": {
            "get": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["user"], "summary": "Get user with news and comments",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorInfo"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["user"], "summary": "Update user",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/userSimple"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}, {"BasicAuth": []}],
                "tags": ["user"], "summary": "Delete user with everything they wrote",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "errorInfo": {"type": "object", "properties": {"url": {"type": "string"}, "message": {"type": "string"}, "timestamp": {"type": "string"}}},
        "registrationRequest": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "loginRequest": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "loginResponse": {"type": "object", "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/userSimple"}}},
        "newsSimple": {"type": "object", "properties": {"id": {"type": "integer"}, "date": {"type": "string"}, "title": {"type": "string"}, "text": {"type": "string"}, "userId": {"type": "integer"}}},
        "newsSimpleList": {"type": "object", "properties": {"news": {"type": "array", "items": {"$ref": "#/definitions/newsSimple"}}}},
        "news": {"type": "object", "properties": {"id": {"type": "integer"}, "date": {"type": "string"}, "title": {"type": "string"}, "text": {"type": "string"}, "userId": {"type": "integer"}, "comments": {"type": "array", "items": {"$ref": "#/definitions/commentSimple"}}}},
        "commentSimple": {"type": "object", "properties": {"id": {"type": "integer"}, "date": {"type": "string"}, "text": {"type": "string"}, "userId": {"type": "integer"}, "newsId": {"type": "integer"}}},
        "commentSimpleList": {"type": "object", "properties": {"comments": {"type": "array", "items": {"$ref": "#/definitions/commentSimple"}}}},
        "userSimple": {"type": "object", "properties": {"id": {"type": "integer"}, "username": {"type": "string"}, "password": {"type": "string"}, "active": {"type": "boolean"}, "roles": {"type": "array", "items": {"type": "string", "enum": ["ADMIN", "JOURNALIST", "SUBSCRIBER"]}}}},
        "userSimpleList": {"type": "object", "properties": {"users": {"type": "array", "items": {"$ref": "#/definitions/userSimple"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Newsroom API",
	Description:      "Role-gated news, comments and users. Protobuf by default, JSON on request.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
