// Package docs holds the swagger document for the JSON API.
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
                "summary": "Liveness and number of mounted views",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.HealthResponse"}}
                }
            }
        },
        "/views": {
            "post": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Mount a user directory view",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/apidocs.ViewResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/apidocs.ErrorResponse"}}
                }
            }
        },
        "/views/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Current state of a view",
                "parameters": [
                    {"type": "string", "description": "View ID", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Block until the initial fetch concludes", "name": "wait", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.ViewResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apidocs.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["views"],
                "summary": "Tear a view down",
                "parameters": [
                    {"type": "string", "description": "View ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apidocs.ErrorResponse"}}
                }
            }
        },
        "/views/{id}/search": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Set the search term",
                "parameters": [
                    {"type": "string", "description": "View ID", "name": "id", "in": "path", "required": true},
                    {"description": "Search term", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/apidocs.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.ViewResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apidocs.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apidocs.ErrorResponse"}}
                }
            }
        },
        "/views/{id}/sort": {
            "post": {
                "description": "Same column while ascending flips to descending; anything else sorts ascending.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Request a sort by column",
                "parameters": [
                    {"type": "string", "description": "View ID", "name": "id", "in": "path", "required": true},
                    {"description": "Column", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/apidocs.SortRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.ViewResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apidocs.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apidocs.ErrorResponse"}}
                }
            }
        },
        "/views/{id}/page/next": {
            "post": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Go to the next page (ignored on the last page)",
                "parameters": [
                    {"type": "string", "description": "View ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.ViewResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apidocs.ErrorResponse"}}
                }
            }
        },
        "/views/{id}/page/prev": {
            "post": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Go to the previous page (ignored on the first page)",
                "parameters": [
                    {"type": "string", "description": "View ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.ViewResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apidocs.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apidocs.ColumnResponse": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean", "example": true},
                "indicator": {"type": "string", "example": "▲"},
                "key": {"type": "string", "example": "first_name"},
                "label": {"type": "string", "example": "First Name"}
            }
        },
        "apidocs.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "view not found"}
            }
        },
        "apidocs.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "views": {"type": "integer", "example": 3}
            }
        },
        "apidocs.SearchRequest": {
            "type": "object",
            "properties": {
                "term": {"type": "string", "maxLength": 200, "example": "janet"}
            }
        },
        "apidocs.SortRequest": {
            "type": "object",
            "properties": {
                "key": {"type": "string", "enum": ["id", "first_name", "last_name", "email"], "example": "last_name"}
            }
        },
        "apidocs.SortResponse": {
            "type": "object",
            "properties": {
                "direction": {"type": "string", "enum": ["ascending", "descending"], "example": "ascending"},
                "key": {"type": "string", "enum": ["id", "first_name", "last_name", "email"], "example": "id"}
            }
        },
        "apidocs.UserResponse": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string", "example": "https://reqres.in/img/faces/1-image.jpg"},
                "email": {"type": "string", "example": "george.bluth@reqres.in"},
                "first_name": {"type": "string", "example": "George"},
                "id": {"type": "integer", "example": 1},
                "last_name": {"type": "string", "example": "Bluth"}
            }
        },
        "apidocs.ViewResponse": {
            "type": "object",
            "properties": {
                "columns": {"type": "array", "items": {"$ref": "#/definitions/apidocs.ColumnResponse"}},
                "hasNext": {"type": "boolean", "example": true},
                "hasPrev": {"type": "boolean", "example": false},
                "id": {"type": "string", "example": "5f0c3a52-6f8e-4a34-9a53-3c6c1f0bf7c1"},
                "loading": {"type": "boolean", "example": false},
                "page": {"type": "integer", "example": 1},
                "pageSize": {"type": "integer", "example": 2},
                "search": {"type": "string", "example": ""},
                "sort": {"$ref": "#/definitions/apidocs.SortResponse"},
                "totalPages": {"type": "integer", "example": 3},
                "totalUsers": {"type": "integer", "example": 6},
                "users": {"type": "array", "items": {"$ref": "#/definitions/apidocs.UserResponse"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "User Directory API",
	Description:      "Mount user directory views and drive their search, sort and pagination.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
