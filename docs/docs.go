// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/tables": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tables"],
                "summary": "List truth tables",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.OffsetResult-domain_Evaluation"}}
                }
            },
            "post": {
                "description": "Parses the equation, enumerates every input assignment and stores the truth table",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tables"],
                "summary": "Evaluate an equation",
                "parameters": [
                    {"description": "Equation", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TableRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TableResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.SyntaxErrorResponse"}}
                }
            }
        },
        "/api/v1/tables/batch": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tables"],
                "summary": "Evaluate equations in bulk",
                "parameters": [
                    {"description": "Equations", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BatchTableRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.TableResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.SyntaxErrorResponse"}}
                }
            }
        },
        "/api/v1/tables/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tables"],
                "summary": "Get a truth table",
                "parameters": [
                    {"type": "string", "description": "Evaluation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TableResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/tables/{id}/markdown": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["tables"],
                "summary": "Get a truth table as markdown",
                "parameters": [
                    {"type": "string", "description": "Evaluation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "compiler.Instruction": {
            "type": "object",
            "properties": {
                "op": {"type": "string"},
                "value": {"type": "boolean"},
                "index": {"type": "integer"}
            }
        },
        "compiler.Program": {
            "type": "object",
            "properties": {
                "inputs": {"type": "array", "items": {"type": "string"}},
                "code": {"type": "array", "items": {"$ref": "#/definitions/compiler.Instruction"}},
                "output": {"type": "string"}
            }
        },
        "domain.Evaluation": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "equation": {"type": "string"},
                "normalized": {"type": "string"},
                "inputs": {"type": "array", "items": {"type": "string"}},
                "output": {"type": "string"},
                "rows": {"type": "array", "items": {"type": "string"}},
                "outputs": {"type": "string"},
                "classification": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "dto.BatchTableRequest": {
            "type": "object",
            "properties": {
                "equations": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.SyntaxErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "title": {"type": "string"},
                "expected": {"type": "string"},
                "got": {"type": "string"},
                "span": {"type": "string"},
                "diagnostic": {"type": "string"}
            }
        },
        "dto.TableRequest": {
            "type": "object",
            "properties": {
                "equation": {"type": "string", "example": "A AND B OR C = Z"}
            }
        },
        "dto.TableResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "equation": {"type": "string"},
                "normalized": {"type": "string"},
                "classification": {"type": "string"},
                "table": {"$ref": "#/definitions/vm.TruthTable"},
                "program": {"$ref": "#/definitions/compiler.Program"},
                "markdown": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "pagination.OffsetResult-domain_Evaluation": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Evaluation"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "has_more": {"type": "boolean"}
            }
        },
        "vm.TruthTable": {
            "type": "object",
            "properties": {
                "input_names": {"type": "array", "items": {"type": "string"}},
                "inputs": {"type": "array", "items": {"type": "array", "items": {"type": "boolean"}}},
                "output_name": {"type": "string"},
                "outputs": {"type": "array", "items": {"type": "boolean"}}
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
	Title:            "Boolean Truth Table API",
	Description:      "Evaluates boolean equations into complete truth tables",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
