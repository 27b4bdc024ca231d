// Package docs registers the OpenAPI document served under /swagger.
// Keep it in step with the handler annotations when routes change.
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
        "/api/v1/forms": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Search forms",
                "parameters": [
                    {"type": "string", "description": "draft, upcoming, live, closed or all", "name": "status", "in": "query"},
                    {"type": "string", "description": "Category name or all", "name": "category", "in": "query"},
                    {"type": "string", "description": "Matches title, description and tags", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/form.Form"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            },
            "post": {
                "description": "Status is derived from the date window at creation time.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Create a form",
                "parameters": [
                    {"description": "Form builder payload", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/form.DraftInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/form.Form"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            }
        },
        "/api/v1/forms/status/{status}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "List forms with a lifecycle status",
                "parameters": [
                    {"type": "string", "description": "draft, upcoming, live or closed", "name": "status", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/form.Form"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            }
        },
        "/api/v1/forms/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Get a form",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/form.Form"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            },
            "put": {
                "description": "Runs the same checks as create. Status, counters and creation date are kept.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Replace a form's builder fields",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true},
                    {"description": "Form builder payload", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/form.DraftInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/form.Form"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.AppError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            },
            "delete": {
                "tags": ["forms"],
                "summary": "Delete a form",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            },
            "patch": {
                "description": "Only the fields present in the body are overwritten. Empty dates clear the window.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Partially update a form",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to overwrite", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/form.Patch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/form.Form"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.AppError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            }
        },
        "/api/v1/forms/{id}/views": {
            "post": {
                "description": "A repeated X-Visit-ID for the same form is not counted again.",
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Record a form view",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Page load identifier", "name": "X-Visit-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.viewResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            }
        },
        "/api/v1/forms/{id}/responses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "List responses of a form",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/form.SurveyResponse"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            },
            "post": {
                "description": "Required questions must be answered and choices must match the question's options.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "Submit a survey response",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true},
                    {"description": "Answers", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.submitResponseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/form.SurveyResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.AppError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.AppError"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            }
        },
        "/api/v1/forms/{id}/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "Per-question answer summary",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/form.Summary"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Dashboard statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/form.Stats"}}
                }
            }
        },
        "/api/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Known categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/api/v1/questions/template/{type}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Blank question of a type",
                "parameters": [
                    {"type": "string", "description": "short, long, mcq, checkbox, dropdown or rating", "name": "type", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/form.Question"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.AppError"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["backend"],
                "summary": "Service health",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/api/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["backend"],
                "summary": "Liveness ping",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/api/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["backend"],
                "summary": "Feature availability",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/api/forms": {
            "get": {
                "produces": ["application/json"],
                "tags": ["backend"],
                "summary": "List persisted forms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["backend"],
                "summary": "Persist a form",
                "parameters": [
                    {"description": "Form record", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.createRecordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.envelope"}}
                }
            }
        },
        "/api/responses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["backend"],
                "summary": "List persisted responses",
                "parameters": [
                    {"type": "string", "description": "Only responses of this survey", "name": "surveyId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["backend"],
                "summary": "Persist a response",
                "parameters": [
                    {"description": "Response record", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.createResponseRecordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.envelope"}}
                }
            }
        },
        "/api/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["backend"],
                "summary": "List persisted categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.envelope"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["backend"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.envelope"}}
                }
            }
        }
    },
    "definitions": {
        "api.createRecordRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "id": {"type": "string"},
                "payload": {"type": "object"},
                "status": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "api.createResponseRecordRequest": {
            "type": "object",
            "properties": {
                "payload": {"type": "object"},
                "surveyId": {"type": "string"}
            }
        },
        "api.envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "setup": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "api.submitResponseRequest": {
            "type": "object",
            "properties": {
                "respondentId": {"type": "string"},
                "responses": {"type": "array", "items": {"$ref": "#/definitions/form.AnswerRecord"}},
                "timeTaken": {"type": "integer"}
            }
        },
        "api.viewResponse": {
            "type": "object",
            "properties": {
                "counted": {"type": "boolean"},
                "views": {"type": "integer"}
            }
        },
        "apperr.AppError": {
            "type": "object",
            "properties": {
                "details": {"type": "array", "items": {"type": "string"}},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "form.AnswerRecord": {
            "type": "object",
            "properties": {
                "answer": {"description": "string, list of strings or number"},
                "questionId": {"type": "string"}
            }
        },
        "form.DraftInput": {
            "type": "object",
            "required": ["author", "category", "endDate", "startDate", "title"],
            "properties": {
                "author": {"type": "string"},
                "category": {"type": "string"},
                "customCategory": {"type": "string"},
                "description": {"type": "string"},
                "endDate": {"type": "string"},
                "headline": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/form.QuestionInput"}},
                "startDate": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "form.Form": {
            "type": "object",
            "properties": {
                "author": {"type": "string"},
                "category": {"type": "string"},
                "createdDate": {"type": "string"},
                "description": {"type": "string"},
                "endDate": {"type": "string"},
                "headline": {"type": "string"},
                "id": {"type": "string"},
                "lastModified": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/form.Question"}},
                "responses": {"type": "integer"},
                "scheduledDate": {"type": "string"},
                "startDate": {"type": "string"},
                "status": {"type": "string", "enum": ["draft", "live", "upcoming", "closed"]},
                "surveyResponses": {"type": "array", "items": {"$ref": "#/definitions/form.SurveyResponse"}},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"},
                "views": {"type": "integer"}
            }
        },
        "form.Option": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "form.Patch": {
            "type": "object",
            "properties": {
                "author": {"type": "string"},
                "category": {"type": "string"},
                "createdDate": {"type": "string"},
                "description": {"type": "string"},
                "endDate": {"type": "string"},
                "headline": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/form.Question"}},
                "responses": {"type": "integer"},
                "scheduledDate": {"type": "string"},
                "startDate": {"type": "string"},
                "status": {"type": "string", "enum": ["draft", "live", "upcoming", "closed"]},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"},
                "views": {"type": "integer"}
            }
        },
        "form.Question": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "string"},
                "maxRating": {"type": "integer"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/form.Option"}},
                "required": {"type": "boolean"},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["short", "long", "mcq", "rating", "checkbox", "dropdown"]}
            }
        },
        "form.QuestionInput": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "string"},
                "maxRating": {"type": "integer", "maximum": 10, "minimum": 0},
                "options": {"type": "array", "items": {"$ref": "#/definitions/form.Option"}},
                "required": {"type": "boolean"},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["short", "long", "mcq", "rating", "checkbox", "dropdown"]}
            }
        },
        "form.Stats": {
            "type": "object",
            "properties": {
                "activeForms": {"type": "integer"},
                "byCategory": {"type": "object", "additionalProperties": {"type": "integer"}},
                "byStatus": {"type": "object", "additionalProperties": {"type": "integer"}},
                "createdThisMonth": {"type": "integer"},
                "liveForms": {"type": "integer"},
                "totalForms": {"type": "integer"},
                "totalResponses": {"type": "integer"},
                "totalViews": {"type": "integer"},
                "upcomingForms": {"type": "integer"}
            }
        },
        "form.Summary": {
            "type": "object",
            "properties": {
                "averageTimeTaken": {"type": "number"},
                "questions": {"type": "array", "items": {"type": "object"}},
                "surveyId": {"type": "string"},
                "totalResponses": {"type": "integer"},
                "views": {"type": "integer"}
            }
        },
        "form.SurveyResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "respondentId": {"type": "string"},
                "responses": {"type": "array", "items": {"$ref": "#/definitions/form.AnswerRecord"}},
                "submittedAt": {"type": "string"},
                "surveyId": {"type": "string"},
                "timeTaken": {"type": "integer"}
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
	Title:            "Survey Builder API",
	Description:      "Form builder store with lifecycle status, responses and view counting",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
