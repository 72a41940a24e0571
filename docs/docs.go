// Package docs holds the OpenAPI description served at /api/swagger.
// The template is maintained by hand next to the handler annotations;
// docs_test.go fails when a registered route is missing from it.
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
            "get": {"tags": ["health"], "summary": "Liveness check", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Database unreachable"}}}
        },
        "/jobs": {
            "get": {
                "tags": ["jobs"], "summary": "Search jobs", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "experienceLevel", "in": "query"},
                    {"type": "string", "name": "remoteType", "in": "query"},
                    {"type": "integer", "name": "salaryMin", "in": "query"},
                    {"type": "integer", "name": "salaryMax", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.JobWithCompany"}}}}
            },
            "post": {
                "tags": ["jobs"], "summary": "Create a new job", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "job", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.CreateJobRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Job"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}}
            }
        },
        "/jobs/featured": {
            "get": {"tags": ["jobs"], "summary": "List featured jobs", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.JobWithCompany"}}}}}
        },
        "/jobs/{id}": {
            "get": {"tags": ["jobs"], "summary": "Get job details", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.JobWithCompany"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}}}
        },
        "/companies": {
            "get": {"tags": ["companies"], "summary": "List companies", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.CompanyWithJobCount"}}}}}
        },
        "/companies/{id}": {
            "get": {"tags": ["companies"], "summary": "Get company", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Company"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}}}
        },
        "/categories": {
            "get": {"tags": ["categories"], "summary": "List job categories", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.JobCategory"}}}}}
        },
        "/applications": {
            "post": {"tags": ["applications"], "summary": "Apply to a job", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.ApplyRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Application"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}}}
        },
        "/applications/user/{userId}": {
            "get": {"tags": ["applications"], "summary": "List a user's applications", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "userId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Application"}}}}}
        },
        "/saved-jobs": {
            "post": {"tags": ["saved-jobs"], "summary": "Save a job", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.SavedJobRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.SavedJob"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}}},
            "delete": {"tags": ["saved-jobs"], "summary": "Remove a saved job", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.UnsaveJobRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageBody"}}}}
        },
        "/saved-jobs/user/{userId}": {
            "get": {"tags": ["saved-jobs"], "summary": "List a user's saved jobs", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "userId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.JobWithCompany"}}}}}
        },
        "/newsletter": {
            "post": {"tags": ["newsletter"], "summary": "Subscribe to the newsletter", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.NewsletterRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageBody"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}}}
        },
        "/users/register": {
            "post": {"tags": ["users"], "summary": "Register a user", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.RegisterUserRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}}}
        },
        "/users/{id}": {
            "get": {"tags": ["users"], "summary": "Get user", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}}}
        }
    },
    "definitions": {
        "domain.Application": {"type": "object", "properties": {
            "id": {"type": "integer"}, "userId": {"type": "integer"}, "jobId": {"type": "integer"},
            "status": {"type": "string"}, "coverLetter": {"type": "string"}, "createdAt": {"type": "string"}}},
        "domain.Company": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "description": {"type": "string"},
            "industry": {"type": "string"}, "location": {"type": "string"}, "size": {"type": "string"},
            "logo": {"type": "string"}, "website": {"type": "string"},
            "technologies": {"type": "array", "items": {"type": "string"}}, "createdAt": {"type": "string"}}},
        "domain.CompanyWithJobCount": {"allOf": [{"$ref": "#/definitions/domain.Company"},
            {"type": "object", "properties": {"jobCount": {"type": "integer"}}}]},
        "domain.Job": {"type": "object", "properties": {
            "id": {"type": "integer"}, "title": {"type": "string"}, "description": {"type": "string"},
            "companyId": {"type": "integer"}, "category": {"type": "string"}, "type": {"type": "string"},
            "experienceLevel": {"type": "string"}, "location": {"type": "string"}, "remoteType": {"type": "string"},
            "salaryMin": {"type": "integer"}, "salaryMax": {"type": "integer"}, "currency": {"type": "string"},
            "skills": {"type": "array", "items": {"type": "string"}}, "featured": {"type": "boolean"},
            "urgent": {"type": "boolean"}, "applicationCount": {"type": "integer"}, "createdAt": {"type": "string"}}},
        "domain.JobWithCompany": {"allOf": [{"$ref": "#/definitions/domain.Job"},
            {"type": "object", "properties": {"company": {"$ref": "#/definitions/domain.Company"}}}]},
        "domain.JobCategory": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "icon": {"type": "string"},
            "count": {"type": "integer"}, "color": {"type": "string"}}},
        "domain.NewsletterRequest": {"type": "object", "properties": {"email": {"type": "string"}}},
        "domain.RegisterUserRequest": {"type": "object", "required": ["username", "email", "password", "fullName"], "properties": {
            "username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"},
            "fullName": {"type": "string"}, "profileImage": {"type": "string"}, "isEmployer": {"type": "boolean"}}},
        "domain.SavedJob": {"type": "object", "properties": {
            "id": {"type": "integer"}, "userId": {"type": "integer"}, "jobId": {"type": "integer"}, "createdAt": {"type": "string"}}},
        "domain.User": {"type": "object", "properties": {
            "id": {"type": "integer"}, "username": {"type": "string"}, "email": {"type": "string"},
            "fullName": {"type": "string"}, "profileImage": {"type": "string"}, "isEmployer": {"type": "boolean"},
            "createdAt": {"type": "string"}}},
        "response.ErrorBody": {"type": "object", "properties": {
            "message": {"type": "string"}, "requestId": {"type": "string"},
            "errors": {"type": "array", "items": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}}}}},
        "response.MessageBody": {"type": "object", "properties": {"message": {"type": "string"}}},
        "v1.ApplyRequest": {"type": "object", "required": ["userId", "jobId"], "properties": {
            "userId": {"type": "integer"}, "jobId": {"type": "integer"}, "coverLetter": {"type": "string"}}},
        "v1.CreateJobRequest": {"type": "object",
            "required": ["title", "description", "companyId", "category", "type", "experienceLevel", "location", "remoteType", "skills"],
            "properties": {
            "title": {"type": "string"}, "description": {"type": "string"}, "companyId": {"type": "integer"},
            "category": {"type": "string"}, "type": {"type": "string"}, "experienceLevel": {"type": "string"},
            "location": {"type": "string"}, "remoteType": {"type": "string"}, "salaryMin": {"type": "integer"},
            "salaryMax": {"type": "integer"}, "currency": {"type": "string"},
            "skills": {"type": "array", "items": {"type": "string"}}, "featured": {"type": "boolean"}, "urgent": {"type": "boolean"}}},
        "v1.SavedJobRequest": {"type": "object", "required": ["userId", "jobId"], "properties": {
            "userId": {"type": "integer"}, "jobId": {"type": "integer"}}},
        "v1.UnsaveJobRequest": {"type": "object", "required": ["userId", "jobId"], "properties": {
            "userId": {"type": "integer"}, "jobId": {"type": "integer"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Job Board API",
	Description:      "Job listings, companies, applications and saved jobs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
