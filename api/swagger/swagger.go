package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Student Management System",
        "description": "Server-rendered forms for adding, viewing, updating and deleting student records.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student record forms"},
        {"name": "Operations", "description": "Health, readiness and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Operations"],
                "summary": "Health check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Operations"],
                "summary": "Readiness check, pings the record store",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Store unavailable"}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["Operations"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "Metrics in exposition format"}
                }
            }
        },
        "/": {
            "get": {
                "tags": ["Students"],
                "summary": "Select a mode from the sidebar menu",
                "parameters": [
                    {"name": "menu", "in": "query", "type": "string", "enum": ["Add Student", "View Students", "Update Student", "Delete Student"]}
                ],
                "responses": {
                    "303": {"description": "Redirect to the selected mode"}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "Render the table of all students",
                "produces": ["text/html"],
                "responses": {
                    "200": {"description": "Student table, or an info notice when empty"}
                }
            }
        },
        "/students/add": {
            "get": {
                "tags": ["Students"],
                "summary": "Render the Add Student form",
                "produces": ["text/html"],
                "responses": {
                    "200": {"description": "Form"}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Save a new student",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "parameters": [
                    {"$ref": "#/parameters/name"},
                    {"$ref": "#/parameters/email"},
                    {"$ref": "#/parameters/phone"},
                    {"$ref": "#/parameters/department"},
                    {"$ref": "#/parameters/year"}
                ],
                "responses": {
                    "200": {"description": "Student added successfully"},
                    "400": {"description": "Name and Email are mandatory"},
                    "409": {"description": "Email already exists"}
                }
            }
        },
        "/students/update": {
            "get": {
                "tags": ["Students"],
                "summary": "Render the Update Student form pre-filled with the selected student",
                "produces": ["text/html"],
                "parameters": [
                    {"name": "id", "in": "query", "type": "integer", "format": "int64"}
                ],
                "responses": {
                    "200": {"description": "Form, or an info notice when no students exist"},
                    "404": {"description": "Student not found"}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Overwrite every field of a student",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"$ref": "#/parameters/name"},
                    {"$ref": "#/parameters/email"},
                    {"$ref": "#/parameters/phone"},
                    {"$ref": "#/parameters/department"},
                    {"$ref": "#/parameters/year"}
                ],
                "responses": {
                    "200": {"description": "Student updated successfully"},
                    "400": {"description": "Validation failed"},
                    "409": {"description": "Email already exists"}
                }
            }
        },
        "/students/delete": {
            "get": {
                "tags": ["Students"],
                "summary": "Render the Delete Student form",
                "produces": ["text/html"],
                "parameters": [
                    {"name": "id", "in": "query", "type": "integer", "format": "int64"}
                ],
                "responses": {
                    "200": {"description": "Form, or an info notice when no students exist"}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Remove a student",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "parameters": [
                    {"$ref": "#/parameters/id"}
                ],
                "responses": {
                    "200": {"description": "Student deleted successfully"},
                    "400": {"description": "Select a student ID"}
                }
            }
        },
        "/students/export.csv": {
            "get": {
                "tags": ["Students"],
                "summary": "Download the student table as CSV",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV attachment"}
                }
            }
        },
        "/students/export.pdf": {
            "get": {
                "tags": ["Students"],
                "summary": "Download the student table as PDF",
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF attachment"}
                }
            }
        }
    },
    "parameters": {
        "id": {"name": "id", "in": "formData", "type": "integer", "format": "int64", "required": true},
        "name": {"name": "name", "in": "formData", "type": "string"},
        "email": {"name": "email", "in": "formData", "type": "string"},
        "phone": {"name": "phone", "in": "formData", "type": "string"},
        "department": {"name": "department", "in": "formData", "type": "string", "enum": ["CSE", "AIML", "DS", "ECE"], "required": true},
        "year": {"name": "year", "in": "formData", "type": "integer", "enum": [1, 2, 3, 4], "required": true}
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
