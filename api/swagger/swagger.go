package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "LMS API",
        "description": "Departments, courses, class offerings, enrollment, assignments and grading.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Authentication",
            "description": "Access tokens"
        },
        {
            "name": "Catalog",
            "description": "Read-only views for every role"
        },
        {
            "name": "Administration",
            "description": "Courses and class offerings"
        },
        {
            "name": "Professor",
            "description": "Class coursework and grading"
        },
        {
            "name": "Student",
            "description": "Enrollment, submissions and grades"
        },
        {
            "name": "Operations",
            "description": "Health and metrics"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "Operations"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "Operations"
                ],
                "summary": "Readiness check against postgres and redis",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "Dependency unavailable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "Operations"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Authenticate by uid and password",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid argument",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/departments": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "List departments",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/catalog": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "Department and course tree",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/departments/{subject}/courses": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "List courses of a department",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/departments/{subject}/professors": {
            "get": {
                "tags": [
                    "Administration"
                ],
                "summary": "List professors of a department",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/courses/{subject}/{number}/classes": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "List offerings of a course",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid argument",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/users/{uid}": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "Role-specific user profile",
                "parameters": [
                    {
                        "name": "uid",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/courses": {
            "post": {
                "tags": [
                    "Administration"
                ],
                "summary": "Create a course",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateCourseRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid argument",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes": {
            "post": {
                "tags": [
                    "Administration"
                ],
                "summary": "Schedule a class offering",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateClassOfferingRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid argument",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/professors/{uid}/classes": {
            "get": {
                "tags": [
                    "Professor"
                ],
                "summary": "Classes taught by a professor",
                "parameters": [
                    {
                        "name": "uid",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/students/{uid}/classes": {
            "get": {
                "tags": [
                    "Student"
                ],
                "summary": "Classes a student is enrolled in",
                "parameters": [
                    {
                        "name": "uid",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/students/{uid}/gpa": {
            "get": {
                "tags": [
                    "Student"
                ],
                "summary": "Grade point average",
                "parameters": [
                    {
                        "name": "uid",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{subject}/{number}/{season}/{year}/roster": {
            "get": {
                "tags": [
                    "Professor"
                ],
                "summary": "Students enrolled in a class",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid argument",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{subject}/{number}/{season}/{year}/roster/export": {
            "get": {
                "tags": [
                    "Professor"
                ],
                "summary": "Download the roster as CSV or PDF",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "csv or pdf"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid argument",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{subject}/{number}/{season}/{year}/categories": {
            "get": {
                "tags": [
                    "Professor"
                ],
                "summary": "Assignment categories of a class",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Professor"
                ],
                "summary": "Add an assignment category",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateCategoryRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid argument",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{subject}/{number}/{season}/{year}/assignments": {
            "get": {
                "tags": [
                    "Professor"
                ],
                "summary": "Assignments with submission counts",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "type": "string",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Professor"
                ],
                "summary": "Add an assignment",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateAssignmentRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid argument",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{subject}/{number}/{season}/{year}/enrollments": {
            "post": {
                "tags": [
                    "Student"
                ],
                "summary": "Enroll in a class",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid argument",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{subject}/{number}/{season}/{year}/students/{uid}/assignments": {
            "get": {
                "tags": [
                    "Student"
                ],
                "summary": "Assignments with one student's score",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "uid",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{subject}/{number}/{season}/{year}/students/{uid}/grade": {
            "get": {
                "tags": [
                    "Student"
                ],
                "summary": "Weighted class grade",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "uid",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{subject}/{number}/{season}/{year}/categories/{category}/assignments/{assignment}": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "Assignment contents",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "category",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "assignment",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{subject}/{number}/{season}/{year}/categories/{category}/assignments/{assignment}/submissions": {
            "get": {
                "tags": [
                    "Professor"
                ],
                "summary": "Submissions to an assignment",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "category",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "assignment",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Student"
                ],
                "summary": "Submit or resubmit text",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "category",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "assignment",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SubmissionPayload"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid argument",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{subject}/{number}/{season}/{year}/categories/{category}/assignments/{assignment}/submissions/{uid}": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "A student's submitted text, empty when not submitted",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "category",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "assignment",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "uid",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{subject}/{number}/{season}/{year}/categories/{category}/assignments/{assignment}/submissions/{uid}/score": {
            "put": {
                "tags": [
                    "Professor"
                ],
                "summary": "Score a submission",
                "parameters": [
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "number",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "season",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Spring, Summer or Fall"
                    },
                    {
                        "name": "year",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "category",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "assignment",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "uid",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ScorePayload"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid argument",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "uid": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "CreateCourseRequest": {
            "type": "object",
            "properties": {
                "subject": {
                    "type": "string"
                },
                "number": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "CreateClassOfferingRequest": {
            "type": "object",
            "properties": {
                "subject": {
                    "type": "string"
                },
                "number": {
                    "type": "integer"
                },
                "season": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                },
                "start": {
                    "type": "string",
                    "example": "09:00"
                },
                "end": {
                    "type": "string",
                    "example": "10:15"
                },
                "location": {
                    "type": "string"
                },
                "instructor": {
                    "type": "string"
                }
            }
        },
        "CreateCategoryRequest": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "catweight": {
                    "type": "integer"
                }
            }
        },
        "CreateAssignmentRequest": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "asgname": {
                    "type": "string"
                },
                "asgpoints": {
                    "type": "integer"
                },
                "asgdue": {
                    "type": "string",
                    "format": "date-time"
                },
                "asgcontents": {
                    "type": "string"
                }
            }
        },
        "SubmissionPayload": {
            "type": "object",
            "properties": {
                "contents": {
                    "type": "string"
                }
            }
        },
        "ScorePayload": {
            "type": "object",
            "properties": {
                "score": {
                    "type": "integer"
                }
            }
        },
        "WriteResult": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
                }
            }
        }
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
