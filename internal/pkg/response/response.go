package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard error payload returned by the API
type ErrorResponse struct {
	Error string `json:"error" example:"Title is required."`
	Code  string `json:"code,omitempty" example:"VALIDATION_FAILED"`
}

// Success sends a 200 OK response with the resource as the body
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 Created response with a Location header pointing
// at the canonical GET for the new resource
func Created(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 No Content response
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	code := ""
	if len(errorCode) > 0 {
		code = errorCode[0]
	}

	c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// Conflict sends a 409 Conflict error
func Conflict(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusConflict, message, errorCode...)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// ServiceUnavailable sends a 503 Service Unavailable error
func ServiceUnavailable(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusServiceUnavailable, message, errorCode...)
}

// BindJSONError handles JSON decode errors in request body
func BindJSONError(c *gin.Context, err error) {
	BadRequest(c, "Invalid request format", "INVALID_JSON")
}

// ValidationFailed handles validation errors on request fields
func ValidationFailed(c *gin.Context, message string) {
	BadRequest(c, message, "VALIDATION_FAILED")
}

// DatabaseError handles database operation errors
func DatabaseError(c *gin.Context, message string) {
	InternalServerError(c, message, "DATABASE_ERROR")
}
