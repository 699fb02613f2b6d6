// Package response defines the JSON envelope shared by every endpoint and
// the mapping from error kinds to HTTP statuses.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes exposed to clients. Handlers classify domain errors into one
// of these; anything unclassified becomes CodeInternal.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeEmailTaken     = "EMAIL_ALREADY_TAKEN"
	CodeUnprocessable  = "UNPROCESSABLE_ENTITY"
	CodeNotImplemented = "NOT_IMPLEMENTED"
	CodeInternal       = "INTERNAL_SERVER_ERROR"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

// Common error responses.

func ValidationError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, CodeValidation, message)
}

func EmailTaken(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, CodeEmailTaken, message)
}

func Unprocessable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnprocessableEntity, CodeUnprocessable, message)
}

func NotImplemented(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotImplemented, CodeNotImplemented, message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, CodeInternal, message)
}
