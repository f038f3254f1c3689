package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-directory/internal/apierrors"
)

// ErrorMessage represents the error response body.
type ErrorMessage struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// errorResponse writes an error response with the given code and status.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	c.JSON(statusCode, ErrorMessage{Message: message, Code: code})
}

// apiErrorResponse writes a structured API error, or a generic 500 for
// anything unrecognized.
func apiErrorResponse(c *gin.Context, err error) bool {
	apiErr, ok := apierrors.FromError(err)
	if !ok {
		return false
	}
	c.JSON(apiErr.Status, ErrorMessage{Message: apiErr.Message, Code: string(apiErr.Code)})
	return true
}

// internalErrorResponse writes a generic 500 response.
func internalErrorResponse(c *gin.Context) {
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
