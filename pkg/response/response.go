package response

import (
	"errors"
	"net/http"
	"time"

	"marketplace-integrations/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope. Fields is only present for
// validation errors.
type ErrorResponse struct {
	ErrorCode string            `json:"error_code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
	Timestamp string            `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, data)
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	write(c, http.StatusCreated, data)
}

// Raw sends data without the envelope. Webhook senders expect a bare
// acknowledgement body.
func Raw(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func write(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: now(),
	})
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
			Fields:    appErr.Fields,
			RequestID: getRequestID(c),
			Timestamp: now(),
		})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		RequestID: getRequestID(c),
		Timestamp: now(),
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
