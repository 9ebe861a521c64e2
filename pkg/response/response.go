package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the JSON envelope written by every handler. Rendering the
// payload into HTML is left to the front end.
type APIResponse[T any] struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      T         `json:"data,omitempty"`
	Error     any       `json:"error,omitempty"`
}

// Success writes a 2xx envelope with the given payload.
func Success[T any](c *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: c.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
	})
}

// Error writes a failure envelope. details carries field-level validation
// messages when present.
func Error(c *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, APIResponse[any]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: c.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     details,
	})
}

// AbortError writes a failure envelope and aborts the handler chain.
// Used by middleware.
func AbortError(c *gin.Context, status int, message string, details any) {
	Error(c, status, message, details)
	c.Abort()
}
