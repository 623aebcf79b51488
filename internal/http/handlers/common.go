package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform gateway response: every action, success or
// failure, renders this shape.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count,omitempty"`
	Total   int    `json:"total,omitempty"`
}

// RespondData sends a success envelope carrying data.
func RespondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// RespondList sends a success envelope for list actions with row counts.
func RespondList(c *gin.Context, data any, count, total int) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Count: count, Total: total})
}

// RespondMessage sends a success envelope with only a message.
func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// RespondFail sends a failure envelope. The message doubles as both
// error and message fields so legacy callers reading either keep working.
func RespondFail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Error: message, Message: message})
}
