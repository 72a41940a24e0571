package response

import (
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Message   string                  `json:"message"`
	Errors    []validation.FieldError `json:"errors,omitempty"`
	RequestID string                  `json:"requestId,omitempty"`
}

// MessageBody is returned by endpoints that only confirm an action.
type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as the bare JSON body. API clients read arrays and
// records directly, without an envelope.
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Message sends a confirmation message
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageBody{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, fields []validation.FieldError) {
	c.JSON(code, ErrorBody{
		Message:   message,
		Errors:    fields,
		RequestID: c.GetString(RequestIDKey),
	})
}

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "RequestID"
