package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request correlation id
const RequestIDKey = "requestId"

// SuccessResponse is the envelope for successful responses
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"requestId"`
}

// ErrorDetail carries a machine-readable code and a human message
type ErrorDetail struct {
	Code    string `json:"code" example:"MATCH_FULL"`
	Message string `json:"message" example:"Match has no free slots"`
	Details string `json:"details,omitempty" example:"cannot transition match from finished to open (allowed: [])"`
}

// ErrorResponse is the envelope for failed responses
type ErrorResponse struct {
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"requestId"`
}

// SendSuccess writes data wrapped in the success envelope
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
	})
}

// SendError writes an error envelope and aborts the handler chain
func SendError(c *gin.Context, statusCode int, code, message string) {
	SendErrorWithDetails(c, statusCode, code, message, "")
}

// SendErrorWithDetails is SendError with a details string for the client
func SendErrorWithDetails(c *gin.Context, statusCode int, code, message, details string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	if v, ok := c.Get(RequestIDKey); ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return uuid.New().String()
}
