package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID  = "X-Request-ID"
	ContextRequestID = "requestID"
)

// RequestID keeps a client-supplied X-Request-ID or assigns a new one,
// and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)

		c.Next()
	}
}
