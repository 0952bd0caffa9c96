package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"duedate-service/pkg/log"
)

// RequestIDHeader carries the request ID on both requests and responses.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a request ID to the request context so every log line
// under it can be correlated. A caller-provided header value is kept;
// otherwise a fresh UUID is issued.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
