package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripchat/obs"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request context with an ID so obs timings logged
// while serving it can be correlated. A caller-supplied X-Request-ID is
// kept, otherwise a new UUID is issued.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Request = c.Request.WithContext(obs.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
