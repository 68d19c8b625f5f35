package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDKey is the gin context key the response envelope reads the id from.
const TraceIDKey = "trace_id"

const traceIDHeader = "X-Trace-ID"

// TraceIDMiddleware tags every request with a trace id and echoes it in the
// response header. An inbound X-Trace-ID is reused so the id survives hops
// through the frontend and the payment provider's redirects.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set(TraceIDKey, traceID)
		c.Writer.Header().Set(traceIDHeader, traceID)
		c.Next()
	}
}
