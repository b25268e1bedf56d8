// Package middleware contains the gin middleware shared by all routes.
package middleware

import (
	"github.com/gin-gonic/gin"

	"heritage-server/internal/utils"
)

const traceHeader = "X-Trace-Id"

// InjectTrace gives every request a trace id. An id sent by the client is reused.
func InjectTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceId := c.GetHeader(traceHeader)
		if traceId == "" {
			traceId = utils.GenerateTraceId()
		}
		c.Set(utils.TraceIdKey.String(), traceId)
		c.Header(traceHeader, traceId)
		c.Next()
	}
}
