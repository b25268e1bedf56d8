package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"heritage-server/internal/utils"
)

// LogRequest logs every request when it arrives and when it is answered.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		utils.LogMessageWithFields(c, "info", "Request received: "+c.Request.Method+" "+c.Request.URL.Path)

		c.Next()

		utils.LogMessageWithFields(c, "info", "Request completed: "+strconv.Itoa(c.Writer.Status())+
			" in "+time.Since(start).String())
	}
}
