package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"heritage-server/internal/goerrors"
	"heritage-server/internal/utils"
)

// Recover answers panics with a generic server error, the panic value is only logged.
func Recover() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.WriteAndLogError(c, goerrors.InternalServerError, fmt.Errorf("panic: %v", recovered))
	})
}
