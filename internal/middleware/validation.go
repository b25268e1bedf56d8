package middleware

import (
	"github.com/gin-gonic/gin"

	"heritage-server/internal/goerrors"
	"heritage-server/internal/utils"
)

// ValidateAndSanitizeStruct binds the request body into a fresh object from newObj, sanitizes and validates it.
// JSON and multipart bodies are supported. The object is stored under utils.SanitizedPayloadKey.
func ValidateAndSanitizeStruct(newObj func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newObj()
		if err := c.ShouldBind(obj); err != nil {
			utils.WriteAndLogError(c, goerrors.BadRequest, err)
			return
		}

		validator := utils.GetValidator()
		if err := validator.SanitizeData(obj); err != nil {
			utils.WriteAndLogError(c, goerrors.BadRequest, err)
			return
		}

		if err := validator.Validate.Struct(obj); err != nil {
			utils.WriteAndLogError(c, goerrors.BadRequest, err)
			return
		}

		c.Set(utils.SanitizedPayloadKey.String(), obj)
		c.Next()
	}
}
