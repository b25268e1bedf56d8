package utils

import (
	"github.com/gin-gonic/gin"

	"heritage-server/internal/goerrors"
	"heritage-server/internal/schemas"
)

// WriteAndLogResponse writes the response object as JSON with the provided status code.
func WriteAndLogResponse(c *gin.Context, response interface{}, statusCode int) {
	LogMessageWithFields(c, "info", "Returning response")
	c.JSON(statusCode, response)
}

// WriteAndLogError logs the provided error and aborts the request with the catalog error.
// The underlying error is only logged, it never reaches the client.
func WriteAndLogError(c *gin.Context, customErr *goerrors.CustomError, err error) {
	writeError(c, customErr, err, false)
}

// WriteAndLogVerificationError is WriteAndLogError with the needsVerification hint set.
func WriteAndLogVerificationError(c *gin.Context, customErr *goerrors.CustomError, err error) {
	writeError(c, customErr, err, true)
}

func writeError(c *gin.Context, customErr *goerrors.CustomError, err error, needsVerification bool) {
	if err != nil {
		LogMessageWithFields(c, "error", "Error occurred: "+err.Error())
	}
	LogMessageWithFields(c, "error", "Returning "+customErr.Code+" / "+customErr.Message)
	errorDto := &schemas.ErrorDTO{
		Error:             *customErr,
		NeedsVerification: needsVerification,
	}
	c.AbortWithStatusJSON(customErr.HttpStatus, errorDto)
}
