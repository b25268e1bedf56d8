// Package handlers contains the gin handlers. They translate requests into service calls
// and service errors into the error catalog.
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"heritage-server/internal/goerrors"
	"heritage-server/internal/services"
	"heritage-server/internal/utils"
)

var errMissingAccount = errors.New("no account in request context")

// writeServiceError maps a service error onto the error catalog. Unknown errors become a generic server error.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.WriteAndLogError(c, goerrors.BadRequest, err)
	case errors.Is(err, services.ErrDuplicateEmail):
		utils.WriteAndLogError(c, goerrors.EmailTaken, err)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.WriteAndLogError(c, goerrors.InvalidCredentials, err)
	case errors.Is(err, services.ErrVerificationRequired):
		utils.WriteAndLogVerificationError(c, goerrors.VerificationRequired, err)
	case errors.Is(err, services.ErrInvalidOrExpiredToken):
		utils.WriteAndLogError(c, goerrors.InvalidVerificationToken, err)
	case errors.Is(err, services.ErrAlreadyVerified):
		utils.WriteAndLogError(c, goerrors.UserAlreadyVerified, err)
	case errors.Is(err, services.ErrNotFound):
		utils.WriteAndLogError(c, goerrors.UserNotFound, err)
	case errors.Is(err, services.ErrResourceNotFound):
		utils.WriteAndLogError(c, goerrors.ResourceNotFound, err)
	case errors.Is(err, services.ErrForbidden):
		utils.WriteAndLogError(c, goerrors.Forbidden, err)
	case errors.Is(err, services.ErrInvalidUpload):
		utils.WriteAndLogError(c, goerrors.InvalidUpload, err)
	case errors.Is(err, services.ErrDependencyFailure):
		utils.WriteAndLogError(c, goerrors.MailDeliveryFailed, err)
	case errors.Is(err, services.ErrStoreUnavailable):
		utils.WriteAndLogError(c, goerrors.DatabaseError, err)
	default:
		utils.WriteAndLogError(c, goerrors.InternalServerError, err)
	}
}

// actingAccount returns the account id the authorization guard stored in the context.
func actingAccount(c *gin.Context) (uuid.UUID, bool) {
	accountId, ok := c.Value(utils.AccountIdKey.String()).(uuid.UUID)
	if !ok {
		utils.WriteAndLogError(c, goerrors.InvalidToken, errMissingAccount)
		return uuid.Nil, false
	}

	return accountId, true
}

// resourceId parses the id path parameter. Ids that are not uuids cannot exist.
func resourceId(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(utils.IdKey))
	if err != nil {
		utils.WriteAndLogError(c, goerrors.ResourceNotFound, err)
		return uuid.Nil, false
	}

	return id, true
}

// payload returns the request object stored by the validation middleware.
func payload[T any](c *gin.Context) (*T, bool) {
	request, ok := c.Value(utils.SanitizedPayloadKey.String()).(*T)
	if !ok {
		utils.WriteAndLogError(c, goerrors.BadRequest, errors.New("missing request payload"))
		return nil, false
	}

	return request, true
}
