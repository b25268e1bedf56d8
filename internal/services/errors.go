// Package services holds the business rules: the account lifecycle, the ownership policy and the content operations.
package services

import (
	"errors"
	"fmt"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrVerificationRequired  = errors.New("email not verified")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired verification token")
	ErrAlreadyVerified       = errors.New("account already verified")
	ErrNotFound              = errors.New("account not found")
	ErrResourceNotFound      = errors.New("resource not found")
	ErrForbidden             = errors.New("not the owner of the resource")
	ErrInvalidUpload         = errors.New("invalid upload")
	ErrDependencyFailure     = errors.New("notification dispatch failed")
	ErrStoreUnavailable      = errors.New("store unavailable")
)

func storeError(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
