// Package goerrors holds the catalog of errors the API can return to clients.
// Every error has a stable code the client can branch on and a short human readable message.
package goerrors

import "net/http"

// CustomError is a struct that represents an error returned to the client
// Message is the human readable message
// Code is the stable machine readable code
// HttpStatus is the status code the error is sent with
type CustomError struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	HttpStatus int    `json:"-"`
}

// Error makes CustomError usable as a Go error.
func (e *CustomError) Error() string {
	return e.Code + ": " + e.Message
}

var (
	BadRequest = &CustomError{
		Message:    "The request body is invalid. Please check the request body and try again.",
		Code:       "ERR-001",
		HttpStatus: http.StatusBadRequest,
	}
	EmailTaken = &CustomError{
		Message:    "An account with this email already exists.",
		Code:       "ERR-002",
		HttpStatus: http.StatusConflict,
	}
	InvalidCredentials = &CustomError{
		Message:    "Invalid credentials. Please check your email and password and try again.",
		Code:       "ERR-003",
		HttpStatus: http.StatusUnauthorized,
	}
	UserNotFound = &CustomError{
		Message:    "The user was not found. Please check the email and try again.",
		Code:       "ERR-004",
		HttpStatus: http.StatusNotFound,
	}
	InvalidVerificationToken = &CustomError{
		Message:    "The verification link is invalid or has expired. Please request a new one.",
		Code:       "ERR-005",
		HttpStatus: http.StatusUnauthorized,
	}
	UserAlreadyVerified = &CustomError{
		Message:    "The email address is already verified. Please log in.",
		Code:       "ERR-006",
		HttpStatus: http.StatusConflict,
	}
	VerificationRequired = &CustomError{
		Message:    "Please verify your email address before logging in.",
		Code:       "ERR-007",
		HttpStatus: http.StatusForbidden,
	}
	MailDeliveryFailed = &CustomError{
		Message:    "The verification email could not be sent. Please try again later.",
		Code:       "ERR-008",
		HttpStatus: http.StatusBadGateway,
	}
	DatabaseError = &CustomError{
		Message:    "A database error occurred. Please try again later.",
		Code:       "ERR-009",
		HttpStatus: http.StatusInternalServerError,
	}
	NoToken = &CustomError{
		Message:    "No token, authorization denied.",
		Code:       "ERR-010",
		HttpStatus: http.StatusUnauthorized,
	}
	InvalidToken = &CustomError{
		Message:    "Token is not valid. Please log in again.",
		Code:       "ERR-011",
		HttpStatus: http.StatusUnauthorized,
	}
	Forbidden = &CustomError{
		Message:    "You are not authorized to modify this resource.",
		Code:       "ERR-012",
		HttpStatus: http.StatusForbidden,
	}
	ResourceNotFound = &CustomError{
		Message:    "The requested resource was not found.",
		Code:       "ERR-013",
		HttpStatus: http.StatusNotFound,
	}
	InternalServerError = &CustomError{
		Message:    "An internal server error occurred. Please try again later.",
		Code:       "ERR-014",
		HttpStatus: http.StatusInternalServerError,
	}
	TooManyRequests = &CustomError{
		Message:    "Too many requests. Please try again later.",
		Code:       "ERR-015",
		HttpStatus: http.StatusTooManyRequests,
	}
	InvalidUpload = &CustomError{
		Message:    "Only up to 3 image files of at most 5 MB each are allowed.",
		Code:       "ERR-016",
		HttpStatus: http.StatusBadRequest,
	}
)
